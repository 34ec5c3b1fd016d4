package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// --- Sentinel Errors for Categorization ---
var (
	ErrUsage            = errors.New("usage error")                     // Wrong command-line arguments
	ErrInputNotFound    = errors.New("input file not found")            // Path missing or not a regular file
	ErrFilesystem       = errors.New("filesystem error")                // Wraps os errors
	ErrParsing          = errors.New("parsing error")                   // Wraps YAML/regex parsing errors
	ErrConfigValidation = errors.New("configuration validation error")
)

// WrapErrorf annotates err with a formatted message, keeping it unwrappable.
// Returns nil when err is nil.
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// CategorizeError maps an error to a predefined category string for logging.
func CategorizeError(err error) string {
	if err == nil {
		return "None"
	}

	switch {
	case errors.Is(err, ErrUsage):
		return "Usage"
	case errors.Is(err, ErrInputNotFound):
		return "Input_NotFound"
	case errors.Is(err, ErrConfigValidation):
		return "Config_Validation"
	case errors.Is(err, ErrParsing):
		errMsg := err.Error()
		if strings.Contains(errMsg, "YAML") || strings.Contains(errMsg, "yaml") {
			return "Parsing_YAML"
		}
		if strings.Contains(errMsg, "regex") {
			return "Parsing_Regex"
		}
		return "Parsing_Other"
	case errors.Is(err, ErrFilesystem):
		if errors.Is(err, os.ErrPermission) {
			return "Filesystem_Permission"
		}
		if errors.Is(err, os.ErrNotExist) {
			return "Filesystem_NotExist"
		}
		return "Filesystem_Other"
	}

	// Unwrapped os errors
	if errors.Is(err, os.ErrNotExist) {
		return "Filesystem_NotExist"
	}
	if errors.Is(err, os.ErrPermission) {
		return "Filesystem_Permission"
	}

	return "Unknown"
}
