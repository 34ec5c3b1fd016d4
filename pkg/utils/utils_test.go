package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
)

// --- CategorizeError Tests ---

func TestCategorizeError_NilError(t *testing.T) {
	result := CategorizeError(nil)
	if result != "None" {
		t.Errorf("CategorizeError(nil) = %q, want %q", result, "None")
	}
}

func TestCategorizeError_SentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Usage", ErrUsage, "Usage"},
		{"InputNotFound", ErrInputNotFound, "Input_NotFound"},
		{"ConfigValidation", ErrConfigValidation, "Config_Validation"},
		{"Parsing", ErrParsing, "Parsing_Other"},
		{"Filesystem", ErrFilesystem, "Filesystem_Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CategorizeError(tt.err)
			if result != tt.expected {
				t.Errorf("CategorizeError(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestCategorizeError_WrappedErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "WrappedUsage",
			err:      fmt.Errorf("expected 1 argument, got 0: %w", ErrUsage),
			expected: "Usage",
		},
		{
			name:     "WrappedInputNotFound",
			err:      WrapErrorf(ErrInputNotFound, "README.md"),
			expected: "Input_NotFound",
		},
		{
			name:     "ParsingYAML",
			err:      fmt.Errorf("%w: YAML: line 3: mapping values are not allowed", ErrParsing),
			expected: "Parsing_YAML",
		},
		{
			name:     "ParsingRegex",
			err:      fmt.Errorf("%w: bad regex", ErrParsing),
			expected: "Parsing_Regex",
		},
		{
			name:     "FilesystemPermission",
			err:      fmt.Errorf("%w: %w", ErrFilesystem, fs.ErrPermission),
			expected: "Filesystem_Permission",
		},
		{
			name:     "FilesystemNotExist",
			err:      fmt.Errorf("%w: %w", ErrFilesystem, fs.ErrNotExist),
			expected: "Filesystem_NotExist",
		},
		{
			name:     "BareNotExist",
			err:      &os.PathError{Op: "open", Path: "x.md", Err: fs.ErrNotExist},
			expected: "Filesystem_NotExist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CategorizeError(tt.err)
			if result != tt.expected {
				t.Errorf("CategorizeError(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestCategorizeError_Unknown(t *testing.T) {
	result := CategorizeError(errors.New("something odd"))
	if result != "Unknown" {
		t.Errorf("CategorizeError(unknown) = %q, want %q", result, "Unknown")
	}
}

// --- CompileRegexPatterns Tests ---

func TestCompileRegexPatterns_ValidPatterns(t *testing.T) {
	patterns := []string{
		`^Changelog$`,
		`(?i)^appendix`,
		`[a-z]+`,
	}

	compiled, err := CompileRegexPatterns(patterns)
	if err != nil {
		t.Fatalf("CompileRegexPatterns() unexpected error: %v", err)
	}
	if len(compiled) != 3 {
		t.Errorf("CompileRegexPatterns() returned %d patterns, want 3", len(compiled))
	}
}

func TestCompileRegexPatterns_EmptySlice(t *testing.T) {
	compiled, err := CompileRegexPatterns([]string{})
	if err != nil {
		t.Fatalf("CompileRegexPatterns([]) unexpected error: %v", err)
	}
	if len(compiled) != 0 {
		t.Errorf("CompileRegexPatterns([]) returned %d patterns, want 0", len(compiled))
	}
}

func TestCompileRegexPatterns_EmptyStringsSkipped(t *testing.T) {
	patterns := []string{"valid", "", "also_valid", ""}

	compiled, err := CompileRegexPatterns(patterns)
	if err != nil {
		t.Fatalf("CompileRegexPatterns() unexpected error: %v", err)
	}
	if len(compiled) != 2 {
		t.Errorf("CompileRegexPatterns() returned %d patterns, want 2", len(compiled))
	}
}

func TestCompileRegexPatterns_InvalidPattern(t *testing.T) {
	patterns := []string{
		`valid`,
		`[invalid`, // Unclosed bracket
	}

	_, err := CompileRegexPatterns(patterns)
	if err == nil {
		t.Fatal("CompileRegexPatterns() expected error for invalid pattern, got nil")
	}
	if !errors.Is(err, ErrConfigValidation) {
		t.Errorf("CompileRegexPatterns() error = %v, want wrapped ErrConfigValidation", err)
	}
}

// --- WrapErrorf Tests ---

func TestWrapErrorf_NilError(t *testing.T) {
	result := WrapErrorf(nil, "some context")
	if result != nil {
		t.Errorf("WrapErrorf(nil, ...) = %v, want nil", result)
	}
}

func TestWrapErrorf_WrapsError(t *testing.T) {
	original := errors.New("original error")
	wrapped := WrapErrorf(original, "context %s", "value")

	if wrapped == nil {
		t.Fatal("WrapErrorf() returned nil, want error")
	}
	if !errors.Is(wrapped, original) {
		t.Error("WrapErrorf() result should wrap original error")
	}
	expectedMsg := "context value: original error"
	if wrapped.Error() != expectedMsg {
		t.Errorf("WrapErrorf() message = %q, want %q", wrapped.Error(), expectedMsg)
	}
}
