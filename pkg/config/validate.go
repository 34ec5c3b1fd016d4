package config

import (
	"fmt"

	"github.com/Sriram-PR/md-toc/pkg/models"
	"github.com/Sriram-PR/md-toc/pkg/utils"
)

// Validate checks AppConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults.
func (c *AppConfig) Validate() (warnings []string, err error) {
	// Title
	if c.Title == "" {
		c.Title = DefaultTitle
	}

	// TitleLevel
	if c.TitleLevel == 0 {
		c.TitleLevel = DefaultTitleLevel
	} else if c.TitleLevel < MinHeadingLevel || c.TitleLevel > MaxHeadingLevel {
		warnings = append(warnings, fmt.Sprintf(
			"title_level must be between 1 and 6 (got %d), defaulting to %d", c.TitleLevel, DefaultTitleLevel))
		c.TitleLevel = DefaultTitleLevel
	}

	// MinLevel
	if c.MinLevel == 0 {
		c.MinLevel = MinHeadingLevel
	} else if c.MinLevel < MinHeadingLevel || c.MinLevel > MaxHeadingLevel {
		warnings = append(warnings, fmt.Sprintf(
			"min_level must be between 1 and 6 (got %d), defaulting to %d", c.MinLevel, MinHeadingLevel))
		c.MinLevel = MinHeadingLevel
	}

	// MaxLevel
	if c.MaxLevel == 0 {
		c.MaxLevel = MaxHeadingLevel
	} else if c.MaxLevel < MinHeadingLevel || c.MaxLevel > MaxHeadingLevel {
		warnings = append(warnings, fmt.Sprintf(
			"max_level must be between 1 and 6 (got %d), defaulting to %d", c.MaxLevel, MaxHeadingLevel))
		c.MaxLevel = MaxHeadingLevel
	}

	if c.MinLevel > c.MaxLevel {
		return warnings, fmt.Errorf("%w: min_level (%d) > max_level (%d)",
			utils.ErrConfigValidation, c.MinLevel, c.MaxLevel)
	}

	// Indent
	if c.Indent == "" {
		c.Indent = DefaultIndent
	}

	// SkipTitles: always skip the header we print ourselves so re-runs don't nest
	if len(c.SkipTitles) == 0 {
		c.SkipTitles = []string{NormalizeTitle(DefaultTitle)}
	}
	normalized := make([]string, 0, len(c.SkipTitles)+1)
	seen := make(map[string]bool, len(c.SkipTitles)+1)
	for _, t := range append(c.SkipTitles, c.Title) {
		n := NormalizeTitle(t)
		if n == "" {
			warnings = append(warnings, "skip_titles contains an empty entry, ignoring it")
			continue
		}
		if !seen[n] {
			seen[n] = true
			normalized = append(normalized, n)
		}
	}
	c.SkipTitles = normalized

	// ExcludePatterns
	if _, err := utils.CompileRegexPatterns(c.ExcludePatterns); err != nil {
		return warnings, err
	}

	// Parser
	if c.Parser == models.ParserUnset {
		c.Parser = models.ParserLines
	} else if !c.Parser.IsValid() {
		return warnings, fmt.Errorf("%w: unknown parser '%s' (want '%s' or '%s')",
			utils.ErrConfigValidation, c.Parser, models.ParserLines, models.ParserGoldmark)
	}

	return warnings, nil
}
