package config

import (
	"strings"

	"github.com/Sriram-PR/md-toc/pkg/models"
)

const (
	DefaultTitle      = "Table of Contents"
	DefaultTitleLevel = 2
	DefaultIndent     = "  "
	MinHeadingLevel   = 1
	MaxHeadingLevel   = 6
)

// AppConfig holds the table-of-contents generation settings.
// The zero value, once validated, reproduces the default GitHub-style output.
type AppConfig struct {
	Title           string            `yaml:"title,omitempty"`            // Text of the header printed above the list
	TitleLevel      int               `yaml:"title_level,omitempty"`      // Heading level of that header
	MinLevel        int               `yaml:"min_level,omitempty"`        // Shallowest heading level listed
	MaxLevel        int               `yaml:"max_level,omitempty"`        // Deepest heading level listed
	Indent          string            `yaml:"indent,omitempty"`           // Indentation unit per nesting level
	SkipTitles      []string          `yaml:"skip_titles,omitempty"`      // Heading titles never listed (case-insensitive)
	ExcludePatterns []string          `yaml:"exclude_patterns,omitempty"` // Regex patterns matched against trimmed titles
	Parser          models.ParserKind `yaml:"parser,omitempty"`           // "lines" or "goldmark"
}

// Header returns the markdown heading line printed above the generated list
func (c *AppConfig) Header() string {
	level := c.TitleLevel
	if level < MinHeadingLevel || level > MaxHeadingLevel {
		level = DefaultTitleLevel
	}
	title := c.Title
	if title == "" {
		title = DefaultTitle
	}
	return strings.Repeat("#", level) + " " + title
}

// NormalizeTitle is the comparison form used for skip_titles matching
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
