package process

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Sriram-PR/md-toc/pkg/config"
	applog "github.com/Sriram-PR/md-toc/pkg/log"
	"github.com/Sriram-PR/md-toc/pkg/models"
	"github.com/Sriram-PR/md-toc/pkg/utils"
)

// Options controls which headings are listed and how they are rendered
type Options struct {
	MinLevel   int
	MaxLevel   int
	Indent     string
	SkipTitles []string // Normalized (trimmed, lowercased) titles to leave out
	Exclude    []*regexp.Regexp
	Parser     models.ParserKind
}

// DefaultOptions lists every heading level with two-space nesting and skips
// an existing "Table of Contents" heading.
func DefaultOptions() Options {
	return Options{
		MinLevel:   config.MinHeadingLevel,
		MaxLevel:   config.MaxHeadingLevel,
		Indent:     config.DefaultIndent,
		SkipTitles: []string{config.NormalizeTitle(config.DefaultTitle)},
		Parser:     models.ParserLines,
	}
}

// OptionsFromConfig converts a validated AppConfig into builder options.
func OptionsFromConfig(cfg *config.AppConfig) (Options, error) {
	exclude, err := utils.CompileRegexPatterns(cfg.ExcludePatterns)
	if err != nil {
		return Options{}, err
	}
	return Options{
		MinLevel:   cfg.MinLevel,
		MaxLevel:   cfg.MaxLevel,
		Indent:     cfg.Indent,
		SkipTitles: cfg.SkipTitles,
		Exclude:    exclude,
		Parser:     cfg.Parser,
	}, nil
}

// Builder turns document lines into a table of contents
type Builder struct {
	opts Options
	skip map[string]bool
	log  *logrus.Entry
}

// NewBuilder creates a Builder. Zero-valued option fields fall back to
// DefaultOptions; a nil log discards output.
func NewBuilder(opts Options, log *logrus.Entry) *Builder {
	def := DefaultOptions()
	if opts.MinLevel < config.MinHeadingLevel || opts.MinLevel > config.MaxHeadingLevel {
		opts.MinLevel = def.MinLevel
	}
	if opts.MaxLevel < opts.MinLevel || opts.MaxLevel > config.MaxHeadingLevel {
		opts.MaxLevel = def.MaxLevel
	}
	if opts.Indent == "" {
		opts.Indent = def.Indent
	}
	if opts.SkipTitles == nil {
		opts.SkipTitles = def.SkipTitles
	}
	if !opts.Parser.IsValid() {
		opts.Parser = def.Parser
	}
	if log == nil {
		log = applog.Discard()
	}

	skip := make(map[string]bool, len(opts.SkipTitles))
	for _, t := range opts.SkipTitles {
		skip[config.NormalizeTitle(t)] = true
	}
	return &Builder{opts: opts, skip: skip, log: log}
}

// Headings extracts headings from lines using the configured parser
func (b *Builder) Headings(lines []string) []models.Heading {
	if b.opts.Parser == models.ParserGoldmark {
		return ExtractHeadings([]byte(strings.Join(lines, "\n")))
	}
	return ExtractHeadingsFromLines(lines)
}

// Entries returns the listed headings, in document order, each with a unique
// anchor. Skipped headings never reach the anchor registry.
func (b *Builder) Entries(lines []string) []models.Entry {
	registry := make(anchorRegistry)
	var entries []models.Entry

	for _, h := range b.Headings(lines) {
		if reason := b.skipReason(h); reason != "" {
			b.log.WithFields(logrus.Fields{"line": h.Line, "title": h.Title, "reason": reason}).Debug("Skipping heading")
			continue
		}
		anchor := registry.claim(ComputeAnchor(h.Title))
		entries = append(entries, models.Entry{
			Heading: h,
			Anchor:  anchor,
			Depth:   h.Level - b.opts.MinLevel,
		})
	}
	return entries
}

// Build renders the table of contents for lines. Lines are joined with "\n"
// and no trailing newline is added.
func (b *Builder) Build(lines []string) string {
	entries := b.Entries(lines)
	b.log.WithField("entries", len(entries)).Info("Built table of contents")
	return Render(entries, b.opts.Indent)
}

func (b *Builder) skipReason(h models.Heading) string {
	if h.Level < b.opts.MinLevel || h.Level > b.opts.MaxLevel {
		return "level"
	}
	if b.skip[config.NormalizeTitle(h.Title)] {
		return "skip_titles"
	}
	trimmed := strings.TrimSpace(h.Title)
	for _, re := range b.opts.Exclude {
		if re.MatchString(trimmed) {
			return "exclude_patterns"
		}
	}
	return ""
}

// Render formats entries as a nested markdown bullet list of anchor links
func Render(entries []models.Entry, indent string) string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, fmt.Sprintf("%s- [%s](#%s)", strings.Repeat(indent, e.Depth), e.Title, e.Anchor))
	}
	return strings.Join(out, "\n")
}

// BuildTOC renders a GitHub-compatible table of contents for the given
// document lines using DefaultOptions.
func BuildTOC(lines []string) string {
	return NewBuilder(DefaultOptions(), nil).Build(lines)
}
