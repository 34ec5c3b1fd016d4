package process

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/Sriram-PR/md-toc/pkg/models"
)

// whitespaceClass matches the characters unicode-aware regex engines treat as
// \s, which Go's ASCII-only \s does not cover on its own.
const whitespaceClass = `\s\v\x{1c}-\x{1f}\x{85}\p{Z}`

// headingLine matches an ATX heading: 1-6 '#' then at least one whitespace.
var headingLine = regexp.MustCompile(`^(#{1,6})[` + whitespaceClass + `]+(.*)$`)

// ParseHeadingLine reports whether line is an ATX heading and returns it.
// The title keeps everything after the separator, trailing text included.
func ParseHeadingLine(line string) (models.Heading, bool) {
	m := headingLine.FindStringSubmatch(line)
	if m == nil {
		return models.Heading{}, false
	}
	return models.Heading{Level: len(m[1]), Title: m[2]}, true
}

// ExtractHeadingsFromLines scans lines one at a time and returns every heading
// in document order. Fenced code blocks are not recognised.
func ExtractHeadingsFromLines(lines []string) []models.Heading {
	var headings []models.Heading
	for i, line := range lines {
		if h, ok := ParseHeadingLine(line); ok {
			h.Line = i + 1
			headings = append(headings, h)
		}
	}
	return headings
}

// ExtractHeadings parses markdown content and extracts all headings.
// Unlike the line scanner it skips '#' lines inside code blocks and
// understands setext (underlined) headings.
func ExtractHeadings(markdown []byte) []models.Heading {
	reader := text.NewReader(markdown)
	parser := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	doc := parser.Parse(reader)

	var headings []models.Heading
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		lines := heading.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}
		parts := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			if part := strings.TrimSpace(string(seg.Value(markdown))); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			start := lines.At(0).Start
			headings = append(headings, models.Heading{
				Level: heading.Level,
				Title: strings.Join(parts, " "),
				Line:  bytes.Count(markdown[:start], []byte("\n")) + 1,
			})
		}
		return ast.WalkSkipChildren, nil
	})

	return headings
}

// SplitLines splits document text on \n, \r\n and \r line endings.
// A trailing line ending does not produce an extra empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
