package models

// ParserKind selects how headings are extracted from a document
type ParserKind string

const (
	ParserUnset    ParserKind = ""         // Zero value = use the default
	ParserLines    ParserKind = "lines"    // Line-by-line ATX heading regex
	ParserGoldmark ParserKind = "goldmark" // CommonMark AST walk
)

// String implements fmt.Stringer for logging
func (p ParserKind) String() string {
	if p == "" {
		return "unset"
	}
	return string(p)
}

// IsValid returns true if the parser kind is a known value
func (p ParserKind) IsValid() bool {
	switch p {
	case ParserLines, ParserGoldmark:
		return true
	}
	return false
}
