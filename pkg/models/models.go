package models

// Heading is a single markdown heading found in a document
type Heading struct {
	Level int    // Number of leading '#' markers (1-6)
	Title string // Text after the marker and its whitespace separator
	Line  int    // 1-based source line, 0 when unknown
}

// Entry is a heading that made it into the table of contents
type Entry struct {
	Heading
	Anchor string // Unique anchor slug, without the leading '#'
	Depth  int    // Nesting depth relative to the shallowest allowed level
}
