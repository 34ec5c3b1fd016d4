package process

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^\p{L}\p{N}_` + whitespaceClass + `-]`) // Anything but word chars, whitespace, hyphen
	whitespaceRuns = regexp.MustCompile(`[` + whitespaceClass + `]+`)
)

// ComputeAnchor turns a heading title into a GitHub-style anchor slug.
// It does not make the slug unique; see anchorRegistry.
func ComputeAnchor(title string) string {
	anchor := strings.ToLower(strings.TrimSpace(title))
	anchor = nonSlugChars.ReplaceAllString(anchor, "")
	anchor = whitespaceRuns.ReplaceAllString(anchor, "-")
	return anchor
}

// anchorRegistry tracks every anchor handed out during one build.
// Keys are slugs, values the last numeric suffix used for that base slug.
type anchorRegistry map[string]int

// claim returns a unique anchor for base, suffixing -1, -2, ... on repeats.
// Suffixed anchors are registered too so a later literal heading with the
// same text cannot collide with them.
func (r anchorRegistry) claim(base string) string {
	last, seen := r[base]
	if !seen {
		r[base] = 0
		return base
	}

	n := last + 1
	anchor := fmt.Sprintf("%s-%d", base, n)
	for {
		if _, taken := r[anchor]; !taken {
			break
		}
		n++
		anchor = fmt.Sprintf("%s-%d", base, n)
	}
	r[base] = n
	r[anchor] = 0
	return anchor
}
