// Package dialogue parses generated gallery scripts into ordered
// speaker/line records and persists them as JSON.
package dialogue

import (
	"regexp"
	"strings"
)

// Line is one utterance of a generated script.
type Line struct {
	Speaker string `json:"speaker"`
	Line    string `json:"line"`
}

var lineRe = regexp.MustCompile(`^\s*\[([^\]]+)\]: (.*)$`)

// Parse extracts dialogue lines of the form "[Speaker]: text" from raw
// generator output. Anything else (titles, commentary, blank lines) is
// prose and is skipped silently. The speaker label is taken verbatim; the
// utterance is trimmed. Parsing is line-oriented: if an utterance wraps
// onto a following line, the continuation is dropped as prose. Existing
// generated scripts depend on that, so it stays.
func Parse(text string) []Line {
	lines := []Line{}
	if text == "" {
		return lines
	}
	for _, raw := range strings.Split(text, "\n") {
		m := lineRe.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		lines = append(lines, Line{
			Speaker: m[1],
			Line:    strings.TrimSpace(m[2]),
		})
	}
	return lines
}
