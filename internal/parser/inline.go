package parser

import (
	"regexp"
	"strings"
)

// inlineKeyRe finds the start of each "key =" inside a one-line block body.
var inlineKeyRe = regexp.MustCompile(`(?:^|\s)([A-Za-z_][\w.:\-]*)\s*=`)

// splitInline breaks the body of a one-line block such as
//
//	permission { path_regex = "kitty" permission_type = "screencopy" mode = allow }
//
// into one "key = value" line per assignment. A value runs until the next
// key, so values containing spaces survive. Quoted text never starts a key.
func splitInline(body string) []string {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}

	masked := maskQuoted(body)
	locs := inlineKeyRe.FindAllStringSubmatchIndex(masked, -1)
	if len(locs) <= 1 {
		return []string{body}
	}

	lines := make([]string, 0, len(locs))
	for i, loc := range locs {
		start := loc[2]
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][2]
		}
		if i == 0 && start > 0 {
			// Leading text before the first key is kept as its own line.
			if lead := strings.TrimSpace(body[:start]); lead != "" {
				lines = append(lines, lead)
			}
		}
		lines = append(lines, strings.TrimSpace(body[start:end]))
	}
	return lines
}

// maskQuoted replaces the contents of double-quoted runs with 'x' so the
// key pattern cannot match inside them. Byte offsets are preserved.
func maskQuoted(s string) string {
	b := []byte(s)
	in := false
	for i, c := range b {
		switch {
		case c == '"':
			in = !in
		case in:
			b[i] = 'x'
		}
	}
	return string(b)
}

// unmatchedClose returns the byte offset of the first '}' in s that has no
// '{' before it on the same line, or -1. Quoted text is ignored.
func unmatchedClose(s string) int {
	depth := 0
	for i, c := range maskQuoted(s) {
		switch c {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
