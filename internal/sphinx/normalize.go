package sphinx

import (
	"strings"
	"unicode"
)

// _tabWidth is the distance between tab stops
// when expanding tabs into spaces.
const _tabWidth = 8

// Normalize removes the indentation of a documentation comment
// so that it no longer depends on how the author indented it.
//
// The first line is stripped of surrounding white space.
// The remaining lines are de-indented by the smallest indentation
// among them, ignoring blank lines,
// and stripped of trailing white space.
// Leading and trailing blank lines are removed.
//
// If text contains a line break,
// the result always ends with a single line break.
func Normalize(text string) string {
	lines := splitLines(text)
	if len(lines) == 0 {
		lines = []string{""}
	}
	for i, line := range lines {
		lines[i] = expandTabs(line, _tabWidth)
	}

	indent := -1 // undefined
	for _, line := range lines[1:] {
		n, blank := leadingSpace(line)
		if blank {
			continue
		}
		if indent < 0 || n < indent {
			indent = n
		}
	}

	out := make([]string, 1, len(lines)+1)
	out[0] = strings.TrimSpace(lines[0])
	if indent >= 0 {
		for _, line := range lines[1:] {
			line = strings.TrimRightFunc(dropRunes(line, indent), unicode.IsSpace)
			out = append(out, line)
		}
	}

	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && len(out[0]) == 0 {
		out = out[1:]
	}

	// Multi-line comments keep a trailing line break.
	// Consumers of the normalized text rely on it.
	if strings.ContainsAny(text, "\r\n") {
		out = append(out, "")
	}

	return strings.Join(out, "\n")
}

// splitLines splits s on "\n", "\r\n", and "\r".
// A line break at the very end does not start a new line.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		idx := strings.IndexAny(s, "\r\n")
		if idx < 0 {
			lines = append(lines, s)
			break
		}

		lines = append(lines, s[:idx])
		if s[idx] == '\r' && idx+1 < len(s) && s[idx+1] == '\n' {
			idx++
		}
		s = s[idx+1:]
	}
	return lines
}

// expandTabs replaces tabs in a single line
// with enough spaces to reach the next tab stop.
func expandTabs(line string, width int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}

	var (
		sb  strings.Builder
		col int
	)
	sb.Grow(len(line))
	for _, r := range line {
		if r == '\t' {
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

// leadingSpace reports the number of white space runes
// at the start of line,
// and whether the line is made entirely of white space.
func leadingSpace(line string) (n int, blank bool) {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return n, false
		}
		n++
	}
	return n, true
}

// dropRunes removes the first n runes of s.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
