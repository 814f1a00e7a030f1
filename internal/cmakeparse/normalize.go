package cmakeparse

import "strings"

// normalizeMultiline collapses line breaks inside parenthesized commands into
// single spaces so a command spanning several lines becomes one logical line.
// A newline inside a #-comment opened at depth > 0 is preserved, because it
// terminates the comment; depth-0 newlines are always preserved.
func normalizeMultiline(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	depth := 0
	inComment := false
	for _, ch := range content {
		switch {
		case ch == '(':
			depth++
			b.WriteRune(ch)
			inComment = false
		case ch == ')':
			depth--
			b.WriteRune(ch)
			inComment = false
		case ch == '#' && depth > 0:
			inComment = true
			b.WriteRune(ch)
		case ch == '\n' || ch == '\r':
			if depth > 0 {
				if inComment {
					b.WriteRune(ch)
					inComment = false
				} else {
					b.WriteRune(' ')
				}
			} else {
				b.WriteRune(ch)
			}
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
