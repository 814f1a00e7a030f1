package cmakeparse

import (
	"strings"
	"unicode"
)

// tokenizeArgs splits a raw argument string into discrete tokens. Unquoted
// whitespace separates tokens; a "- or '-delimited run is one token with the
// surrounding quotes stripped; an unescaped # outside quotes discards the
// rest of the line. Malformed quoting degenerates to best-effort splitting,
// never an error.
func tokenizeArgs(argsText string) []string {
	var args []string
	var cur []rune
	inQuotes := false
	var quoteChar rune

	flush := func() {
		if s := strings.TrimSpace(string(cur)); s != "" {
			args = append(args, s)
		}
		cur = cur[:0]
	}

	runes := []rune(argsText)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if ch == '#' && !inQuotes {
			flush()
			for i < len(runes) && runes[i] != '\n' && runes[i] != '\r' {
				i++
			}
			continue
		}

		switch {
		case (ch == '"' || ch == '\'') && (len(cur) == 0 || cur[len(cur)-1] != '\\'):
			// A quote preceded by a backslash is literal and does not
			// toggle quote state.
			if !inQuotes {
				inQuotes = true
				quoteChar = ch
				cur = append(cur, ch)
			} else if ch == quoteChar {
				inQuotes = false
				quoteChar = 0
				cur = append(cur, ch)
			} else {
				cur = append(cur, ch)
			}
		case unicode.IsSpace(ch) && !inQuotes:
			flush()
		default:
			cur = append(cur, ch)
		}
	}
	flush()

	if len(args) == 0 {
		return nil
	}

	// Strip surrounding quote pairs from the finished tokens.
	out := make([]string, 0, len(args))
	for _, a := range args {
		if (a[0] == '"' && a[len(a)-1] == '"') || (a[0] == '\'' && a[len(a)-1] == '\'') {
			if len(a) == 1 {
				a = ""
			} else {
				a = a[1 : len(a)-1]
			}
		}
		out = append(out, a)
	}
	return out
}
