package cmakeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "splits on whitespace",
			in:   "main.cpp utils.cpp  helper.cpp",
			want: []string{"main.cpp", "utils.cpp", "helper.cpp"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "whitespace only",
			in:   "   \t  ",
			want: nil,
		},
		{
			name: "double quoted run is one token without quotes",
			in:   `name "a value with spaces" tail`,
			want: []string{"name", "a value with spaces", "tail"},
		},
		{
			name: "single quoted run is one token without quotes",
			in:   `'hello world' next`,
			want: []string{"hello world", "next"},
		},
		{
			name: "other quote kind inside quotes is literal",
			in:   `"it's fine"`,
			want: []string{"it's fine"},
		},
		{
			name: "comment discards rest of line",
			in:   "a b # trailing comment\nc",
			want: []string{"a", "b", "c"},
		},
		{
			name: "comment inside quotes is literal",
			in:   `"a # not a comment" b`,
			want: []string{"a # not a comment", "b"},
		},
		{
			name: "escaped quote does not toggle quote state",
			in:   `foo\" bar`,
			want: []string{`foo\"`, "bar"},
		},
		{
			name: "newlines separate tokens",
			in:   "one\ntwo\r\nthree",
			want: []string{"one", "two", "three"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tokenizeArgs(tt.in))
		})
	}
}

func TestTokenizeArgs_UnterminatedQuoteIsBestEffort(t *testing.T) {
	t.Parallel()

	// Malformed quoting never raises; the run is kept as a single token.
	got := tokenizeArgs(`"unterminated value`)
	assert.Equal(t, []string{`"unterminated value`}, got)
}
