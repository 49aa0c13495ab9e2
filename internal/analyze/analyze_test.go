package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     Counts
	}{
		{name: "empty", contents: "", want: Counts{}},
		{name: "single line with newline", contents: "Test content\n", want: Counts{Chars: 13, Words: 2, Lines: 1}},
		{name: "no trailing newline", contents: "Hello World", want: Counts{Chars: 11, Words: 2, Lines: 1}},
		{name: "blank lines are not counted", contents: "a\n\n   \n\tb\n", want: Counts{Chars: 10, Words: 2, Lines: 2}},
		{name: "crlf terminators", contents: "one\r\ntwo\r\n\r\n", want: Counts{Chars: 12, Words: 2, Lines: 2}},
		{name: "whitespace collapses", contents: "  a \t\t b\n\n c  ", want: Counts{Chars: 14, Words: 3, Lines: 2}},
		{name: "multibyte code points", contents: "Hello 世界 🌍\n", want: Counts{Chars: 11, Words: 3, Lines: 1}},
		// e + combining acute accent counts as two code points
		{name: "combining sequence", contents: "e\u0301", want: Counts{Chars: 2, Words: 1, Lines: 1}},
		{name: "unicode whitespace separates words", contents: "a\u00a0b\u2003c", want: Counts{Chars: 5, Words: 3, Lines: 1}},
		{name: "only whitespace", contents: " \n\t\n", want: Counts{Chars: 4, Words: 0, Lines: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.contents))
		})
	}
}

type fixedCounter int

func (f fixedCounter) Count(string) int { return int(f) }

func TestAnalyzeWith(t *testing.T) {
	assert.Equal(t, 0, AnalyzeWith("abc", nil).Tokens)

	got := AnalyzeWith("abc def\n", fixedCounter(7))
	assert.Equal(t, Counts{Chars: 8, Words: 2, Lines: 1, Tokens: 7}, got)
}

func TestCountsAdd(t *testing.T) {
	a := Counts{Chars: 1, Words: 2, Lines: 3, Tokens: 4}
	b := Counts{Chars: 10, Words: 20, Lines: 30, Tokens: 40}
	assert.Equal(t, Counts{Chars: 11, Words: 22, Lines: 33, Tokens: 44}, a.Add(b))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "**file1.txt:**\nContent 1\n\n", Format("file1.txt", "Content 1\n"))
	assert.Equal(t, "**empty.txt:**\n\n", Format("empty.txt", ""))

	// Contents are copied verbatim, markdown included.
	raw := "**not a label:**\n<tag> & `code`"
	out := Format("sub/dir.md", raw)
	assert.True(t, strings.HasPrefix(out, "**sub/dir.md:**\n"))
	assert.Contains(t, out, raw)
	assert.True(t, strings.HasSuffix(out, raw+"\n"))
}
