// Package analyze computes text statistics and renders labeled file blocks.
package analyze

import (
	"strings"
	"unicode/utf8"
)

// TokenCounter counts model tokens in a piece of text.
type TokenCounter interface {
	Count(text string) int
}

// Counts holds the statistics computed for one piece of text.
type Counts struct {
	Chars  int
	Words  int
	Lines  int // non-empty lines only
	Tokens int // zero unless a TokenCounter was supplied
}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{
		Chars:  c.Chars + o.Chars,
		Words:  c.Words + o.Words,
		Lines:  c.Lines + o.Lines,
		Tokens: c.Tokens + o.Tokens,
	}
}

// Analyze counts code points, whitespace-separated words and non-empty lines in contents.
func Analyze(contents string) Counts {
	return Counts{
		Chars: utf8.RuneCountInString(contents),
		Words: len(strings.Fields(contents)),
		Lines: countNonEmptyLines(contents),
	}
}

// AnalyzeWith is Analyze plus a token count when tc is non-nil.
func AnalyzeWith(contents string, tc TokenCounter) Counts {
	c := Analyze(contents)
	if tc != nil {
		c.Tokens = tc.Count(contents)
	}
	return c
}

// Format renders a file block: the bold label line, the contents verbatim, and a newline.
func Format(label, contents string) string {
	var b strings.Builder
	b.Grow(len(label) + len(contents) + 7)
	b.WriteString("**")
	b.WriteString(label)
	b.WriteString(":**\n")
	b.WriteString(contents)
	b.WriteString("\n")
	return b.String()
}

func countNonEmptyLines(contents string) int {
	n := 0
	rest := contents
	for rest != "" {
		line, after, _ := strings.Cut(rest, "\n")
		// TrimSpace also drops the \r of a CRLF terminator.
		if strings.TrimSpace(line) != "" {
			n++
		}
		rest = after
	}
	return n
}
