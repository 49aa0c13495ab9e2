package concat

import (
	"fmt"
	"strings"
)

// Render returns the text to emit for res: the concatenated body by default,
// or the summary block in summary mode.
func (a *Aggregator) Render(res Result) string {
	if !a.opts.SummaryOnly {
		return res.Body
	}
	return Summary(res, a.opts.Tokens != nil)
}

// Summary formats the totals of res. The token line is added only when requested.
func Summary(res Result, withTokens bool) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Paths: %s\n", strings.Join(res.Paths, " ")))
	builder.WriteString(fmt.Sprintf("Total Characters: %d\n", res.Counts.Chars))
	builder.WriteString(fmt.Sprintf("Total Words: %d\n", res.Counts.Words))
	builder.WriteString(fmt.Sprintf("Total Non-Empty Lines: %d\n", res.Counts.Lines))
	if withTokens {
		builder.WriteString(fmt.Sprintf("Total Tokens: %d\n", res.Counts.Tokens))
	}
	return builder.String()
}
