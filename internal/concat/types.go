package concat

import (
	"strings"

	"github.com/jadenpxrk/pacont/internal/analyze"
)

// Separator is the line inserted between two non-empty blocks in default mode.
var Separator = strings.Repeat("-", 80) + "\n"

// Options controls a single aggregation run. It is not modified after New.
type Options struct {
	MaxDepth      int  // root is depth 0, its direct entries depth 1
	IncludeErrors bool // log per-entry failures to the diagnostics logger
	SummaryOnly   bool // compute counts only, leave Text/Body empty

	Exclude          []string // doublestar patterns for entries to skip inside directories
	RespectGitignore bool     // honor .gitignore at the root of each directory input

	Tokens analyze.TokenCounter // optional; nil disables token counting
}

// FileResult is the outcome of resolving one regular file.
type FileResult struct {
	Label  string
	Text   string // rendered block; empty in summary mode
	Counts analyze.Counts
}

// Result aggregates one or more resolved files.
type Result struct {
	Body   string
	Counts analyze.Counts
	Paths  []string          // input paths in caller order
	Files  []string          // labels of resolved files in traversal order
	Errors []*TraversalError // absorbed per-entry failures
}

// accumulator folds file results and sub-results into a Result, placing
// separators between non-empty blocks.
type accumulator struct {
	body        strings.Builder
	res         Result
	summaryOnly bool
}

func newAccumulator(summaryOnly bool) *accumulator {
	return &accumulator{summaryOnly: summaryOnly}
}

func (acc *accumulator) appendBlock(block string) {
	if !acc.summaryOnly && acc.body.Len() > 0 && block != "" {
		acc.body.WriteString(Separator)
	}
	acc.body.WriteString(block)
}

func (acc *accumulator) addFile(fr FileResult) {
	acc.appendBlock(fr.Text)
	acc.res.Counts = acc.res.Counts.Add(fr.Counts)
	acc.res.Files = append(acc.res.Files, fr.Label)
}

func (acc *accumulator) merge(sub Result) {
	acc.appendBlock(sub.Body)
	acc.res.Counts = acc.res.Counts.Add(sub.Counts)
	acc.res.Files = append(acc.res.Files, sub.Files...)
	acc.res.Errors = append(acc.res.Errors, sub.Errors...)
}

func (acc *accumulator) addError(err *TraversalError) {
	acc.res.Errors = append(acc.res.Errors, err)
}

func (acc *accumulator) result() Result {
	res := acc.res
	res.Body = acc.body.String()
	return res
}
