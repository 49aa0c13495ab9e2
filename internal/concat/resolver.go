package concat

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jadenpxrk/pacont/internal/analyze"
)

// ResolveFile reads the file at path and returns its labeled block and counts.
// An empty base labels the file with its base name only.
func ResolveFile(path, base string, summaryOnly bool) (FileResult, error) {
	return resolveFile(path, base, summaryOnly, nil)
}

func resolveFile(path, base string, summaryOnly bool, tc analyze.TokenCounter) (FileResult, error) {
	label, err := displayLabel(path, base)
	if err != nil {
		return FileResult{}, err
	}

	// os.ReadFile closes the handle before returning, on success and failure alike.
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, &TraversalError{Kind: NotReadable, Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return FileResult{}, &TraversalError{Kind: NotUTF8, Path: path}
	}

	contents := string(data)
	fr := FileResult{
		Label:  label,
		Counts: analyze.AnalyzeWith(contents, tc),
	}
	if !summaryOnly {
		fr.Text = analyze.Format(label, contents)
	}
	return fr, nil
}

// displayLabel returns the base name when base is empty or is the file's own
// directory, otherwise the slash-separated path relative to base.
func displayLabel(path, base string) (string, error) {
	if base == "" || filepath.Clean(base) == filepath.Dir(path) {
		return filepath.Base(path), nil
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", &TraversalError{Kind: PathEscapesBase, Path: path, Err: err}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &TraversalError{Kind: PathEscapesBase, Path: path}
	}
	return filepath.ToSlash(rel), nil
}
