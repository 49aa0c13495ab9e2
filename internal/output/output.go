// Package output routes rendered text to stdout or the clipboard and writes
// the user-facing status lines.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jadenpxrk/pacont/internal/clipboard"
)

const (
	copiedMessage  = "Output copied to clipboard."
	nothingMessage = "Nothing to copy: No content generated or an error occurred."
)

// Writer delivers output. Status lines go to Stderr, never Stdout.
type Writer struct {
	Stdout io.Writer
	Stderr io.Writer
	Sink   clipboard.Sink
	Color  bool
}

// NewWriter returns a Writer on the process streams and the system clipboard,
// coloring status lines only when stderr is a terminal.
func NewWriter() *Writer {
	return &Writer{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Sink:   clipboard.System{},
		Color:  IsTerminal(os.Stderr),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Deliver writes text verbatim to Stdout, or hands it to the clipboard sink.
// Empty text is never copied. Only a sink failure is returned.
func (w *Writer) Deliver(text string, toClipboard bool) error {
	if !toClipboard {
		_, err := io.WriteString(w.Stdout, text)
		return err
	}

	if text == "" {
		w.status(color.FgYellow, nothingMessage)
		return nil
	}
	if err := w.Sink.WriteAll(text); err != nil {
		return err
	}
	w.status(color.FgGreen, copiedMessage)
	return nil
}

// Fatal writes "Error: <err>" to Stderr.
func (w *Writer) Fatal(err error) {
	label := w.paint(color.New(color.FgRed, color.Bold))
	_, _ = fmt.Fprintf(w.Stderr, "%s %v\n", label.Sprint("Error:"), err)
}

func (w *Writer) status(attr color.Attribute, msg string) {
	_, _ = w.paint(color.New(attr)).Fprintln(w.Stderr, msg)
}

func (w *Writer) paint(c *color.Color) *color.Color {
	if w.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
