// Package clipboard hands rendered output to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility exists on this system.
var ErrUnavailable = errors.New("clipboard is not available on this system")

// Sink receives text destined for the clipboard.
type Sink interface {
	WriteAll(text string) error
}

// System writes to the platform clipboard through pbcopy, xclip, xsel,
// wl-copy or the Windows API, whichever is present.
type System struct{}

// WriteAll replaces the clipboard contents with text.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// Memory keeps the last written text. Useful for tests and dry runs.
type Memory struct {
	Text   string
	Writes int
}

// WriteAll records text as the current contents.
func (m *Memory) WriteAll(text string) error {
	m.Text = text
	m.Writes++
	return nil
}
