package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadenpxrk/pacont/internal/clipboard"
)

type failingSink struct{}

func (failingSink) WriteAll(string) error { return errors.New("no display") }

func newTestWriter(sink clipboard.Sink) (*Writer, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Writer{Stdout: &stdout, Stderr: &stderr, Sink: sink}, &stdout, &stderr
}

func TestDeliverStdout(t *testing.T) {
	mem := &clipboard.Memory{}
	w, stdout, stderr := newTestWriter(mem)

	require.NoError(t, w.Deliver("**a.txt:**\na\n\n", false))
	assert.Equal(t, "**a.txt:**\na\n\n", stdout.String())
	assert.Empty(t, stderr.String())
	assert.Equal(t, 0, mem.Writes)
}

func TestDeliverEmptyStdout(t *testing.T) {
	w, stdout, stderr := newTestWriter(&clipboard.Memory{})

	require.NoError(t, w.Deliver("", false))
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestDeliverClipboard(t *testing.T) {
	mem := &clipboard.Memory{}
	w, stdout, stderr := newTestWriter(mem)

	require.NoError(t, w.Deliver("body", true))
	assert.Equal(t, "body", mem.Text)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Output copied to clipboard.\n", stderr.String())
}

func TestDeliverClipboardNothingToCopy(t *testing.T) {
	mem := &clipboard.Memory{}
	w, stdout, stderr := newTestWriter(mem)

	require.NoError(t, w.Deliver("", true))
	assert.Equal(t, 0, mem.Writes)
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Nothing to copy: No content generated or an error occurred.\n", stderr.String())
}

func TestDeliverClipboardFailure(t *testing.T) {
	w, _, stderr := newTestWriter(failingSink{})

	err := w.Deliver("body", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
	assert.Empty(t, stderr.String())
}

func TestFatal(t *testing.T) {
	w, stdout, stderr := newTestWriter(nil)

	w.Fatal(errors.New("no paths provided"))
	assert.Equal(t, "Error: no paths provided\n", stderr.String())
	assert.Empty(t, stdout.String())
}

func TestFatalColored(t *testing.T) {
	w, _, stderr := newTestWriter(nil)
	w.Color = true

	w.Fatal(errors.New("boom"))
	assert.Contains(t, stderr.String(), "\x1b[")
	assert.Contains(t, stderr.String(), "boom\n")
}
