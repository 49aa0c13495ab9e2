package clipboard

import (
	"errors"
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySink(t *testing.T) {
	var m Memory
	var sink Sink = &m

	require.NoError(t, sink.WriteAll("first"))
	require.NoError(t, sink.WriteAll("second"))
	assert.Equal(t, "second", m.Text)
	assert.Equal(t, 2, m.Writes)
}

func TestSystemUnsupported(t *testing.T) {
	saved := atotto.Unsupported
	atotto.Unsupported = true
	t.Cleanup(func() { atotto.Unsupported = saved })

	err := System{}.WriteAll("text")
	assert.True(t, errors.Is(err, ErrUnavailable))
}
