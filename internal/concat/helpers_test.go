package concat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// writeTree creates files under root from a map of slash-separated relative
// paths to contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, contents := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	}
}

func newAggregator(t *testing.T, opts Options) *Aggregator {
	t.Helper()
	a, err := New(opts, zap.NewNop())
	require.NoError(t, err)
	return a
}

// newObservedAggregator records warnings and above so tests can assert on diagnostics.
func newObservedAggregator(t *testing.T, opts Options) (*Aggregator, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	a, err := New(opts, zap.New(core))
	require.NoError(t, err)
	return a, logs
}

func countSeparators(body string) int {
	return strings.Count(body, Separator)
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
}
