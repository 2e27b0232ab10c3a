package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ffspm"
)

func TestPatternWriterFlushesOnClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	w, err := New(path, 0)
	require.NoError(t, err)

	w.Emit(ffspm.Pattern{
		Items:    []ffspm.PatternItem{{Item: "a", Region: ffspm.Low}},
		SumIUtil: 0.6,
	})
	w.Emit(ffspm.Pattern{
		Items:    []ffspm.PatternItem{{Item: "a", Region: ffspm.Low}, {Item: "b", Region: ffspm.Low}},
		SumIUtil: 1.2,
	})

	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "a.L : 0.6", lines[0])
	require.Equal(t, "a.L b.L : 1.2", lines[1])
}

func TestPatternWriterFlushesAtBufferSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	w, err := New(path, 2)
	require.NoError(t, err)
	defer w.Close()

	w.Emit(ffspm.Pattern{Items: []ffspm.PatternItem{{Item: "a", Region: ffspm.Low}}, SumIUtil: 0.1})
	w.Emit(ffspm.Pattern{Items: []ffspm.PatternItem{{Item: "b", Region: ffspm.Low}}, SumIUtil: 0.2})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimRight(string(data), "\n"), "\n"), 2)
}
