package query

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDatasetManifest(t *testing.T) {
	dir := t.TempDir()

	dotPath := filepath.Join(dir, "g1.dot")
	require.NoError(t, os.WriteFile(dotPath, []byte("digraph G {\n  \"0\" -> \"1\" [label=\"a\"];\n}\n"), 0o644))

	manifestPath := filepath.Join(dir, "manifest.yaml")
	manifest := "graphs:\n  - name: g1\n    path: g1.dot\n"
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifest), 0o644))

	r := NewRegistry()
	require.NoError(t, r.LoadDataset(manifestPath))

	g, err := r.Get("g1")
	require.NoError(t, err)
	require.True(t, g.HasEdge("0", "a", "1"))
}

func TestLoadDatasetMissingFile(t *testing.T) {
	r := NewRegistry()
	err := r.LoadDataset("/no/such/manifest.yaml")
	require.ErrorIs(t, err, ErrInvalidInput)
}
