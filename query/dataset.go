package query

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathql/graph"
)

// datasetManifest is the YAML shape LoadDataset reads: a named list of DOT
// files, paths resolved relative to the manifest's own directory.
type datasetManifest struct {
	Graphs []struct {
		Name string `yaml:"name"`
		Path string `yaml:"path"`
	} `yaml:"graphs"`
}

// LoadDataset reads a YAML manifest of {name, path} DOT-file entries and
// registers each one under its name, replacing any graph already
// registered under that name. Relative paths in the manifest
// are resolved against the manifest file's directory.
func (r *Registry) LoadDataset(manifestPath string) error {
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	var m datasetManifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("%w: malformed dataset manifest: %s", ErrInvalidInput, err)
	}

	dir := filepath.Dir(manifestPath)
	for _, entry := range m.Graphs {
		path := entry.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: loading %q: %s", ErrInvalidInput, entry.Name, err)
		}
		g, err := graph.ReadDOT(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidInput, entry.Name, err)
		}
		r.Put(entry.Name, g)
	}
	return nil
}
