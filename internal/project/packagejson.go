package project

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// PackageFileName is the npm manifest looked up in the working directory.
const PackageFileName = "package.json"

// PackageJSON holds the fields of package.json the checks need.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ReadPackageJSON parses dir/package.json.
func ReadPackageJSON(fs afero.Fs, dir string) (*PackageJSON, error) {
	path := filepath.Join(dir, PackageFileName)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pkg, nil
}

// Dependency returns the declared range for name, looking at dependencies
// first and devDependencies second.
func (p *PackageJSON) Dependency(name string) (string, bool) {
	if r, ok := p.Dependencies[name]; ok {
		return r, true
	}
	r, ok := p.DevDependencies[name]
	return r, ok
}
