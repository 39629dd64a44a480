package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/moriware/rncreate/internal/branding"
)

// ProjectFilePath returns the project settings file inside workDir.
func ProjectFilePath(workDir string) string {
	return filepath.Join(workDir, branding.ProjectFile())
}

// LoadProject validates and merges workDir's project file into Viper. It
// reports whether a file was found. A file that fails validation is not
// merged and the issues are returned as an error.
func LoadProject(fs afero.Fs, workDir string) (bool, error) {
	path := ProjectFilePath(workDir)
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return false, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return true, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return true, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return true, fmt.Errorf("invalid %s: %s", path, strings.Join(msgs, "; "))
	}

	var values map[string]interface{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return true, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := viper.MergeConfigMap(values); err != nil {
		return true, fmt.Errorf("merging %s: %w", path, err)
	}
	return true, nil
}
