// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed; edit it to rename
// the tool without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	ShortName   string `yaml:"short_name"`
	Description string `yaml:"description"`
	Tagline     string `yaml:"tagline"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ProjectFile string `yaml:"project_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "rncreate",
			DisplayName: "React Native Create Template CLI",
			ShortName:   "RN Create Template",
			Description: "Scaffold React Native components, screens, hooks and navigation",
			Tagline:     "MoriWare - https://www.moriware.dev",
			HomeDir:     ".rncreate",
			EnvPrefix:   "RNCREATE",
			ProjectFile: "rncreate.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "rncreate").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the banner title.
func DisplayName() string { load(); return defaults.DisplayName }

// ShortName returns the name used in the farewell line.
func ShortName() string { load(); return defaults.ShortName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// Tagline returns the banner subtitle.
func Tagline() string { load(); return defaults.Tagline }

// HomeDir returns the dot-directory name under $HOME (e.g., ".rncreate").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "RNCREATE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ProjectFile returns the per-project settings file name.
func ProjectFile() string { load(); return defaults.ProjectFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("delay") → "RNCREATE_DELAY".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
