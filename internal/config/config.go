package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/moriware/rncreate/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyDelay   = "delay"
	KeySrcDir  = "src_dir"
	KeyNoColor = "no_color"
)

// Defaults.
const (
	DefaultDelay  = 420 * time.Millisecond
	DefaultSrcDir = "src"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	Delay   time.Duration
	SrcDir  string
	NoColor bool
}

// Dir returns the path to the config directory (~/.rncreate/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.rncreate/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetDefault(KeyDelay, DefaultDelay.String())
	viper.SetDefault(KeySrcDir, DefaultSrcDir)
	viper.SetDefault(KeyNoColor, false)

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes one key to the user config file. Only keys already stored in
// the file and the one being set are written; defaults, env values and the
// project file stay out of it.
func Set(key string, value interface{}) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)

	if _, err := os.Stat(configFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	v.Set(key, value)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Current returns the settings Viper resolves right now. An unparseable
// delay falls back to DefaultDelay; a negative one means no pause.
func Current() Settings {
	s := Settings{
		SrcDir:  viper.GetString(KeySrcDir),
		NoColor: viper.GetBool(KeyNoColor),
	}

	s.Delay = DefaultDelay
	if raw := viper.GetString(KeyDelay); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			s.Delay = d
		}
	}
	if s.Delay < 0 {
		s.Delay = 0
	}
	if s.SrcDir == "" {
		s.SrcDir = DefaultSrcDir
	}
	return s
}
