package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgeworks-cli/forge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// KeyOutputRoot is the config key for the directory that receives
// generated projects.
const KeyOutputRoot = "output.root"

// DefaultOutputRoot is used when no output root is configured.
const DefaultOutputRoot = "generated"

// Dir returns the path to the Forge config directory (~/.forge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.forge/config.yaml).
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
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyOutputRoot, DefaultOutputRoot)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// All returns every configured key-value pair, defaults included, with
// nested keys flattened to dotted form.
func All() map[string]string {
	out := make(map[string]string)
	for _, k := range viper.AllKeys() {
		out[k] = viper.GetString(k)
	}
	return out
}

// OutputRoot returns the configured output root directory.
func OutputRoot() string {
	if v := viper.GetString(KeyOutputRoot); v != "" {
		return v
	}
	return DefaultOutputRoot
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
