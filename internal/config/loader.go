package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".astralmap.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .astralmap.yaml configuration
// file. It seeds defaults for recurring options; CLI flags always win.
type File struct {
	// Pattern overrides the default glob pattern list.
	Pattern string `yaml:"pattern,omitempty"`

	// DefaultGroup overrides the default-group policy.
	DefaultGroup string `yaml:"defaultGroup,omitempty"`

	// Groups is a default path for the taxon→group table.
	Groups string `yaml:"groups,omitempty"`

	// Strict enables strict mode by default. A pointer distinguishes
	// "unset" from an explicit false.
	Strict *bool `yaml:"strict,omitempty"`
}

// LoadConfigFile loads defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in order:
// 1. the explicit path, when given
// 2. .astralmap.yaml in the current directory
// 3. the XDG config directory (~/.config/astralmap/.astralmap.yaml)
//
// Returns the path if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Apply copies the file's set values onto the config. Callers apply it
// before reading CLI flags so that flags take precedence.
func (cf *File) Apply(cfg *Config) {
	if cf.Pattern != "" {
		cfg.Pattern = cf.Pattern
	}
	if cf.DefaultGroup != "" {
		cfg.DefaultGroup = cf.DefaultGroup
	}
	if cf.Groups != "" {
		cfg.GroupsFile = cf.Groups
	}
	if cf.Strict != nil {
		cfg.Strict = *cf.Strict
	}
}
