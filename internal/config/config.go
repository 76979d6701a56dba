package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultPattern covers the alignment extensions the extractors
	// understand. Users narrow or widen it via --pattern.
	DefaultPattern = "*.nex,*.nexus,*.fasta,*.fa,*.fas"

	// DefaultGroupPolicy self-maps each taxon, which is correct for the
	// common case where every sample is its own species.
	DefaultGroupPolicy = "species"

	// AppName is the application name used for XDG directory paths.
	AppName = "astralmap"
)

// Config holds all options for a scan run. It is populated from CLI
// flags (optionally seeded by the configuration file) and passed through
// the application by value reference, never via global state.
type Config struct {
	// InputDir is the directory scanned recursively for alignment files.
	InputDir string

	// Pattern is the comma-separated list of glob patterns matched
	// against file base names during discovery.
	Pattern string

	// GroupsFile is the optional CSV/TSV taxon→group table path.
	// Empty means no table; every taxon falls back to DefaultGroup.
	GroupsFile string

	// DefaultGroup is the policy for taxa absent from the group table:
	// "species", "NA", or "none".
	DefaultGroup string

	// OutMap is the output map file path. Parent directories are
	// created as needed.
	OutMap string

	// OutTaxa is the optional taxa-list output path.
	OutTaxa string

	// ReportFile is the optional Markdown scan-summary output path.
	ReportFile string

	// Strict makes any per-file failure abort the whole scan.
	Strict bool

	// Verbose enables debug-level diagnostics on stderr.
	Verbose bool

	// SaveToDB persists the run into the scan-history database.
	SaveToDB bool

	// DBDir is the directory holding the scan-history database.
	// Defaults to the XDG data directory.
	DBDir string

	// ConfigFilePath is the explicit configuration file path, if the
	// user passed one.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Pattern:      DefaultPattern,
		DefaultGroup: DefaultGroupPolicy,
		DBDir:        XDGDataDir(),
	}
}

// PatternList splits the comma-separated pattern string, trimming
// whitespace and dropping empty entries.
func (c *Config) PatternList() []string {
	parts := strings.Split(c.Pattern, ",")
	patterns := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// Validate checks the configuration and returns the first problem found.
// It is called once after flag parsing, before any scanning begins.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return ErrNoInputDir
	}
	if c.OutMap == "" {
		return ErrNoOutMap
	}
	if len(c.PatternList()) == 0 {
		return ErrEmptyPattern
	}
	switch c.DefaultGroup {
	case "species", "NA", "none":
	default:
		return ErrInvalidDefaultGroup
	}
	return nil
}

// XDGDataDir returns the XDG data directory for astralmap
// (~/.local/share/astralmap on Linux).
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for astralmap
// (~/.config/astralmap on Linux).
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
