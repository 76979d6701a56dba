// Package config provides configuration structures and utilities for
// astralmap: scan options populated from CLI flags, the optional YAML
// configuration file, and XDG directory paths.
package config
