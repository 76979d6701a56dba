package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Package-level sentinels so callers can use errors.Is while still
// getting a readable message.
var (
	// ErrNoInputDir is returned when no input directory is specified.
	ErrNoInputDir = errors.New("no input directory specified: use --input")

	// ErrNoOutMap is returned when no output map file is specified.
	ErrNoOutMap = errors.New("no output map file specified: use --out-map")

	// ErrEmptyPattern is returned when the pattern list is empty after
	// trimming, which would match nothing.
	ErrEmptyPattern = errors.New("empty pattern list: provide at least one glob pattern")

	// ErrInvalidDefaultGroup is returned for an unknown default-group
	// policy name.
	ErrInvalidDefaultGroup = errors.New("invalid default group: must be species, NA, or none")
)
