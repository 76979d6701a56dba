// Package database provides SQLite-based storage for scan history.
// Each completed scan can be saved as a run (summary columns plus the
// full report as JSON), so dataset growth can be tracked across
// assembly iterations and old runs re-inspected.
package database
