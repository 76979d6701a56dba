package groups

import (
	"errors"
	"fmt"
)

// Policy selects the group for taxa absent from the group table.
type Policy string

// Default-group policies.
const (
	// PolicySpecies maps each unlisted taxon to itself, the usual choice
	// when every sample is its own species.
	PolicySpecies Policy = "species"

	// PolicyNA maps unlisted taxa to the literal string "NA".
	PolicyNA Policy = "NA"

	// PolicyNone maps unlisted taxa to the empty string.
	PolicyNone Policy = "none"
)

// ErrInvalidPolicy is returned by ParsePolicy for unknown policy names.
var ErrInvalidPolicy = errors.New("invalid default-group policy")

// ParsePolicy validates a policy name from the CLI or config file.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicySpecies, PolicyNA, PolicyNone:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want species, NA, or none)", ErrInvalidPolicy, s)
	}
}

// Resolver resolves the final group string for each taxon.
// The table is read-only during resolution.
type Resolver struct {
	table  Table
	policy Policy
}

// NewResolver creates a Resolver. A nil table behaves as an empty one.
func NewResolver(table Table, policy Policy) *Resolver {
	if table == nil {
		table = make(Table)
	}
	return &Resolver{table: table, policy: policy}
}

// Resolve returns the group for a taxon. A table entry wins verbatim,
// even when its value is the empty string; otherwise the policy applies.
func (r *Resolver) Resolve(taxon string) string {
	if group, ok := r.table[taxon]; ok {
		return group
	}
	switch r.policy {
	case PolicyNA:
		return "NA"
	case PolicyNone:
		return ""
	default:
		// PolicySpecies, and the safety net for a zero-value Resolver.
		return taxon
	}
}
