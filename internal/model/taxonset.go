package model

import (
	"encoding/json"
	"sort"
)

// TaxonSet is an unordered collection of unique taxon labels.
// It grows by union while a scan is in progress; ordering is imposed
// only at serialization time via Sorted.
type TaxonSet map[string]struct{}

// NewTaxonSet creates a TaxonSet containing the given labels.
func NewTaxonSet(labels ...string) TaxonSet {
	s := make(TaxonSet, len(labels))
	s.AddAll(labels)
	return s
}

// Add inserts a single label. Empty labels are ignored.
func (s TaxonSet) Add(label string) {
	if label == "" {
		return
	}
	s[label] = struct{}{}
}

// AddAll inserts every label in the slice.
func (s TaxonSet) AddAll(labels []string) {
	for _, l := range labels {
		s.Add(l)
	}
}

// Union merges all labels from other into s.
func (s TaxonSet) Union(other TaxonSet) {
	for l := range other {
		s[l] = struct{}{}
	}
}

// Contains reports whether the label is a member of the set.
func (s TaxonSet) Contains(label string) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of unique labels.
func (s TaxonSet) Len() int {
	return len(s)
}

// Sorted returns the labels in ascending lexicographic order.
// This is the only ordered view of the set; all output files derive
// their row order from it.
func (s TaxonSet) Sorted() []string {
	labels := make([]string, 0, len(s))
	for l := range s {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// MarshalJSON encodes the set as a sorted JSON array so that stored
// reports are deterministic and diff-friendly.
func (s TaxonSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of labels into the set.
func (s *TaxonSet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*s = NewTaxonSet(labels...)
	return nil
}
