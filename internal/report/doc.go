// Package report writes scan results in their output formats:
//   - MapWriter: the two-column taxon→group map file consumed by
//     species-tree inference tools
//   - TaxaWriter: a plain sorted list of unique taxa
//   - MarkdownWriter: a human-oriented scan summary for documentation
//
// Row ordering is imposed here, at serialization time, by sorting taxa
// ascending; nothing upstream relies on insertion order.
package report
