// Package suggest ranks known names by similarity to an unknown one.
//
// It backs the "did you mean" hints of unknown accessor errors. Candidates
// are found two ways: fuzzy subsequence matching (so "chap" finds
// "chapter") and edit distance over normalized identifiers (so "chaptre"
// finds "chapter"). Results are ordered by edit distance, closest first.
package suggest
