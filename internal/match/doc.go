// Package match provides identifier normalization, Levenshtein distance and
// candidate ranking used to suggest member names after a failed lookup.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks candidate names against a requested one
//   - Suggest: returns the closest candidate when it is close enough
package match
