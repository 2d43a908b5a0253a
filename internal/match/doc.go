// Package match provides name normalization, Levenshtein distance and
// closest-name suggestions for schema type names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks declared names by similarity to an unresolved token
package match
