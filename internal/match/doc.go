// Package match suggests field names for misspelled exemptions.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "created_at" and
//     "CreatedAt" compare equal
//   - Levenshtein: computes edit distance between identifiers
//   - Suggest: picks the closest candidate name, if any is close enough
package match
