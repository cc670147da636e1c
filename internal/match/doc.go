// Package match ranks declared names against a misspelled one, for "did you mean"
// hints in mapping errors.
//
// Key functions:
//   - NormalizeIdent: folds case and separators so "created_at" meets "CreatedAt"
//   - Levenshtein: edit distance between strings, counted in runes
//   - Rank: scores every declared name against the given one
//   - Suggest: the single confident best match, if any
package match
