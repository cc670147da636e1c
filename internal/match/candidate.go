package match

import (
	"cmp"
	"slices"
)

// Confidence thresholds for Suggest.
const (
	// DefaultMinScore is the lowest similarity worth suggesting.
	DefaultMinScore = 0.5
	// DefaultMinGap is the score lead the best candidate needs over the runner-up.
	DefaultMinGap = 0.1
)

// Candidate is a declared name scored against the name that was given.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

// Rank scores every declared name against given. Exact matches after normalization
// score 1, so "created_at" ranks "CreatedAt" first.
func Rank(given string, declared []string) CandidateList {
	candidates := make(CandidateList, 0, len(declared))
	for _, name := range declared {
		score := max(LevenshteinNormalized(given, name), NormalizedScore(given, name))
		candidates = append(candidates, Candidate{Name: name, Score: score})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return candidates
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if there are none.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}
	return result
}

// HighConfidence returns the best candidate when it scores at least minScore and
// leads the runner-up by at least minGap.
func (c CandidateList) HighConfidence(minScore, minGap float64) *Candidate {
	best := c.Best()
	if best == nil || best.Score < minScore {
		return nil
	}

	if len(c) > 1 && c[0].Score-c[1].Score < minGap {
		return nil
	}

	return best
}

// Suggest returns the declared name that given most likely misspells.
func Suggest(given string, declared []string) (string, bool) {
	best := Rank(given, declared).HighConfidence(DefaultMinScore, DefaultMinGap)
	if best == nil || best.Name == given {
		return "", false
	}

	return best.Name, true
}
