package match

import (
	"cmp"
	"slices"
)

// Candidate is a known name scored against a requested one.
type Candidate struct {
	Name  string
	Score float64 // normalized Levenshtein similarity (0-1)

	// Metadata for debugging/explanation
	NormalizedName string
}

// CandidateList is a list of candidates, best first.
type CandidateList []Candidate

// Confidence thresholds for suggestions.
const (
	// DefaultMinScore is the minimum score for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.05
)

// Rank scores every distinct name against target.
// Returns candidates sorted by score (descending), then by name.
func Rank(target string, names []string) CandidateList {
	targetNorm := NormalizeIdent(target)

	candidates := make(CandidateList, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}

		norm := NormalizeIdent(name)
		candidates = append(candidates, Candidate{
			Name:           name,
			Score:          LevenshteinNormalized(norm, targetNorm),
			NormalizedName: norm,
		})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return candidates
}

// Suggest returns the name closest to target, provided it scores at least
// DefaultMinScore and is not target itself.
func Suggest(target string, names []string) (string, bool) {
	best := Rank(target, names).AboveThreshold(DefaultMinScore).Best()
	if best == nil || best.Name == target {
		return "", false
	}

	return best.Name, true
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
