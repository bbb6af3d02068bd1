package picker

import (
	"math/rand/v2"

	"food-picker/models"
)

// IntN returns a uniformly distributed int in [0, n).
type IntN func(n int) int

// SelectionResult is the outcome of Select. Pick is nil when nothing matched.
type SelectionResult struct {
	Pick           *models.Venue
	CandidateNames []string
}

// Select picks one venue from filtered at random, avoiding exclude unless
// every filtered venue carries that name. A nil intn uses math/rand/v2.
func Select(filtered []models.Venue, exclude string, intn IntN) SelectionResult {
	if len(filtered) == 0 {
		return SelectionResult{CandidateNames: []string{}}
	}
	if intn == nil {
		intn = rand.IntN
	}

	names := make([]string, 0, len(filtered))
	candidates := make([]models.Venue, 0, len(filtered))
	for _, v := range filtered {
		names = append(names, v.Name)
		if v.Name != exclude {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		candidates = filtered
	}

	pick := candidates[intn(len(candidates))]
	return SelectionResult{Pick: &pick, CandidateNames: names}
}
