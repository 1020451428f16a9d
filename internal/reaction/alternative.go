package reaction

import "fmt"

// Alternative is one candidate message for a Talking step, with an optional
// declared selection probability.
type Alternative struct {
	Message     MessageText
	Probability *float32
}

// ResolvedAlternative is an Alternative with its effective probability
// computed: the declared value if set, otherwise the equal share of the
// residual left by every other unset alternative.
type ResolvedAlternative struct {
	Message     MessageText
	Probability float32
}

// ValidateAndResolveAlternatives enforces the alternatives invariants and
// returns each alternative with its effective probability filled in:
//
//   - non-empty
//   - sum of declared (set) probabilities must not exceed 100.0
//   - if every alternative declares a probability, they must sum to exactly 100.0
//   - if at least one alternative leaves probability unset, the declared sum
//     must be strictly less than 100.0 so the residual split among the unset
//     entries is non-zero
func ValidateAndResolveAlternatives(alternatives []Alternative) ([]ResolvedAlternative, error) {
	if len(alternatives) == 0 {
		return nil, fmt.Errorf("alternatives must not be empty")
	}

	var sumSet float32
	unsetCount := 0
	for _, alt := range alternatives {
		if alt.Probability == nil {
			unsetCount++
			continue
		}
		sumSet += *alt.Probability
	}

	if sumSet > 100.0 {
		return nil, fmt.Errorf("alternatives probabilities sum to %.4f, which exceeds 100.0", sumSet)
	}
	if unsetCount == 0 && sumSet != 100.0 {
		return nil, fmt.Errorf("alternatives declare every probability but they sum to %.4f, not 100.0", sumSet)
	}
	if unsetCount > 0 && sumSet >= 100.0 {
		return nil, fmt.Errorf("alternatives leave %d probability unset but the declared ones already sum to %.4f, leaving no residual to share", unsetCount, sumSet)
	}

	residualShare := float32(0)
	if unsetCount > 0 {
		residualShare = (100.0 - sumSet) / float32(unsetCount)
	}

	resolved := make([]ResolvedAlternative, len(alternatives))
	for i, alt := range alternatives {
		probability := residualShare
		if alt.Probability != nil {
			probability = *alt.Probability
		}
		resolved[i] = ResolvedAlternative{Message: alt.Message, Probability: probability}
	}
	return resolved, nil
}
