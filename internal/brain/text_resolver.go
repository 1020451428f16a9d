package brain

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/pran-droid/brain/internal/reaction"
	"github.com/pran-droid/brain/internal/stimulus"
)

// RandSource is injected so alternative selection is deterministic under
// test, and kept separate from PickAlternative's pure comparison logic.
type RandSource interface {
	// Float32 returns a value in [0, 1).
	Float32() float32
}

type mathRandSource struct{}

// Float32 implements RandSource using the package-level math/rand source.
func (mathRandSource) Float32() float32 { return rand.Float32() }

// DefaultRandSource is the RandSource used outside of tests.
var DefaultRandSource RandSource = mathRandSource{}

// PickAlternative is the pure core of alternative selection: given
// alternatives in declared order and a sample in [0, 100), it walks the
// alternatives subtracting each one's effective probability from the sample
// until an alternative's probability strictly exceeds what's left of the
// sample. A sample landing exactly on a boundary falls through to the next
// alternative.
func PickAlternative(alternatives []reaction.ResolvedAlternative, sample float32) reaction.ResolvedAlternative {
	remaining := sample
	for _, alt := range alternatives {
		if alt.Probability > remaining {
			return alt
		}
		remaining -= alt.Probability
	}
	// Invariant guarantees resolved probabilities sum to 100.0 and sample <
	// 100.0, so the loop above always returns. Fall back to the last
	// alternative defensively rather than panicking on floating point drift.
	return alternatives[len(alternatives)-1]
}

// SelectAlternative draws a sample from rng and picks among alternatives.
func SelectAlternative(alternatives []reaction.ResolvedAlternative, rng RandSource) reaction.ResolvedAlternative {
	sample := rng.Float32() * 100.0
	return PickAlternative(alternatives, sample)
}

// Interpolate performs template interpolation. It scans text split on '$';
// for each chunk after the first it tries the recognized
// placeholders in order and substitutes at most once, re-emitting a literal
// leading '$' for any chunk that matches none. ${target} with no second chat
// token is left literal; ${touser} falls back to the user name in that case.
func Interpolate(text string, ctx reaction.Context) string {
	chunks := strings.Split(text, "$")
	if len(chunks) == 0 {
		return text
	}

	var out strings.Builder
	out.WriteString(chunks[0])

	for _, chunk := range chunks[1:] {
		if substituted, ok := substitutePlaceholder(chunk, ctx); ok {
			out.WriteString(substituted)
			continue
		}
		out.WriteByte('$')
		out.WriteString(chunk)
	}

	return out.String()
}

func substitutePlaceholder(chunk string, ctx reaction.Context) (string, bool) {
	switch {
	case strings.HasPrefix(chunk, "{user}"):
		return ctx.Stimulus.SourceName() + strings.TrimPrefix(chunk, "{user}"), true
	case strings.HasPrefix(chunk, "{count}"):
		return strconv.FormatUint(uint64(ctx.Count), 10) + strings.TrimPrefix(chunk, "{count}"), true
	case strings.HasPrefix(chunk, "{touser}"):
		rest := strings.TrimPrefix(chunk, "{touser}")
		if chatMessage, ok := ctx.Stimulus.(stimulus.ChatMessage); ok {
			if target, ok := chatMessage.Target(); ok {
				return target + rest, true
			}
		}
		return ctx.Stimulus.SourceName() + rest, true
	case strings.HasPrefix(chunk, "{target}"):
		rest := strings.TrimPrefix(chunk, "{target}")
		if chatMessage, ok := ctx.Stimulus.(stimulus.ChatMessage); ok {
			if target, ok := chatMessage.Target(); ok {
				return target + rest, true
			}
		}
		return "", false
	default:
		return "", false
	}
}
