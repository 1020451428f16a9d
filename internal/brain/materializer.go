package brain

import (
	"context"
	"fmt"

	"github.com/pran-droid/brain/internal/reaction"
)

// Materialize walks a definition's steps and produces a Reaction. Moving
// steps pass their animation and skip through unchanged; Talking steps pick
// an alternative, interpolate its text, and phonemize the result. A
// phonemizer error degrades to an empty phoneme slice — no lip-sync, not a
// failed reaction.
func Materialize(ctx context.Context, def reaction.Definition, rctx reaction.Context, rng RandSource, phonemizer Phonemizer) (reaction.Reaction, error) {
	steps := make([]reaction.Step, 0, len(def.Steps))

	for i, stepDef := range def.Steps {
		switch step := stepDef.(type) {
		case reaction.MovingStepDefinition:
			steps = append(steps, reaction.MovingStep{Animation: step.Animation, Skip: step.Skip})

		case reaction.TalkingStepDefinition:
			talkingStep, err := materializeTalkingStep(ctx, step, rctx, rng, phonemizer)
			if err != nil {
				return reaction.Reaction{}, fmt.Errorf("reaction %q: step %d: %w", def.ID, i, err)
			}
			steps = append(steps, talkingStep)

		default:
			return reaction.Reaction{}, fmt.Errorf("reaction %q: step %d: unknown step definition type %T", def.ID, i, stepDef)
		}
	}

	return reaction.Reaction{Steps: steps}, nil
}

func materializeTalkingStep(ctx context.Context, step reaction.TalkingStepDefinition, rctx reaction.Context, rng RandSource, phonemizer Phonemizer) (reaction.TalkingStep, error) {
	resolved, err := reaction.ValidateAndResolveAlternatives(step.Alternatives)
	if err != nil {
		return reaction.TalkingStep{}, fmt.Errorf("resolving alternatives: %w", err)
	}

	chosen := SelectAlternative(resolved, rng)
	interpolatedText := Interpolate(chosen.Message.Text(), rctx)
	resolvedMessage := chosen.Message.WithText(interpolatedText)

	phonemes, err := phonemizer.Phonemise(ctx, interpolatedText)
	if err != nil {
		// Degraded output: the renderer treats an empty phoneme list as
		// "no lip-sync", never as an error surfaced to subscribers.
		phonemes = nil
	}

	return reaction.TalkingStep{
		EmotionID: step.EmotionID,
		Skip:      step.Skip,
		Text:      resolvedMessage,
		Phonemes:  phonemes,
	}, nil
}
