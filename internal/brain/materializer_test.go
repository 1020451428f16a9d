package brain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pran-droid/brain/internal/reaction"
	"github.com/pran-droid/brain/internal/stimulus"
)

type stubPhonemizer struct {
	phonemes []string
	err      error
}

func (p stubPhonemizer) Phonemise(context.Context, string) ([]string, error) {
	return p.phonemes, p.err
}

func TestMaterialize_MovingStepPassesThroughUnchanged(t *testing.T) {
	t.Parallel()
	def := reaction.Definition{
		ID: "dance",
		Steps: []reaction.StepDefinition{
			reaction.MovingStepDefinition{
				Animation: reaction.Animation{{FrameStart: 0, FrameEnd: 5, ImageID: "img"}},
				Skip:      reaction.AfterMillisecondsSkip{Milliseconds: 100},
			},
		},
	}
	rctx := reaction.Context{Stimulus: stimulus.ChatMessage{Source: stimulus.Source{UserName: "alice"}}}

	result, err := Materialize(context.Background(), def, rctx, stubRandSource{}, stubPhonemizer{})
	require.NoError(t, err)
	require.Len(t, result.Steps, 1)

	moving, ok := result.Steps[0].(reaction.MovingStep)
	require.True(t, ok)
	assert.Equal(t, def.Steps[0].(reaction.MovingStepDefinition).Animation, moving.Animation)
	assert.Equal(t, reaction.AfterMillisecondsSkip{Milliseconds: 100}, moving.Skip)
}

func TestMaterialize_TalkingStepInterpolatesAndPhonemizes(t *testing.T) {
	t.Parallel()
	def := reaction.Definition{
		ID: "greet",
		Steps: []reaction.StepDefinition{
			reaction.TalkingStepDefinition{
				EmotionID: "happy",
				Skip:      reaction.ImmediatelyAfterSkip{},
				Alternatives: []reaction.Alternative{
					{Message: reaction.NewInstantMessage("Hi ${user}")},
				},
			},
		},
	}
	rctx := reaction.Context{Stimulus: stimulus.ChatMessage{Source: stimulus.Source{UserName: "alice"}}}
	phonemizer := stubPhonemizer{phonemes: []string{"H", "i"}}

	result, err := Materialize(context.Background(), def, rctx, stubRandSource{}, phonemizer)
	require.NoError(t, err)
	require.Len(t, result.Steps, 1)

	talking, ok := result.Steps[0].(reaction.TalkingStep)
	require.True(t, ok)
	assert.Equal(t, "Hi alice", talking.Text.Text())
	assert.Equal(t, []string{"H", "i"}, talking.Phonemes)
	assert.Equal(t, "happy", talking.EmotionID)
}

func TestMaterialize_PhonemizerErrorDegradesToNoLipSync(t *testing.T) {
	t.Parallel()
	def := reaction.Definition{
		ID: "greet",
		Steps: []reaction.StepDefinition{
			reaction.TalkingStepDefinition{
				EmotionID: "happy",
				Skip:      reaction.ImmediatelyAfterSkip{},
				Alternatives: []reaction.Alternative{
					{Message: reaction.NewInstantMessage("Hi")},
				},
			},
		},
	}
	rctx := reaction.Context{Stimulus: stimulus.ChatMessage{Source: stimulus.Source{UserName: "alice"}}}
	phonemizer := stubPhonemizer{err: errors.New("engine unavailable")}

	result, err := Materialize(context.Background(), def, rctx, stubRandSource{}, phonemizer)
	require.NoError(t, err)

	talking, ok := result.Steps[0].(reaction.TalkingStep)
	require.True(t, ok)
	assert.Nil(t, talking.Phonemes)
}

func TestMaterialize_MalformedAlternativesFailTheWholeReaction(t *testing.T) {
	t.Parallel()
	probability := float32(40)
	def := reaction.Definition{
		ID: "broken",
		Steps: []reaction.StepDefinition{
			reaction.TalkingStepDefinition{
				EmotionID: "happy",
				Skip:      reaction.ImmediatelyAfterSkip{},
				Alternatives: []reaction.Alternative{
					{Message: reaction.NewInstantMessage("a"), Probability: &probability},
				},
			},
		},
	}
	rctx := reaction.Context{Stimulus: stimulus.ChatMessage{Source: stimulus.Source{UserName: "alice"}}}

	_, err := Materialize(context.Background(), def, rctx, stubRandSource{}, stubPhonemizer{})
	assert.Error(t, err)
}
