package brain

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pran-droid/brain/internal/phonemiser"
	"github.com/pran-droid/brain/internal/reaction"
	"github.com/pran-droid/brain/internal/stimulus"
)

type recordingNotifier struct {
	mu      sync.Mutex
	counts  []uint32
	waiting chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{waiting: make(chan struct{}, 16)}
}

func (n *recordingNotifier) NotifyCount(_ reaction.DefinitionID, newCount uint32) {
	n.mu.Lock()
	n.counts = append(n.counts, newCount)
	n.mu.Unlock()
	n.waiting <- struct{}{}
}

func (n *recordingNotifier) wait(t *testing.T, times int) {
	t.Helper()
	for i := 0; i < times; i++ {
		<-n.waiting
	}
}

func greetingDefinition(t *testing.T) reaction.Definition {
	t.Helper()
	trigger, err := reaction.NewChatCommandTrigger("!hello")
	require.NoError(t, err)
	return reaction.Definition{
		ID:       "greeting",
		Triggers: []reaction.Trigger{trigger},
		Steps: []reaction.StepDefinition{
			reaction.TalkingStepDefinition{
				EmotionID: "happy",
				Skip:      reaction.ImmediatelyAfterSkip{},
				Alternatives: []reaction.Alternative{
					{Message: reaction.NewLetterByLetterMessage("Hello ${user}, you've greeted me ${count} times")},
				},
			},
		},
	}
}

func TestStimulate_CommandMatchProducesInterpolatedLetterByLetterReaction(t *testing.T) {
	t.Parallel()
	notifier := newRecordingNotifier()
	b := New([]reaction.Definition{greetingDefinition(t)}, stubPhonemizer{phonemes: []string{"H"}}, notifier)

	stim := stimulus.ChatMessage{Source: stimulus.Source{UserName: "alice"}, Text: "!hello"}
	result, matched := b.Stimulate(context.Background(), stim)
	require.True(t, matched)
	require.Len(t, result.Steps, 1)

	talking := result.Steps[0].(reaction.TalkingStep)
	_, isLetterByLetter := talking.Text.(reaction.LetterByLetterMessage)
	assert.True(t, isLetterByLetter)
	assert.Equal(t, "Hello alice, you've greeted me 1 times", talking.Text.Text())

	notifier.wait(t, 1)
	assert.Equal(t, []uint32{1}, notifier.counts)
}

func TestStimulate_CountIncreasesAcrossRepeatedStimulations(t *testing.T) {
	t.Parallel()
	notifier := newRecordingNotifier()
	b := New([]reaction.Definition{greetingDefinition(t)}, stubPhonemizer{}, notifier)

	stim := stimulus.ChatMessage{Source: stimulus.Source{UserName: "alice"}, Text: "!hello"}

	first, matched := b.Stimulate(context.Background(), stim)
	require.True(t, matched)
	second, matched := b.Stimulate(context.Background(), stim)
	require.True(t, matched)

	assert.Contains(t, first.Steps[0].(reaction.TalkingStep).Text.Text(), "1 times")
	assert.Contains(t, second.Steps[0].(reaction.TalkingStep).Text.Text(), "2 times")

	notifier.wait(t, 2)
}

func TestStimulate_ActionStimulusNeverReacts(t *testing.T) {
	t.Parallel()
	notifier := newRecordingNotifier()
	b := New([]reaction.Definition{greetingDefinition(t)}, stubPhonemizer{}, notifier)

	action := stimulus.Action{Source: stimulus.Source{UserName: "alice"}, ActionID: "1", ActionName: "cheer"}
	result, matched := b.Stimulate(context.Background(), action)
	assert.False(t, matched)
	assert.Equal(t, reaction.Reaction{}, result)
}

func TestStimulate_UnmatchedChatMessageDoesNotReact(t *testing.T) {
	t.Parallel()
	notifier := newRecordingNotifier()
	b := New([]reaction.Definition{greetingDefinition(t)}, stubPhonemizer{}, notifier)

	stim := stimulus.ChatMessage{Source: stimulus.Source{UserName: "alice"}, Text: "nothing relevant"}
	_, matched := b.Stimulate(context.Background(), stim)
	assert.False(t, matched)
}

func TestStimulate_KeywordVsCommandDoNotCrossMatch(t *testing.T) {
	t.Parallel()
	keywordTrigger, err := reaction.NewChatKeywordTrigger("dance")
	require.NoError(t, err)
	def := reaction.Definition{
		ID:       "dance-reaction",
		Triggers: []reaction.Trigger{keywordTrigger},
		Steps: []reaction.StepDefinition{
			reaction.MovingStepDefinition{
				Animation: reaction.Animation{{FrameStart: 0, FrameEnd: 1, ImageID: "img"}},
				Skip:      reaction.ImmediatelyAfterSkip{},
			},
		},
	}
	notifier := newRecordingNotifier()
	b := New([]reaction.Definition{def}, stubPhonemizer{}, notifier)

	_, matched := b.Stimulate(context.Background(), stimulus.ChatMessage{Text: "!dance"})
	assert.False(t, matched)

	result, matched := b.Stimulate(context.Background(), stimulus.ChatMessage{Text: "time to dance"})
	require.True(t, matched)
	_, isMoving := result.Steps[0].(reaction.MovingStep)
	assert.True(t, isMoving)
	notifier.wait(t, 1)
}

func TestStimulate_LetterByLetterUserInterpolationWithCharacterPhonemes(t *testing.T) {
	t.Parallel()
	trigger, err := reaction.NewChatCommandTrigger("!hello")
	require.NoError(t, err)
	def := reaction.Definition{
		ID:       "e1-greeting",
		Triggers: []reaction.Trigger{trigger},
		Steps: []reaction.StepDefinition{
			reaction.TalkingStepDefinition{
				EmotionID: "e1",
				Skip:      reaction.ImmediatelyAfterSkip{},
				Alternatives: []reaction.Alternative{
					{Message: reaction.NewLetterByLetterMessage("Hello I am ${user}")},
				},
			},
		},
	}
	notifier := newRecordingNotifier()
	b := New([]reaction.Definition{def}, phonemiser.ByCharacter{}, notifier)

	stim := stimulus.ChatMessage{Source: stimulus.Source{UserName: "Pmyl"}, Text: "!hello"}
	result, matched := b.Stimulate(context.Background(), stim)
	require.True(t, matched)
	require.Len(t, result.Steps, 1)

	talking := result.Steps[0].(reaction.TalkingStep)
	assert.Equal(t, "Hello I am Pmyl", talking.Text.Text())
	assert.Equal(t, "e1", talking.EmotionID)
	require.Len(t, talking.Phonemes, 15)
	assert.Equal(t, []string{"H", "e", "l", "l", "o", " ", "I", " ", "a", "m", " ", "P", "m", "y", "l"}, talking.Phonemes)
	notifier.wait(t, 1)
}

func TestStimulate_MultipleMovingStepsPassThroughIdentically(t *testing.T) {
	t.Parallel()
	trigger, err := reaction.NewChatCommandTrigger("!move")
	require.NoError(t, err)
	def := reaction.Definition{
		ID:       "two-moves",
		Triggers: []reaction.Trigger{trigger},
		Steps: []reaction.StepDefinition{
			reaction.MovingStepDefinition{
				Animation: reaction.Animation{{FrameStart: 0, FrameEnd: 11, ImageID: "img1"}},
				Skip:      reaction.AfterMillisecondsSkip{Milliseconds: 15},
			},
			reaction.MovingStepDefinition{
				Animation: reaction.Animation{{FrameStart: 12, FrameEnd: 22, ImageID: "img2"}},
				Skip:      reaction.ImmediatelyAfterSkip{},
			},
		},
	}
	notifier := newRecordingNotifier()
	b := New([]reaction.Definition{def}, stubPhonemizer{}, notifier)

	result, matched := b.Stimulate(context.Background(), stimulus.ChatMessage{Text: "!move"})
	require.True(t, matched)
	require.Len(t, result.Steps, 2)

	first := result.Steps[0].(reaction.MovingStep)
	second := result.Steps[1].(reaction.MovingStep)
	assert.Equal(t, def.Steps[0].(reaction.MovingStepDefinition).Animation, first.Animation)
	assert.Equal(t, reaction.AfterMillisecondsSkip{Milliseconds: 15}, first.Skip)
	assert.Equal(t, def.Steps[1].(reaction.MovingStepDefinition).Animation, second.Animation)
	assert.Equal(t, reaction.ImmediatelyAfterSkip{}, second.Skip)
	notifier.wait(t, 1)
}

func TestStimulate_DisabledDefinitionExcludedFromDispatch(t *testing.T) {
	t.Parallel()
	def := greetingDefinition(t)
	def.IsDisabled = true
	notifier := newRecordingNotifier()
	b := New([]reaction.Definition{def}, stubPhonemizer{}, notifier)

	_, matched := b.Stimulate(context.Background(), stimulus.ChatMessage{Text: "!hello"})
	assert.False(t, matched)
}
