package transport

import (
	"encoding/json"
	"fmt"

	"github.com/pran-droid/brain/internal/reaction"
)

// envelope is the canonical outbound shape a Reaction is serialized to,
// exactly once per publish, before being fanned out unchanged to every
// subscriber.
type envelope struct {
	Steps []stepEnvelope `json:"steps"`
}

type stepEnvelope struct {
	Type      string          `json:"type"`
	Animation []frameEnvelope `json:"animation,omitempty"`
	EmotionID string          `json:"emotionId,omitempty"`
	Text      *textEnvelope   `json:"text,omitempty"`
	Phonemes  []string        `json:"phonemes,omitempty"`
	Skip      *skipEnvelope   `json:"skip"`
}

type frameEnvelope struct {
	FrameStart uint16 `json:"frameStart"`
	FrameEnd   uint16 `json:"frameEnd"`
	ImageID    string `json:"imageId"`
}

// textEnvelope externally tags an InstantMessage/LetterByLetterMessage as
// {"Instant": "..."} or {"LetterByLetter": "..."}.
type textEnvelope struct {
	Instant        *string `json:"Instant,omitempty"`
	LetterByLetter *string `json:"LetterByLetter,omitempty"`
}

// skipEnvelope externally tags a Skip variant. ImmediatelyAfter serializes
// as a null skip (there's nothing to wait for beyond the step itself).
type skipEnvelope struct {
	AfterMilliseconds              *uint16 `json:"AfterMilliseconds,omitempty"`
	AfterStepWithExtraMilliseconds *uint16 `json:"AfterStepWithExtraMilliseconds,omitempty"`
}

// EncodeReaction serializes r into the canonical envelope bytes, once, ready
// to be fanned out unchanged to every subscriber.
func EncodeReaction(r reaction.Reaction) ([]byte, error) {
	env, err := toEnvelope(r)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func toEnvelope(r reaction.Reaction) (envelope, error) {
	steps := make([]stepEnvelope, 0, len(r.Steps))
	for i, step := range r.Steps {
		stepEnv, err := toStepEnvelope(step)
		if err != nil {
			return envelope{}, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, stepEnv)
	}
	return envelope{Steps: steps}, nil
}

func toStepEnvelope(step reaction.Step) (stepEnvelope, error) {
	switch s := step.(type) {
	case reaction.MovingStep:
		frames := make([]frameEnvelope, len(s.Animation))
		for i, frame := range s.Animation {
			frames[i] = frameEnvelope{FrameStart: frame.FrameStart, FrameEnd: frame.FrameEnd, ImageID: frame.ImageID}
		}
		return stepEnvelope{
			Type:      "Moving",
			Animation: frames,
			Skip:      toSkipEnvelope(s.Skip),
		}, nil

	case reaction.TalkingStep:
		text, err := toTextEnvelope(s.Text)
		if err != nil {
			return stepEnvelope{}, err
		}
		return stepEnvelope{
			Type:      "Talking",
			EmotionID: s.EmotionID,
			Text:      &text,
			Phonemes:  s.Phonemes,
			Skip:      toSkipEnvelope(s.Skip),
		}, nil

	default:
		return stepEnvelope{}, fmt.Errorf("unknown reaction step type %T", step)
	}
}

func toTextEnvelope(text reaction.MessageText) (textEnvelope, error) {
	switch t := text.(type) {
	case reaction.InstantMessage:
		v := t.Text()
		return textEnvelope{Instant: &v}, nil
	case reaction.LetterByLetterMessage:
		v := t.Text()
		return textEnvelope{LetterByLetter: &v}, nil
	default:
		return textEnvelope{}, fmt.Errorf("unknown message text type %T", text)
	}
}

func toSkipEnvelope(skip reaction.Skip) *skipEnvelope {
	switch s := skip.(type) {
	case reaction.ImmediatelyAfterSkip:
		return nil
	case reaction.AfterMillisecondsSkip:
		ms := s.Milliseconds
		return &skipEnvelope{AfterMilliseconds: &ms}
	case reaction.AfterStepWithExtraMillisecondsSkip:
		ms := s.ExtraMilliseconds
		return &skipEnvelope{AfterStepWithExtraMilliseconds: &ms}
	default:
		return nil
	}
}
