package catalog

import (
	"context"

	"github.com/pran-droid/brain/internal/reaction"
)

// StaticDefinitionRepository serves a fixed, in-process catalog. Used by the
// demo binary and by tests that don't need a database.
type StaticDefinitionRepository struct {
	definitions []reaction.Definition
}

// NewStaticDefinitionRepository wraps a pre-validated catalog slice.
func NewStaticDefinitionRepository(definitions []reaction.Definition) *StaticDefinitionRepository {
	return &StaticDefinitionRepository{definitions: definitions}
}

// LoadCatalog implements DefinitionRepository.
func (r *StaticDefinitionRepository) LoadCatalog(context.Context) ([]reaction.Definition, error) {
	out := make([]reaction.Definition, len(r.definitions))
	copy(out, r.definitions)
	return out, nil
}

// DemoCatalog returns a small, hand-authored catalog exercising every
// trigger kind, step kind, and skip kind, for running the binary without a
// database.
func DemoCatalog() ([]reaction.Definition, error) {
	helloCommand, err := reaction.NewChatCommandTrigger("!hello")
	if err != nil {
		return nil, err
	}
	danceKeyword, err := reaction.NewChatKeywordTrigger("dance")
	if err != nil {
		return nil, err
	}
	thankCommand, err := reaction.NewChatCommandTrigger("!thanks")
	if err != nil {
		return nil, err
	}

	greeting := float32(60)
	definitions := []reaction.Definition{
		{
			ID:       "greeting",
			Triggers: []reaction.Trigger{helloCommand},
			Steps: []reaction.StepDefinition{
				reaction.TalkingStepDefinition{
					EmotionID: "happy",
					Skip:      reaction.ImmediatelyAfterSkip{},
					Alternatives: []reaction.Alternative{
						{Message: reaction.NewInstantMessage("Hello ${user}, welcome!"), Probability: &greeting},
						{Message: reaction.NewLetterByLetterMessage("Oh hi ${user}! I've been waiting for you.")},
					},
				},
			},
		},
		{
			ID:       "dance-party",
			Triggers: []reaction.Trigger{danceKeyword},
			Steps: []reaction.StepDefinition{
				reaction.MovingStepDefinition{
					Animation: reaction.Animation{
						{FrameStart: 0, FrameEnd: 10, ImageID: "dance-1"},
						{FrameStart: 10, FrameEnd: 20, ImageID: "dance-2"},
					},
					Skip: reaction.AfterMillisecondsSkip{Milliseconds: 800},
				},
				reaction.TalkingStepDefinition{
					EmotionID: "excited",
					Skip:      reaction.AfterStepWithExtraMillisecondsSkip{ExtraMilliseconds: 200},
					Alternatives: []reaction.Alternative{
						{Message: reaction.NewInstantMessage("Let's dance, ${user}!")},
					},
				},
			},
		},
		{
			ID:       "gratitude",
			Triggers: []reaction.Trigger{thankCommand},
			Steps: []reaction.StepDefinition{
				reaction.TalkingStepDefinition{
					EmotionID: "neutral",
					Skip:      reaction.ImmediatelyAfterSkip{},
					Alternatives: []reaction.Alternative{
						{Message: reaction.NewInstantMessage("Thanks for being here ${count} times, ${touser}!")},
					},
				},
			},
		},
	}

	for _, def := range definitions {
		if err := def.Validate(); err != nil {
			return nil, err
		}
	}
	return definitions, nil
}
