// Package catalog loads reaction definitions from persistent storage into
// the in-memory shapes internal/reaction and internal/brain operate on.
package catalog

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/pran-droid/brain/internal/reaction"
)

// definitionRow is the GORM model a reaction definition is stored as:
// triggers and steps are authored as JSON documents rather than normalized
// tables, since their shape is a closed union that changes by catalog
// authoring, not by query.
type definitionRow struct {
	ID         string         `gorm:"column:id;primarykey"`
	Triggers   datatypes.JSON `gorm:"column:triggers"`
	Steps      datatypes.JSON `gorm:"column:steps"`
	IsDisabled bool           `gorm:"column:is_disabled"`
	Count      uint32         `gorm:"column:count"`
}

// TableName implements gorm's Tabler.
func (definitionRow) TableName() string { return "reaction_definitions" }

// triggerDoc and stepDoc are the wire shapes of the two JSON columns: tagged
// unions with a "kind" discriminant, decoded into the closed interface
// types by decodeTriggers/decodeSteps.
type triggerDoc struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type triggerDocList []triggerDoc

type alternativeDoc struct {
	Text           string   `json:"text"`
	LetterByLetter bool     `json:"letterByLetter"`
	Probability    *float32 `json:"probability,omitempty"`
}

type skipDoc struct {
	Kind              string `json:"kind"`
	Milliseconds      uint16 `json:"milliseconds,omitempty"`
	ExtraMilliseconds uint16 `json:"extraMilliseconds,omitempty"`
}

type frameDoc struct {
	FrameStart uint16 `json:"frameStart"`
	FrameEnd   uint16 `json:"frameEnd"`
	ImageID    string `json:"imageId"`
}

type stepDoc struct {
	Kind         string           `json:"kind"`
	Animation    []frameDoc       `json:"animation,omitempty"`
	Skip         skipDoc          `json:"skip"`
	EmotionID    string           `json:"emotionId,omitempty"`
	Alternatives []alternativeDoc `json:"alternatives,omitempty"`
}

type stepDocList []stepDoc

func decodeTriggers(raw datatypes.JSON) ([]reaction.Trigger, error) {
	var docs triggerDocList
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decoding triggers: %w", err)
	}

	triggers := make([]reaction.Trigger, 0, len(docs))
	for i, doc := range docs {
		switch doc.Kind {
		case "command":
			t, err := reaction.NewChatCommandTrigger(doc.Text)
			if err != nil {
				return nil, fmt.Errorf("trigger %d: %w", i, err)
			}
			triggers = append(triggers, t)
		case "keyword":
			t, err := reaction.NewChatKeywordTrigger(doc.Text)
			if err != nil {
				return nil, fmt.Errorf("trigger %d: %w", i, err)
			}
			triggers = append(triggers, t)
		default:
			return nil, fmt.Errorf("trigger %d: unknown kind %q", i, doc.Kind)
		}
	}
	return triggers, nil
}

func decodeSkip(doc skipDoc) (reaction.Skip, error) {
	switch doc.Kind {
	case "immediatelyAfter":
		return reaction.ImmediatelyAfterSkip{}, nil
	case "afterMilliseconds":
		return reaction.AfterMillisecondsSkip{Milliseconds: doc.Milliseconds}, nil
	case "afterStepWithExtraMilliseconds":
		return reaction.AfterStepWithExtraMillisecondsSkip{ExtraMilliseconds: doc.ExtraMilliseconds}, nil
	default:
		return nil, fmt.Errorf("unknown skip kind %q", doc.Kind)
	}
}

func decodeSteps(raw datatypes.JSON) ([]reaction.StepDefinition, error) {
	var docs stepDocList
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decoding steps: %w", err)
	}

	steps := make([]reaction.StepDefinition, 0, len(docs))
	for i, doc := range docs {
		skip, err := decodeSkip(doc.Skip)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		switch doc.Kind {
		case "moving":
			frames := make(reaction.Animation, len(doc.Animation))
			for j, f := range doc.Animation {
				frames[j] = reaction.Frame{FrameStart: f.FrameStart, FrameEnd: f.FrameEnd, ImageID: f.ImageID}
			}
			steps = append(steps, reaction.MovingStepDefinition{Animation: frames, Skip: skip})

		case "talking":
			alternatives := make([]reaction.Alternative, len(doc.Alternatives))
			for j, a := range doc.Alternatives {
				var text reaction.MessageText
				if a.LetterByLetter {
					text = reaction.NewLetterByLetterMessage(a.Text)
				} else {
					text = reaction.NewInstantMessage(a.Text)
				}
				alternatives[j] = reaction.Alternative{Message: text, Probability: a.Probability}
			}
			steps = append(steps, reaction.TalkingStepDefinition{EmotionID: doc.EmotionID, Skip: skip, Alternatives: alternatives})

		default:
			return nil, fmt.Errorf("step %d: unknown kind %q", i, doc.Kind)
		}
	}
	return steps, nil
}

// toDefinition decodes a row into a validated domain Definition. Validation
// failure here means the row is malformed and must be rejected rather than
// silently dropped or partially loaded.
func (row definitionRow) toDefinition() (reaction.Definition, error) {
	triggers, err := decodeTriggers(row.Triggers)
	if err != nil {
		return reaction.Definition{}, fmt.Errorf("reaction %q: %w", row.ID, err)
	}
	steps, err := decodeSteps(row.Steps)
	if err != nil {
		return reaction.Definition{}, fmt.Errorf("reaction %q: %w", row.ID, err)
	}

	def := reaction.Definition{
		ID:         reaction.DefinitionID(row.ID),
		Triggers:   triggers,
		Steps:      steps,
		IsDisabled: row.IsDisabled,
		Count:      row.Count,
	}
	if err := def.Validate(); err != nil {
		return reaction.Definition{}, err
	}
	return def, nil
}
