package reaction

// Step is the closed set of materialized, ready-to-render step shapes.
type Step interface {
	isReactionStep()
}

// MovingStep carries its animation and skip verbatim from the definition.
type MovingStep struct {
	Animation Animation
	Skip      Skip
}

func (MovingStep) isReactionStep() {}

// TalkingStep carries the resolved text (alternative picked, template
// interpolated) and its phonemized form.
type TalkingStep struct {
	EmotionID string
	Skip      Skip
	Text      MessageText
	Phonemes  []string
}

func (TalkingStep) isReactionStep() {}

// Reaction is the fully resolved, short-lived output of a single
// stimulation: an ordered sequence of steps ready for the fan-out hub.
type Reaction struct {
	Steps []Step
}
