package reaction

// MessageText is the closed set of ways a Talking step's text can be
// rendered downstream.
type MessageText interface {
	isMessageText()
	// Text returns the message's text as stored: the authored template in a
	// definition, the interpolated text in a materialized step.
	Text() string
	// WithText returns a copy of this message with its text replaced,
	// preserving the variant.
	WithText(text string) MessageText
}

// InstantMessage is shown all at once.
type InstantMessage struct {
	text string
}

// NewInstantMessage builds an InstantMessage.
func NewInstantMessage(text string) InstantMessage { return InstantMessage{text: text} }

func (InstantMessage) isMessageText() {}

// Text implements MessageText.
func (m InstantMessage) Text() string { return m.text }

// WithText implements MessageText.
func (m InstantMessage) WithText(text string) MessageText { return InstantMessage{text: text} }

// LetterByLetterMessage is shown one letter at a time.
type LetterByLetterMessage struct {
	text string
}

// NewLetterByLetterMessage builds a LetterByLetterMessage.
func NewLetterByLetterMessage(text string) LetterByLetterMessage {
	return LetterByLetterMessage{text: text}
}

func (LetterByLetterMessage) isMessageText() {}

// Text implements MessageText.
func (m LetterByLetterMessage) Text() string { return m.text }

// WithText implements MessageText.
func (m LetterByLetterMessage) WithText(text string) MessageText {
	return LetterByLetterMessage{text: text}
}
