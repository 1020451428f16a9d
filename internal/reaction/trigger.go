package reaction

import (
	"fmt"
	"regexp"
	"strings"
)

// Trigger is the closed set of predicates that bind a chat message to a
// reaction definition.
type Trigger interface {
	isTrigger()
	// Key returns a value that uniquely identifies this trigger for
	// catalog-wide deduplication purposes.
	Key() string
	// Text returns the raw trigger text as authored.
	Text() string
}

// ChatCommandTrigger matches when the first whitespace-delimited token of the
// message equals Text exactly.
type ChatCommandTrigger struct {
	text string
}

// NewChatCommandTrigger validates and builds a ChatCommandTrigger.
func NewChatCommandTrigger(text string) (ChatCommandTrigger, error) {
	if text == "" {
		return ChatCommandTrigger{}, fmt.Errorf("chat command trigger text must not be empty")
	}
	return ChatCommandTrigger{text: text}, nil
}

func (ChatCommandTrigger) isTrigger() {}

// Text implements Trigger.
func (t ChatCommandTrigger) Text() string { return t.text }

// Key implements Trigger.
func (t ChatCommandTrigger) Key() string { return "cmd:" + t.text }

// Matches reports whether messageText's first token equals this command.
func (t ChatCommandTrigger) Matches(messageText string) bool {
	fields := strings.Fields(messageText)
	if len(fields) == 0 {
		return false
	}
	return fields[0] == t.text
}

// ChatKeywordTrigger matches when the whole word appears anywhere in the
// message, case-sensitive.
type ChatKeywordTrigger struct {
	text  string
	match *regexp.Regexp
}

// NewChatKeywordTrigger validates and builds a ChatKeywordTrigger, compiling
// its whole-word regex once.
func NewChatKeywordTrigger(text string) (ChatKeywordTrigger, error) {
	if text == "" {
		return ChatKeywordTrigger{}, fmt.Errorf("chat keyword trigger text must not be empty")
	}
	pattern := "(^| )" + regexp.QuoteMeta(text) + "($| )"
	return ChatKeywordTrigger{text: text, match: regexp.MustCompile(pattern)}, nil
}

func (ChatKeywordTrigger) isTrigger() {}

// Text implements Trigger.
func (t ChatKeywordTrigger) Text() string { return t.text }

// Key implements Trigger.
func (t ChatKeywordTrigger) Key() string { return "kw:" + t.text }

// Matches reports whether messageText contains this keyword as a whole word.
func (t ChatKeywordTrigger) Matches(messageText string) bool {
	return t.match.MatchString(messageText)
}
