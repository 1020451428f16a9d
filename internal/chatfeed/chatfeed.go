// Package chatfeed turns raw chat-platform events into brain stimuli.
package chatfeed

import (
	"slices"
	"strings"

	"github.com/pran-droid/brain/internal/stimulus"
)

// IsMod reports whether the sender is a moderator: either the platform's mod
// tag is set, or the broadcaster badge is present.
func IsMod(modTag string, badges []string) bool {
	return modTag == "1" || slices.Contains(badges, "broadcaster")
}

// NormalizeChatMessage builds a ChatMessage stimulus from a raw chat line,
// trimming the platform-specific whitespace/control characters a feed
// integration may have left around the text.
func NormalizeChatMessage(userName string, isMod bool, text string) stimulus.ChatMessage {
	return stimulus.ChatMessage{
		Source: stimulus.Source{UserName: userName, IsMod: isMod},
		Text:   strings.TrimSpace(text),
	}
}

// NormalizeAction builds an Action stimulus from a raw channel action event.
func NormalizeAction(userName string, isMod bool, actionID, actionName string) stimulus.Action {
	return stimulus.Action{
		Source:     stimulus.Source{UserName: userName, IsMod: isMod},
		ActionID:   actionID,
		ActionName: actionName,
	}
}
