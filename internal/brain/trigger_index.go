// Package brain implements the stream-reaction engine: trigger matching,
// text resolution, reaction materialization, usage counting and the
// stimulus dispatch loop built on top of them.
package brain

import (
	"github.com/pran-droid/brain/internal/reaction"
)

type indexEntry struct {
	trigger reaction.Trigger
	id      reaction.DefinitionID
}

// TriggerIndex is the static, build-once mapping from chat commands and
// keywords to reaction definition ids.
type TriggerIndex struct {
	commands []indexEntry
	keywords []indexEntry
}

// BuildTriggerIndex indexes every trigger of every enabled definition, in
// catalog-load order. Disabled definitions are excluded entirely. A trigger
// value already seen (by exact text+kind) is skipped — the first indexed
// definition wins.
func BuildTriggerIndex(definitions []reaction.Definition) *TriggerIndex {
	idx := &TriggerIndex{}
	seen := make(map[string]struct{})

	for _, def := range definitions {
		if def.IsDisabled {
			continue
		}
		for _, trigger := range def.Triggers {
			if _, ok := seen[trigger.Key()]; ok {
				continue
			}
			seen[trigger.Key()] = struct{}{}

			entry := indexEntry{trigger: trigger, id: def.ID}
			switch trigger.(type) {
			case reaction.ChatCommandTrigger:
				idx.commands = append(idx.commands, entry)
			case reaction.ChatKeywordTrigger:
				idx.keywords = append(idx.keywords, entry)
			}
		}
	}

	return idx
}

// Match returns the id of the first definition whose trigger matches
// messageText: commands are tried first in catalog-load order, then
// keywords, also in catalog-load order.
func (idx *TriggerIndex) Match(messageText string) (reaction.DefinitionID, bool) {
	for _, entry := range idx.commands {
		if entry.trigger.(reaction.ChatCommandTrigger).Matches(messageText) {
			return entry.id, true
		}
	}
	for _, entry := range idx.keywords {
		if entry.trigger.(reaction.ChatKeywordTrigger).Matches(messageText) {
			return entry.id, true
		}
	}
	return "", false
}
