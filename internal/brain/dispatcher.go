package brain

import (
	"context"
	"log"

	"github.com/pran-droid/brain/internal/reaction"
	"github.com/pran-droid/brain/internal/stimulus"
)

// Brain is the entry point of the engine: it wires the trigger index,
// definition store, text resolver, phonemizer and notifier together behind
// a single Stimulate call.
type Brain struct {
	index      *TriggerIndex
	store      *DefinitionStore
	phonemizer Phonemizer
	notifier   Notifier
	rng        RandSource
}

// New builds a Brain from a loaded catalog snapshot and its external
// capability ports. The trigger index and definition store are both built
// once, here, from the same catalog slice.
func New(definitions []reaction.Definition, phonemizer Phonemizer, notifier Notifier) *Brain {
	return &Brain{
		index:      BuildTriggerIndex(definitions),
		store:      NewDefinitionStore(definitions),
		phonemizer: phonemizer,
		notifier:   notifier,
		rng:        DefaultRandSource,
	}
}

// WithRandSource overrides the random source used for alternative selection,
// for deterministic tests.
func (b *Brain) WithRandSource(rng RandSource) *Brain {
	b.rng = rng
	return b
}

// Stimulate runs one full dispatch: trigger match, counter increment,
// context build, materialize, fire-and-forget notification. Non-chat
// stimuli and unmatched chat messages both return (Reaction{}, false); the
// two are indistinguishable to the caller by design. Actions carry no text
// to match against and never produce a reaction.
func (b *Brain) Stimulate(ctx context.Context, stim stimulus.Stimulus) (reaction.Reaction, bool) {
	chatMessage, ok := stim.(stimulus.ChatMessage)
	if !ok {
		return reaction.Reaction{}, false
	}

	id, matched := b.index.Match(chatMessage.Text)
	if !matched {
		return reaction.Reaction{}, false
	}

	newCount, ok := b.store.IncrementCount(id)
	if !ok {
		// The index and store are built from the same catalog snapshot;
		// this can only happen if that invariant is ever broken.
		log.Printf("brain: matched trigger for unknown definition %q", id)
		return reaction.Reaction{}, false
	}

	rctx := BuildContext(stim, newCount)

	def, ok := b.store.Get(id)
	if !ok {
		log.Printf("brain: definition %q vanished after increment", id)
		return reaction.Reaction{}, false
	}

	result, err := Materialize(ctx, def, rctx, b.rng, b.phonemizer)
	if err != nil {
		log.Printf("brain: materializing reaction %q: %v", id, err)
		return reaction.Reaction{}, false
	}

	go b.notifier.NotifyCount(id, newCount)

	return result, true
}
