package brain

import "github.com/pran-droid/brain/internal/reaction"

// Notifier is the fire-and-forget external sink port. The core never awaits
// it: Stimulate dispatches it on its own goroutine, and the sink
// implementation owns any retry policy (it has none by default).
type Notifier interface {
	NotifyCount(id reaction.DefinitionID, newCount uint32)
}

// NoopNotifier discards every notification. Useful for tests and for
// running the demo binary without a configured sink.
type NoopNotifier struct{}

// NotifyCount implements Notifier.
func (NoopNotifier) NotifyCount(reaction.DefinitionID, uint32) {}
