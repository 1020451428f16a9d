package notify

import (
	"log"

	"github.com/pran-droid/brain/internal/reaction"
)

// LoggingNotifier logs every count update instead of shipping it anywhere.
// Used by cmd/brain when no message broker is configured.
type LoggingNotifier struct{}

// NotifyCount implements brain.Notifier.
func (LoggingNotifier) NotifyCount(id reaction.DefinitionID, newCount uint32) {
	log.Printf("notify: reaction %q count now %d", id, newCount)
}
