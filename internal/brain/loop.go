package brain

import (
	"context"

	"github.com/pran-droid/brain/internal/reaction"
	"github.com/pran-droid/brain/internal/stimulus"
)

// Publisher is what RunLoop hands a materialized Reaction to. The fan-out
// hub implements this.
type Publisher interface {
	Publish(r reaction.Reaction)
}

// RunLoop drains stimuli to exhaustion, sequentially: each stimulus is fully
// stimulated and its Reaction (if any) published before the next stimulus is
// read, so subscribers observe reactions in stimulus order. The loop returns
// when stimuli closes or ctx is cancelled.
func RunLoop(ctx context.Context, b *Brain, stimuli <-chan stimulus.Stimulus, publisher Publisher) {
	for {
		select {
		case <-ctx.Done():
			return
		case stim, ok := <-stimuli:
			if !ok {
				return
			}
			if result, matched := b.Stimulate(ctx, stim); matched {
				publisher.Publish(result)
			}
		}
	}
}
