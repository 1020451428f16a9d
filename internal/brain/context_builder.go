package brain

import (
	"github.com/pran-droid/brain/internal/reaction"
	"github.com/pran-droid/brain/internal/stimulus"
)

// BuildContext produces the context a stimulation carries through text
// resolution. Target extraction is left to the text resolver, which derives
// it from the stimulus lazily.
func BuildContext(stim stimulus.Stimulus, postIncrementCount uint32) reaction.Context {
	return reaction.Context{Stimulus: stim, Count: postIncrementCount}
}
