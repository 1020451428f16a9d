package reaction

import "github.com/pran-droid/brain/internal/stimulus"

// Context is everything the Text Resolver needs to interpolate a template:
// the stimulus that triggered this firing, and the definition's post
// increment usage count.
type Context struct {
	Stimulus stimulus.Stimulus
	Count    uint32
}
