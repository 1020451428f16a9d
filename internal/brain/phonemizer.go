package brain

import "context"

// Phonemizer is the external capability port: a mapping from text to an
// ordered sequence of phoneme tokens. Implementations may block; the core
// never holds a lock across a call.
type Phonemizer interface {
	Phonemise(ctx context.Context, text string) ([]string, error)
}
