// Package phonemiser provides a concrete brain.Phonemizer adapter. There's
// no native phoneme engine wired in here, so this is a deterministic,
// rule-based stand-in: it splits text into one phoneme token per rune,
// preserving case and whitespace tokens exactly as authored.
package phonemiser

import "context"

// ByCharacter phonemizes text by emitting one token per rune.
type ByCharacter struct{}

// Phonemise implements brain.Phonemizer.
func (ByCharacter) Phonemise(_ context.Context, text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	runes := []rune(text)
	phonemes := make([]string, len(runes))
	for i, r := range runes {
		phonemes[i] = string(r)
	}
	return phonemes, nil
}
