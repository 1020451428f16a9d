package chatfeed

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/pran-droid/brain/internal/stimulus"
)

// DemoSource reads "username: message text" lines from r and emits a
// ChatMessage stimulus per line, for exercising the engine without a real
// chat platform integration wired up. Lines with no colon are skipped.
type DemoSource struct {
	scanner *bufio.Scanner
}

// NewDemoSource wraps an input reader (typically os.Stdin).
func NewDemoSource(r io.Reader) *DemoSource {
	return &DemoSource{scanner: bufio.NewScanner(r)}
}

// Run feeds parsed stimuli into out until the reader is exhausted, then
// closes out.
func (s *DemoSource) Run(out chan<- stimulus.Stimulus) {
	defer close(out)
	for s.scanner.Scan() {
		line := s.scanner.Text()
		userName, text, ok := strings.Cut(line, ":")
		if !ok {
			log.Printf("chatfeed: skipping malformed demo line %q", line)
			continue
		}
		out <- NormalizeChatMessage(strings.TrimSpace(userName), false, text)
	}
	if err := s.scanner.Err(); err != nil {
		log.Printf("chatfeed: demo source read error: %v", err)
	}
}
