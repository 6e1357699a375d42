//go:build windows

package stderr

import (
	"os"

	"github.com/rs/zerolog"
)

// Capture is a no-op on Windows: fd 2 cannot be redirected with dup2.
type Capture struct {
	lines chan string
}

// Start returns a capture that never receives anything.
func Start(zerolog.Logger) (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines receives nothing and is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop closes Lines.
func (c *Capture) Stop() {
	close(c.lines)
}
