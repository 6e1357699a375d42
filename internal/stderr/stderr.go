//go:build !windows

// Package stderr captures writes to file descriptor 2 while the TUI owns the
// terminal. Captured lines are logged and handed to the UI, so stray output
// from the runtime or a library cannot corrupt the screen.
package stderr

import (
	"os"
	"syscall"

	"github.com/rs/zerolog"
)

// Capture redirects fd 2 into a pipe until Stop is called.
type Capture struct {
	lines     chan string
	orig      int
	pipeRead  *os.File
	pipeWrite *os.File
	done      chan struct{}
}

// Start begins capturing stderr output. Call it before the program starts
// drawing. On error the program can continue without capture.
func Start(log zerolog.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	// Save original stderr file descriptor
	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines:     make(chan string, bufferSize),
		orig:      orig,
		pipeRead:  r,
		pipeWrite: w,
		done:      make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		forward(r, c.lines, log)
	}()
	return c, nil
}

// Lines receives captured lines. It is closed after Stop.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	if c.orig > 0 {
		_, _ = syscall.Write(c.orig, []byte(msg))
	}
}

// Stop restores the original stderr and waits for the reader to drain.
func (c *Capture) Stop() {
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	c.orig = 0

	c.pipeWrite.Close()
	<-c.done
	c.pipeRead.Close()
}
