package app

import "time"

// StatusTickMsg refreshes the relative times shown in the status line.
type StatusTickMsg time.Time

// StderrMsg is sent when a line is captured from stderr.
type StderrMsg struct {
	Line string
}

// NotifiedMsg reports the outcome of a desktop notification.
type NotifiedMsg struct {
	ID  uint32
	Err error
}
