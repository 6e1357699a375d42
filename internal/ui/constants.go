// Package ui provides shared UI constants and utilities.
package ui

import "time"

// Layout constants shared by the demo screens.
const (
	// BorderWidth is the horizontal space consumed by a rounded border.
	BorderWidth = 2

	// BorderHeight is the vertical space consumed by a rounded border.
	BorderHeight = 2

	// HeaderHeight is the title line plus its separator.
	HeaderHeight = 2

	// StatusHeight is the single status line under the buttons.
	StatusHeight = 1

	// ButtonRowHeight is a bordered row of buttons.
	ButtonRowHeight = 3

	// PeekWidth is how much of the neighbouring pages stays visible on each
	// side of a centred page.
	PeekWidth = 6

	// MinItemWidth is the narrowest cell the demo lays out.
	MinItemWidth = 8
)

// FrameInterval is the delay between scroll animation frames.
const FrameInterval = 16 * time.Millisecond
