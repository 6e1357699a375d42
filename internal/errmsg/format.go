// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"errors"
	"fmt"

	"github.com/llehouerou/carousel/internal/carousel"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Carousel operations
	OpCarouselReload  Op = "load carousel items"
	OpCarouselOptions Op = "apply carousel settings"

	// State operations
	OpStateOpen      Op = "open state database"
	OpStateLoad      Op = "restore carousel position"
	OpSelectionSave  Op = "record selection"
	OpSelectionsLoad Op = "load selection history"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Failed to %s: %v", op, err)
	if hint := Hint(err); hint != "" {
		msg += " (" + hint + ")"
	}
	return msg
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Hint suggests a fix for carousel configuration errors, or returns "".
func Hint(err error) string {
	switch {
	case errors.Is(err, carousel.ErrTooFewItems):
		return "add items or lower carousel.items_per_page"
	case errors.Is(err, carousel.ErrInvalidPageSize):
		return "carousel.items_per_page must be at least 1"
	case errors.Is(err, carousel.ErrInvalidInterval):
		return "carousel.auto_scroll_interval must be positive"
	case errors.Is(err, carousel.ErrInvalidItemSize):
		return "check carousel.item_width, item_height and item_spacing"
	default:
		return ""
	}
}
