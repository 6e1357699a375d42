//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/llehouerou/carousel/internal/carousel"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCarouselReload,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpStateOpen,
			err:      errors.New("permission denied"),
			expected: "Failed to open state database: permission denied",
		},
		{
			name:     "selection save",
			op:       OpSelectionSave,
			err:      errors.New("database is locked"),
			expected: "Failed to record selection: database is locked",
		},
		{
			name:     "carousel error gets a hint",
			op:       OpCarouselReload,
			err:      fmt.Errorf("%w: have 3, need at least 4 for 2 per page", carousel.ErrTooFewItems),
			expected: "Failed to load carousel items: carousel: too few items for the page size: have 3, need at least 4 for 2 per page" +
				" (add items or lower carousel.items_per_page)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			context:  "config.toml",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpConfigLoad,
			context:  "config.toml",
			err:      errors.New("invalid color"),
			expected: "Failed to load configuration 'config.toml': invalid color",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpLogOpen,
			context:  "",
			err:      errors.New("read-only file system"),
			expected: "Failed to open log file: read-only file system",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{carousel.ErrTooFewItems, true},
		{fmt.Errorf("wrapped: %w", carousel.ErrInvalidPageSize), true},
		{carousel.ErrInvalidInterval, true},
		{carousel.ErrInvalidItemSize, true},
		{errors.New("other"), false},
		{nil, false},
	}

	for _, tt := range tests {
		if got := Hint(tt.err) != ""; got != tt.want {
			t.Errorf("Hint(%v) non-empty = %v, want %v", tt.err, got, tt.want)
		}
	}
}
