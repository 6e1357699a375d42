// Package notify announces carousel selections as desktop notifications.
package notify

import "fmt"

const (
	appName = "Carousel"
	appID   = "carousel"

	// SelectionCategory tags selection notifications so servers can group
	// or filter them.
	SelectionCategory = "x-carousel.selection"

	// SelectionTimeout is how long a selection notification stays up, in ms.
	SelectionTimeout int32 = 3000
)

// Urgency is the freedesktop notification urgency level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Category   string  // freedesktop category hint, empty for none
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Transient  bool    // skip the server's notification history
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Selection describes the selection of the zero-based item out of total.
// A non-zero replaces updates the previous selection's notification in place.
func Selection(label string, item, total int, replaces uint32) Notification {
	return Notification{
		Title:      "Selected " + label,
		Body:       fmt.Sprintf("Item %d of %d", item+1, total),
		Category:   SelectionCategory,
		Timeout:    SelectionTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
		Transient:  true,
	}
}

// nopNotifier drops every notification.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) {
	return 0, nil
}

func (nopNotifier) Close(uint32) error {
	return nil
}
