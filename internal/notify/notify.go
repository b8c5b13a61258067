package notify

import "context"

// IconClass picks the notification icon shown for the new brightness level.
type IconClass string

const (
	IconHigh IconClass = "high"
	IconLow  IconClass = "low"
)

// ForPercent returns the icon class for a brightness percentage.
func ForPercent(pct uint32) IconClass {
	if pct > 50 {
		return IconHigh
	}
	return IconLow
}

// Notifier delivers a best-effort desktop notification after a brightness
// change. Failures must never roll back or fail the committed change.
type Notifier interface {
	Notify(ctx context.Context, percent uint32, icon IconClass, title string) error
}

// Noop discards notifications. Usable as a zero value.
type Noop struct{}

func (Noop) Notify(context.Context, uint32, IconClass, string) error { return nil }
