//go:build linux

package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	notifService = "org.freedesktop.Notifications"
	notifPath    = "/org/freedesktop/Notifications"
	notifMethod  = "org.freedesktop.Notifications.Notify"
)

// DBus sends freedesktop desktop notifications over the session bus.
type DBus struct {
	conn    *dbus.Conn
	timeout time.Duration
}

func NewDBus(timeout time.Duration) (*DBus, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("notify: session bus: %w", err)
	}
	return &DBus{conn: conn, timeout: timeout}, nil
}

func (n *DBus) Notify(ctx context.Context, percent uint32, icon IconClass, title string) error {
	iconName := "display-brightness-low-symbolic"
	if icon == IconHigh {
		iconName = "display-brightness-high-symbolic"
	}
	// The "value" hint makes notification daemons render a level bar.
	hints := map[string]dbus.Variant{
		"value": dbus.MakeVariant(int32(percent)),
	}
	body := fmt.Sprintf("%d%%", percent)

	obj := n.conn.Object(notifService, notifPath)
	call := obj.CallWithContext(ctx, notifMethod, 0,
		"backlightctl",            // app name
		uint32(0),                 // no notification to replace
		iconName, title, body,
		[]string{},                // no actions
		hints,
		int32(n.timeout/time.Millisecond))
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}
	return nil
}

func (n *DBus) Close() error { return n.conn.Close() }
