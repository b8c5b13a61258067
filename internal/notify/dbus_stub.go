//go:build !linux

package notify

import (
	"fmt"
	"time"
)

func NewDBus(timeout time.Duration) (*DBus, error) {
	return nil, fmt.Errorf("notify: desktop notifications unsupported on this platform")
}

type DBus struct{ Noop }

func (n *DBus) Close() error { return nil }
