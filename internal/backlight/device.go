package backlight

import (
	"context"
	"errors"
)

// Sentinel errors shared by all backends. Backends wrap these with detail;
// callers match with errors.Is.
var (
	// ErrRangeUnavailable indicates the device exposes no valid brightness range.
	ErrRangeUnavailable = errors.New("backlight: no valid brightness range")

	// ErrCurrentUnavailable indicates the current brightness could not be read.
	ErrCurrentUnavailable = errors.New("backlight: current brightness unavailable")

	// ErrWriteRejected indicates the device refused the brightness write.
	ErrWriteRejected = errors.New("backlight: brightness write rejected")
)

// Device is the minimal interface the engine needs from a backlight backend.
//
// One invocation performs at most one Range call, one Current call and one
// Set call, in that order. Close should be best-effort.
type Device interface {
	// Range reports the absolute brightness bounds, min <= max.
	Range(ctx context.Context) (min, max uint32, err error)
	// Current reads the present absolute brightness.
	Current(ctx context.Context) (uint32, error)
	// Set writes a new absolute brightness.
	Set(ctx context.Context, v uint32) error
	Close() error
}
