// Package engine resolves one brightness request against a backlight
// device: it maps user values between the active mode's scale and the
// hardware's, clamps relative changes at the range boundaries, and performs
// at most one hardware write per invocation.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"backlightctl/internal/backlight"
	"backlightctl/internal/notify"
	"backlightctl/internal/scale"
)

// Mode selects the coordinate space user-facing values are expressed in.
type Mode int

const (
	ModeAbsolute Mode = iota // the device's native range
	ModeRelative             // 0..100 percent
	ModeStep                 // 0..N caller-chosen steps
)

const relativeSpan = 100

// ParseMode maps the CLI/config spelling to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "absolute":
		return ModeAbsolute, nil
	case "relative":
		return ModeRelative, nil
	case "step":
		return ModeStep, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want absolute, relative or step)", s)
}

// Op is the single operation an invocation performs. The CLI guarantees
// exactly one; no flag at all behaves like OpGet.
type Op int

const (
	OpGet Op = iota
	OpMin
	OpMax
	OpSet
	OpInc
	OpDec
)

// Request describes one brightness transaction.
type Request struct {
	Op    Op
	Value uint32 // operand for OpSet/OpInc/OpDec
	Mode  Mode
	Steps uint32 // span for ModeStep

	Format        string // optional output template for OpGet
	Notifications bool
	Title         string
}

// Handler executes requests. It holds no state across invocations; two
// concurrent processes racing on the same device are not serialized and the
// last write wins.
type Handler struct {
	Device   backlight.Device
	Notifier notify.Notifier
	Out      io.Writer
	Log      zerolog.Logger
}

func (h *Handler) Run(ctx context.Context, req Request) error {
	hwMin, hwMax, err := h.Device.Range(ctx)
	if err != nil {
		return err
	}
	// In practice hwMin is always 0, but a device reporting an inverted or
	// empty range is as unusable as one reporting none.
	if hwMin > hwMax || hwMax == 0 {
		return fmt.Errorf("%w: reported bounds %d..%d", backlight.ErrRangeUnavailable, hwMin, hwMax)
	}

	span, err := resolveSpan(req, hwMax)
	if err != nil {
		return err
	}
	h.Log.Debug().
		Uint32("hw_min", hwMin).
		Uint32("hw_max", hwMax).
		Uint32("span", span).
		Msg("hardware range resolved")

	switch req.Op {
	case OpMin:
		_, err := fmt.Fprintln(h.Out, 0)
		return err
	case OpMax:
		_, err := fmt.Fprintln(h.Out, span)
		return err
	case OpGet:
		cur, err := h.Device.Current(ctx)
		if err != nil {
			return err
		}
		val := scale.ToMode(hwMax, span, cur)
		if req.Format != "" {
			_, err := fmt.Fprintln(h.Out, Render(req.Format, 0, span, val))
			return err
		}
		_, err = fmt.Fprintln(h.Out, val)
		return err
	case OpSet:
		if req.Value > span {
			return &ValueOutOfRangeError{Min: 0, Max: span, Value: req.Value}
		}
		return h.write(ctx, req, hwMax, scale.ToHardware(hwMax, span, req.Value))
	case OpInc, OpDec:
		cur, err := h.Device.Current(ctx)
		if err != nil {
			return err
		}
		delta := int64(req.Value)
		if req.Op == OpDec {
			delta = -delta
		}
		target := scale.ClampShift(scale.ToMode(hwMax, span, cur), delta, span)
		return h.write(ctx, req, hwMax, scale.ToHardware(hwMax, span, target))
	}
	return fmt.Errorf("unknown operation %d", req.Op)
}

// resolveSpan yields the active mode's upper bound. Step spans must fit the
// hardware range; a span of 0 would divide by zero in the conversion.
func resolveSpan(req Request, hwMax uint32) (uint32, error) {
	switch req.Mode {
	case ModeRelative:
		return relativeSpan, nil
	case ModeStep:
		if req.Steps == 0 || req.Steps > hwMax {
			return 0, &StepParameterOutOfRangeError{Max: hwMax, Value: req.Steps}
		}
		return req.Steps, nil
	default:
		return hwMax, nil
	}
}

func (h *Handler) write(ctx context.Context, req Request, hwMax, hwVal uint32) error {
	if err := h.Device.Set(ctx, hwVal); err != nil {
		return err
	}
	h.Log.Debug().Uint32("value", hwVal).Msg("brightness written")

	if !req.Notifications || h.Notifier == nil {
		return nil
	}
	// Notification content is percentage-normalized whatever the active mode.
	pct := scale.ToMode(hwMax, relativeSpan, hwVal)
	if err := h.Notifier.Notify(ctx, pct, notify.ForPercent(pct), req.Title); err != nil {
		// The write is already committed; a failed notification must not
		// undo or fail it.
		h.Log.Warn().Err(err).Msg("notification failed")
	}
	return nil
}
