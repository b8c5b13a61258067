//go:build linux

package backlight

import (
	"context"
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// randrDevice drives the backlight property of an X11 output over RandR.
//
// The first output of the current screen resources is used; picking between
// multiple monitors is out of scope.
type randrDevice struct {
	conn   *xgb.Conn
	output randr.Output
	prop   xproto.Atom
}

// NewRandR connects to the X server named by DISPLAY and locates the first
// output carrying a backlight property.
func NewRandR() (Device, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("backlight: connect to X server: %w", err)
	}
	d, err := newRandR(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return d, nil
}

func newRandR(conn *xgb.Conn) (*randrDevice, error) {
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("backlight: randr extension: %w", err)
	}

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	res, err := randr.GetScreenResourcesCurrent(conn, root).Reply()
	if err != nil {
		return nil, fmt.Errorf("backlight: screen resources: %w", err)
	}
	if len(res.Outputs) == 0 {
		return nil, fmt.Errorf("backlight: current screen has no outputs")
	}

	prop, err := backlightAtom(conn)
	if err != nil {
		return nil, err
	}
	return &randrDevice{conn: conn, output: res.Outputs[0], prop: prop}, nil
}

// backlightAtom interns the backlight property atom. Drivers disagree on
// the spelling, so both are tried.
func backlightAtom(conn *xgb.Conn) (xproto.Atom, error) {
	for _, name := range []string{"BACKLIGHT", "Backlight"} {
		reply, err := xproto.InternAtom(conn, true, uint16(len(name)), name).Reply()
		if err != nil {
			continue
		}
		if reply.Atom != xproto.AtomNone {
			return reply.Atom, nil
		}
	}
	return 0, fmt.Errorf("backlight: X server exposes no backlight property (driver may not support it)")
}

func (d *randrDevice) Range(_ context.Context) (uint32, uint32, error) {
	reply, err := randr.QueryOutputProperty(d.conn, d.output, d.prop).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrRangeUnavailable, err)
	}
	if !reply.Range || len(reply.ValidValues) != 2 {
		return 0, 0, fmt.Errorf("%w: property is not a range", ErrRangeUnavailable)
	}
	lo, hi := reply.ValidValues[0], reply.ValidValues[1]
	if lo < 0 || hi < lo {
		return 0, 0, fmt.Errorf("%w: bounds %d..%d", ErrRangeUnavailable, lo, hi)
	}
	return uint32(lo), uint32(hi), nil
}

func (d *randrDevice) Current(_ context.Context) (uint32, error) {
	reply, err := randr.GetOutputProperty(d.conn, d.output, d.prop,
		xproto.AtomInteger, 0, 4, false, false).Reply()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCurrentUnavailable, err)
	}
	if reply.Format != 32 || reply.NumItems != 1 || len(reply.Data) < 4 {
		return 0, fmt.Errorf("%w: unexpected property format", ErrCurrentUnavailable)
	}
	return xgb.Get32(reply.Data), nil
}

func (d *randrDevice) Set(_ context.Context, v uint32) error {
	data := make([]byte, 4)
	xgb.Put32(data, v)
	err := randr.ChangeOutputPropertyChecked(d.conn, d.output, d.prop,
		xproto.AtomInteger, 32, xproto.PropModeReplace, 1, data).Check()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteRejected, err)
	}
	return nil
}

func (d *randrDevice) Close() error {
	d.conn.Close()
	return nil
}
