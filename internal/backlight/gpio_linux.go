//go:build linux

package backlight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/warthog618/go-gpiocdev"
)

// gpioDevice drives a panel backlight wired to a single GPIO line through
// the Linux GPIO character device. The hardware knows only on and off, so
// the reported range is 0..1.
//
// Intended for fixed-function panels on SBC hats where the backlight is a
// transistor on a header pin rather than a kernel backlight device.
type gpioDevice struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewGPIO requests the line named GPIO<pin> (BCM numbering). With an empty
// chip path, all gpiochips under /dev are searched; Pi kernel variants move
// header GPIOs between chips.
func NewGPIO(chipPath string, pin int) (Device, error) {
	if pin <= 0 {
		return nil, fmt.Errorf("backlight: invalid gpio pin %d", pin)
	}
	lineName := fmt.Sprintf("GPIO%d", pin)

	candidates := []string{}
	if chipPath != "" {
		candidates = append(candidates, chipPath)
	} else {
		entries, _ := os.ReadDir("/dev")
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), "gpiochip") {
				candidates = append(candidates, filepath.Join("/dev", e.Name()))
			}
		}
	}

	for _, path := range candidates {
		chip, err := gpiocdev.NewChip(path)
		if err != nil {
			continue
		}
		offset, err := chip.FindLine(lineName)
		if err != nil {
			_ = chip.Close()
			continue
		}
		// Request as-is: taking the line as an output here would drive it
		// and flip the panel before any operation ran.
		line, err := chip.RequestLine(offset, gpiocdev.WithConsumer("backlightctl"))
		if err != nil {
			_ = chip.Close()
			continue
		}
		return &gpioDevice{chip: chip, line: line}, nil
	}

	return nil, fmt.Errorf("backlight: gpio line %q not found (or busy)", lineName)
}

func (g *gpioDevice) Range(_ context.Context) (uint32, uint32, error) {
	return 0, 1, nil
}

func (g *gpioDevice) Current(_ context.Context) (uint32, error) {
	v, err := g.line.Value()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCurrentUnavailable, err)
	}
	if v != 0 {
		return 1, nil
	}
	return 0, nil
}

func (g *gpioDevice) Set(_ context.Context, v uint32) error {
	out := 0
	if v > 0 {
		out = 1
	}
	if err := g.line.Reconfigure(gpiocdev.AsOutput(out)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteRejected, err)
	}
	return nil
}

func (g *gpioDevice) Close() error {
	if g == nil || g.line == nil {
		return nil
	}
	// Leave the panel in whatever state it is; releasing the line must not
	// blank the display.
	err := g.line.Close()
	g.line = nil
	if g.chip != nil {
		_ = g.chip.Close()
		g.chip = nil
	}
	return err
}
