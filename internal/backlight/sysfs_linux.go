//go:build linux

package backlight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// sysfsDevice drives a kernel backlight via /sys/class/backlight.
//
// The kernel exposes max_brightness (read), brightness (read/write) and
// actual_brightness (read, reflects what the hardware reports). Writes
// normally require root or a udev rule granting group write access.
type sysfsDevice struct {
	dir string
}

var sysfsBase = "/sys/class/backlight"

// NewSysfs opens a /sys/class/backlight device. With an empty name the
// first device advertising a max_brightness attribute is used.
func NewSysfs(name string) (Device, error) {
	return newSysfsAt(sysfsBase, name)
}

func newSysfsAt(base, name string) (Device, error) {
	if name == "" {
		entries, err := os.ReadDir(base)
		if err != nil {
			return nil, fmt.Errorf("backlight: read %s: %w", base, err)
		}
		for _, e := range entries {
			if _, err := os.Stat(filepath.Join(base, e.Name(), "max_brightness")); err == nil {
				name = e.Name()
				break
			}
		}
		if name == "" {
			return nil, fmt.Errorf("backlight: no backlight device under %s", base)
		}
	}

	dir := filepath.Join(base, name)
	if _, err := os.Stat(filepath.Join(dir, "max_brightness")); err != nil {
		return nil, fmt.Errorf("backlight: %s is not a backlight device: %w", dir, err)
	}
	return &sysfsDevice{dir: dir}, nil
}

func (d *sysfsDevice) Range(_ context.Context) (uint32, uint32, error) {
	max, err := readSysfsUint(filepath.Join(d.dir, "max_brightness"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrRangeUnavailable, err)
	}
	return 0, max, nil
}

func (d *sysfsDevice) Current(_ context.Context) (uint32, error) {
	// actual_brightness reflects what the hardware is doing; some drivers
	// only provide brightness.
	v, err := readSysfsUint(filepath.Join(d.dir, "actual_brightness"))
	if err == nil {
		return v, nil
	}
	v, err = readSysfsUint(filepath.Join(d.dir, "brightness"))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCurrentUnavailable, err)
	}
	return v, nil
}

func (d *sysfsDevice) Set(_ context.Context, v uint32) error {
	p := filepath.Join(d.dir, "brightness")
	if err := unix.Access(p, unix.W_OK); err != nil {
		return fmt.Errorf("%w: %s not writable: %v", ErrWriteRejected, p, err)
	}
	if err := writeSysfs(p, strconv.FormatUint(uint64(v), 10)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteRejected, err)
	}
	return nil
}

func (d *sysfsDevice) Close() error { return nil }

func writeSysfs(path, value string) error {
	// O_WRONLY without O_TRUNC/O_CREATE: some sysfs attributes reject
	// truncation flags even when mode bits allow writes.
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	_, werr := f.WriteString(value)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

func readSysfsUint(path string) (uint32, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return 0, fmt.Errorf("%s: empty", path)
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", path, s, err)
	}
	return uint32(n), nil
}
