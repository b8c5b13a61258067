//go:build !linux

package backlight

import "fmt"

// Stub constructors for non-Linux platforms.

func NewRandR() (Device, error) {
	return nil, fmt.Errorf("backlight: randr backend unsupported on this platform")
}

func NewSysfs(name string) (Device, error) {
	return nil, fmt.Errorf("backlight: sysfs backend unsupported on this platform")
}

func NewGPIO(chipPath string, pin int) (Device, error) {
	return nil, fmt.Errorf("backlight: gpio backend unsupported on this platform")
}
