package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Mode selects the value space: absolute, relative or step.
	Mode string `yaml:"mode"`
	// Steps is the span for step mode; required when mode is "step".
	Steps uint32 `yaml:"steps"`
	// Backend selects the device backend: randr, sysfs or gpio.
	Backend string `yaml:"backend"`
	// Format is an optional output template for get; %val, %min and %max
	// substitute, %% is a literal percent sign.
	Format string `yaml:"pretty_format"`

	Notifications NotificationsConfig `yaml:"notifications"`
	Sysfs         SysfsConfig         `yaml:"sysfs"`
	GPIO          GPIOConfig          `yaml:"gpio"`
	Log           LogConfig           `yaml:"log"`
}

type NotificationsConfig struct {
	Enable  bool          `yaml:"enable"`
	Title   string        `yaml:"title"`
	Timeout time.Duration `yaml:"timeout"`
}

type SysfsConfig struct {
	// Device names an entry under /sys/class/backlight; empty picks the
	// first one found.
	Device string `yaml:"device"`
}

type GPIOConfig struct {
	// Chip is a /dev/gpiochipN path; empty scans all chips.
	Chip string `yaml:"chip"`
	// Pin is the BCM GPIO number of the backlight line.
	Pin int `yaml:"pin"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	applyDefaults(&cfg)
	return cfg
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = "absolute"
	}
	if cfg.Backend == "" {
		cfg.Backend = "randr"
	}
	if cfg.Notifications.Title == "" {
		cfg.Notifications.Title = "Backlight"
	}
	if cfg.Notifications.Timeout <= 0 {
		cfg.Notifications.Timeout = 2 * time.Second
	}
	if cfg.GPIO.Pin == 0 {
		cfg.GPIO.Pin = 18
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
}

func validate(cfg Config) error {
	switch cfg.Mode {
	case "absolute", "relative", "step":
	default:
		return fmt.Errorf("mode must be 'absolute', 'relative' or 'step', got %q", cfg.Mode)
	}
	if cfg.Mode == "step" && cfg.Steps == 0 {
		return fmt.Errorf("steps is required when mode is 'step'")
	}

	switch cfg.Backend {
	case "randr", "sysfs", "gpio":
	default:
		return fmt.Errorf("backend must be 'randr', 'sysfs' or 'gpio', got %q", cfg.Backend)
	}
	if cfg.Backend == "gpio" && cfg.GPIO.Pin <= 0 {
		return fmt.Errorf("gpio.pin must be > 0 when backend is 'gpio'")
	}
	return nil
}
