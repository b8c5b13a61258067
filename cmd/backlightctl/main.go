package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"

	"backlightctl/internal/backlight"
	"backlightctl/internal/config"
	"backlightctl/internal/engine"
	"backlightctl/internal/notify"
)

func main() {
	var (
		get = flag.Bool("get", false, "Print the current backlight value.")
		min = flag.Bool("min", false, "Print the minimum backlight value.")
		max = flag.Bool("max", false, "Print the maximum backlight value.")
		set = flag.String("set", "", "Set backlight to value.")
		inc = flag.String("inc", "", "Increase backlight by value.")
		dec = flag.String("dec", "", "Decrease backlight by value.")

		mode          = flag.String("mode", "", "Value mode: absolute, relative or step.")
		steps         = flag.Uint("steps", 0, "Number of steps for step mode.")
		format        = flag.String("pretty-format", "", "Output template for -get; %val, %min and %max substitute, %% is a literal percent sign.")
		notifications = flag.Bool("notifications", false, "Send a desktop notification after changing the backlight.")
		title         = flag.String("title", "", "Notification title.")
		backend       = flag.String("backend", "", "Backlight backend: randr, sysfs or gpio.")
		configPath    = flag.String("config", "", "Path to YAML config.")
		verbose       = flag.Bool("verbose", false, "Enable debug logging.")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("config load failed")
		}
	}

	// Flags override config file values.
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *steps != 0 {
		cfg.Steps = uint32(*steps)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *notifications {
		cfg.Notifications.Enable = true
	}
	if *title != "" {
		cfg.Notifications.Title = *title
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad log level")
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	op, operand, err := resolveOp(*get, *min, *max, *set, *inc, *dec)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad arguments")
	}

	m, err := engine.ParseMode(cfg.Mode)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad arguments")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dev, err := openBackend(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("backlight backend init failed")
	}
	defer dev.Close()

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Notifications.Enable {
		n, err := notify.NewDBus(cfg.Notifications.Timeout)
		if err != nil {
			// Notifications are best-effort; a missing session bus must not
			// block the brightness change.
			logger.Warn().Err(err).Msg("notifications unavailable")
		} else {
			notifier = n
			defer n.Close()
		}
	}

	h := &engine.Handler{
		Device:   dev,
		Notifier: notifier,
		Out:      os.Stdout,
		Log:      logger,
	}
	req := engine.Request{
		Op:            op,
		Value:         operand,
		Mode:          m,
		Steps:         cfg.Steps,
		Format:        cfg.Format,
		Notifications: cfg.Notifications.Enable,
		Title:         cfg.Notifications.Title,
	}
	if err := h.Run(ctx, req); err != nil {
		logger.Fatal().Msg(err.Error())
	}
}

// resolveOp maps the mutually exclusive operation flags to the single
// operation this invocation performs. No flag at all behaves like -get.
func resolveOp(get, min, max bool, set, inc, dec string) (engine.Op, uint32, error) {
	op := engine.OpGet
	var operand uint32
	given := 0

	if get {
		given++
	}
	if min {
		given++
		op = engine.OpMin
	}
	if max {
		given++
		op = engine.OpMax
	}
	for _, f := range []struct {
		raw  string
		op   engine.Op
		name string
	}{
		{set, engine.OpSet, "set"},
		{inc, engine.OpInc, "inc"},
		{dec, engine.OpDec, "dec"},
	} {
		if f.raw == "" {
			continue
		}
		given++
		v, err := strconv.ParseUint(f.raw, 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid -%s value %q", f.name, f.raw)
		}
		op = f.op
		operand = uint32(v)
	}

	if given > 1 {
		return 0, 0, fmt.Errorf("-get, -min, -max, -set, -inc and -dec are mutually exclusive")
	}
	return op, operand, nil
}

func openBackend(cfg config.Config) (backlight.Device, error) {
	switch cfg.Backend {
	case "sysfs":
		return backlight.NewSysfs(cfg.Sysfs.Device)
	case "gpio":
		return backlight.NewGPIO(cfg.GPIO.Chip, cfg.GPIO.Pin)
	case "randr":
		return backlight.NewRandR()
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
