package storyview

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownMode is returned when a transition mode name is not recognized.
var ErrUnknownMode = errors.New("unknown transition mode")

// Config is the on-disk description of a viewer. Durations are in seconds.
type Config struct {
	Mode              TransitionMode `toml:"mode"`
	Pages             int            `toml:"pages"`
	InitialIndex      int            `toml:"initial_index"`
	PageWidth         float64        `toml:"page_width"`
	PageHeight        float64        `toml:"page_height"`
	DismissThreshold  float64        `toml:"dismiss_threshold"`
	VelocityThreshold float64        `toml:"velocity_threshold"`
	DismissDuration   float64        `toml:"dismiss_duration"`
	SnapDuration      float64        `toml:"snap_duration"`
	ScaleFloor        float64        `toml:"scale_floor"`
	LongPressDelay    float64        `toml:"long_press_delay"`
	Background        string         `toml:"background"`
	LogLevel          string         `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	drag := DefaultDragConfig()
	return Config{
		Mode:              TransitionCube,
		Pages:             5,
		PageWidth:         360,
		PageHeight:        640,
		DismissThreshold:  drag.DismissThreshold,
		VelocityThreshold: drag.VelocityThreshold,
		DismissDuration:   float64(drag.DismissDuration),
		SnapDuration:      float64(drag.SnapBackDuration),
		ScaleFloor:        DefaultScaleFloor,
		LongPressDelay:    DefaultLongPressDelay,
		Background:        "#000000",
		LogLevel:          "info",
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML text on top of DefaultConfig and validates it.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate resets out-of-range numeric fields to their defaults and reports
// values that cannot be repaired.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.Pages <= 0 {
		c.Pages = def.Pages
	}
	if c.InitialIndex < 0 || c.InitialIndex >= c.Pages {
		c.InitialIndex = 0
	}
	if c.PageWidth <= 0 {
		c.PageWidth = def.PageWidth
	}
	if c.PageHeight <= 0 {
		c.PageHeight = def.PageHeight
	}
	if c.DismissThreshold <= 0 {
		c.DismissThreshold = def.DismissThreshold
	}
	if c.VelocityThreshold <= 0 {
		c.VelocityThreshold = def.VelocityThreshold
	}
	if c.DismissDuration <= 0 {
		c.DismissDuration = def.DismissDuration
	}
	if c.SnapDuration <= 0 {
		c.SnapDuration = def.SnapDuration
	}
	if c.ScaleFloor <= 0 || c.ScaleFloor > 1 {
		c.ScaleFloor = def.ScaleFloor
	}
	if c.LongPressDelay <= 0 {
		c.LongPressDelay = def.LongPressDelay
	}
	if c.Mode > TransitionDefault {
		return fmt.Errorf("%w: %d", ErrUnknownMode, c.Mode)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Layout returns the page size.
func (c Config) Layout() Layout {
	return Layout{Width: c.PageWidth, Height: c.PageHeight}
}

// DragConfig returns the drag thresholds and durations.
func (c Config) DragConfig() DragConfig {
	return DragConfig{
		DismissThreshold:  c.DismissThreshold,
		VelocityThreshold: c.VelocityThreshold,
		DismissDuration:   float32(c.DismissDuration),
		SnapBackDuration:  float32(c.SnapDuration),
	}
}

// Options builds container options from the config. Callbacks are left for
// the caller to fill in.
func (c Config) Options() Options {
	bg, err := ParseColor(c.Background)
	if err != nil {
		bg = ColorBlack
	}
	return Options{
		InitialIndex:    c.InitialIndex,
		ItemCount:       c.Pages,
		Page:            c.Layout(),
		BackgroundColor: bg,
		Mode:            c.Mode,
		ScaleFloor:      c.ScaleFloor,
		Drag:            c.DragConfig(),
	}
}

// ParseLogLevel maps "debug", "info", "warn"/"warning" and "error" to a
// slog.Level. The empty string means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
