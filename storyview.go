package storyview

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is the default viewer background.
var ColorBlack = Color{0, 0, 0, 1}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA converts the color to a premultiplied color.RGBA for ebiten.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Layout is the size of one page of the viewer. Every story occupies exactly
// one page; page i starts at i*Width in content coordinates.
type Layout struct {
	Width, Height float64
}

// TransitionMode selects the transform applied to pages while paging.
type TransitionMode uint8

const (
	TransitionCube    TransitionMode = iota // pages are faces of a rotating cube
	TransitionScale                         // pages shrink as they leave the centre
	TransitionDefault                       // plain 1:1 paging
)

var modeNames = [...]string{
	TransitionCube:    "cube",
	TransitionScale:   "scale",
	TransitionDefault: "default",
}

// String returns the lower-case name used in config files and flags.
func (m TransitionMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "TransitionMode(" + strconv.Itoa(int(m)) + ")"
}

// ParseTransitionMode maps a name ("cube", "scale", "default") to its mode.
func ParseTransitionMode(s string) (TransitionMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return TransitionMode(i), nil
		}
	}
	return TransitionDefault, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m TransitionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *TransitionMode) UnmarshalText(text []byte) error {
	mode, err := ParseTransitionMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
