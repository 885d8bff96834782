// Package ui holds what both frontends share about presentation: the color
// theme, HUD and banner text, and the stats overlay.
package ui

import (
	"fmt"
	"image/color"
	"strconv"
)

// Theme holds all visual styling constants for easy customization. Colors
// are CSS hex strings so the browser can use them as-is; RGBA converts
// them for the desktop renderer.
var Theme = struct {
	BackgroundColor string
	StarColor       string

	ShipColor       string
	ShipCenterColor string
	ShotColor       string

	EnemyColor      string
	EnemyShotColor  string
	EnemyChargeGlow string

	BarrierColor     string
	BarrierWornColor string

	ScoreColor         string
	TextPrimaryColor   string
	TextSecondaryColor string
	OverlayPanelColor  string
	OverlayBorderColor string

	// FadeColor is the wave-clear overlay, drawn with the game's fade alpha.
	FadeColor string

	HUDFont    string
	BannerFont string
}{
	// Dark space theme
	BackgroundColor: "#000",
	StarColor:       "#444",

	// Player - green/lime
	ShipColor:       "#9F0",
	ShipCenterColor: "#FFF",
	ShotColor:       "#CF0",

	// Enemies - purple/violet
	EnemyColor:      "#62F",
	EnemyShotColor:  "#F63",
	EnemyChargeGlow: "#FC6",

	BarrierColor:     "#0AF",
	BarrierWornColor: "#046",

	ScoreColor:         "#9F0",
	TextPrimaryColor:   "#62F",
	TextSecondaryColor: "#FFF",
	OverlayPanelColor:  "#000000C0",
	OverlayBorderColor: "#0AF",

	FadeColor: "#000",

	HUDFont:    "16px Consolas,monospace",
	BannerFont: "bold 32px Consolas,monospace",
}

// RGBA parses a #RGB, #RGBA, #RRGGBB or #RRGGBBAA color.
func RGBA(hex string) (color.RGBA, error) {
	if len(hex) == 0 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q: missing #", hex)
	}
	digits := hex[1:]

	var wide string
	switch len(digits) {
	case 3, 4:
		for _, c := range digits {
			wide += string(c) + string(c)
		}
	case 6, 8:
		wide = digits
	default:
		return color.RGBA{}, fmt.Errorf("color %q: bad length", hex)
	}
	if len(wide) == 6 {
		wide += "ff"
	}

	v, err := strconv.ParseUint(wide, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustRGBA is RGBA for theme colors, which are known to be valid.
func MustRGBA(hex string) color.RGBA {
	c, err := RGBA(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c scaled to alpha a in [0, 1], premultiplied as
// image/color expects.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = max(0, min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
