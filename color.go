package ezx

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-component RGB color.
// It is a value type: construct one and it never changes.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit red, green, and blue components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Ref packs the color into the engine's native 24-bit layout: blue in bits
// 16-23, green in bits 8-15, red in bits 0-7 (0x00BBGGRR). This is the
// reverse of the conventional "RRGGBB" reading order; swapping it exchanges
// red and blue on everything drawn through the boundary.
func (c Color) Ref() uint32 {
	return uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// ColorFromRef unpacks an engine 0x00BBGGRR value. It is the exact inverse
// of Ref over the full 24-bit domain. Values with bits set above bit 23
// fail with EncodingError.
func ColorFromRef(ref uint32) (Color, error) {
	if ref > 0xFFFFFF {
		return Color{}, &EncodingError{Value: ref}
	}
	return Color{
		R: uint8(ref),
		G: uint8(ref >> 8),
		B: uint8(ref >> 16),
	}, nil
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("Color(r=%d, g=%d, b=%d)", c.R, c.G, c.B)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// HSL returns the hue [0,360), saturation [0,1], and lightness [0,1]
// of the color.
func (c Color) HSL() (h, s, l float64) {
	return c.toColorful().Hsl()
}

// HSV returns the hue [0,360), saturation [0,1], and value [0,1]
// of the color.
func (c Color) HSV() (h, s, v float64) {
	return c.toColorful().Hsv()
}

// HSLColor creates a color from hue [0,360), saturation [0,1], and
// lightness [0,1].
func HSLColor(h, s, l float64) Color {
	return fromColorful(colorful.Hsl(h, s, l))
}

// HSVColor creates a color from hue [0,360), saturation [0,1], and
// value [0,1].
func HSVColor(h, s, v float64) Color {
	return fromColorful(colorful.Hsv(h, s, v))
}

// Gray converts the color to grayscale using the 299/587/114 luminance
// weights. All three output components carry the same value.
func (c Color) Gray() Color {
	y := uint8((uint32(c.R)*299 + uint32(c.G)*587 + uint32(c.B)*114) / 1000)
	return Color{R: y, G: y, B: y}
}

// The classic 16-color palette. The light and dark variants use 85/170/255
// component steps, matching the engine's documented constants.
var (
	Black        = RGB(0, 0, 0)
	Blue         = RGB(0, 0, 255)
	Green        = RGB(0, 255, 0)
	Cyan         = RGB(0, 255, 255)
	Red          = RGB(255, 0, 0)
	Magenta      = RGB(255, 0, 255)
	Brown        = RGB(170, 85, 0)
	LightGray    = RGB(170, 170, 170)
	DarkGray     = RGB(85, 85, 85)
	LightBlue    = RGB(85, 85, 255)
	LightGreen   = RGB(85, 255, 85)
	LightCyan    = RGB(85, 255, 255)
	LightRed     = RGB(255, 85, 85)
	LightMagenta = RGB(255, 85, 255)
	Yellow       = RGB(255, 255, 0)
	White        = RGB(255, 255, 255)
)
