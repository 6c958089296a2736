// SPDX-License-Identifier: Unlicense OR MIT

/*
Package argb manipulates packed 32-bit ARGB colour values.

A Colour holds four 8-bit channels, alpha in the top byte, blue in the
bottom. Display drivers receive Colour values unmodified; alpha is carried
through but never interpreted by this module.
*/
package argb

import (
	"image/color"

	"github.com/Reemuson/stm32-lcd-ui/internal/scalar"
)

// Colour is a packed 32-bit ARGB value, 8 bits per channel.
type Colour uint32

// Standard opaque colours.
const (
	White   Colour = 0xFFFFFFFF
	Black   Colour = 0xFF000000
	Red     Colour = 0xFFFF0000
	Green   Colour = 0xFF00FF00
	Blue    Colour = 0xFF0000FF
	Gray    Colour = 0xFF808080
	Yellow  Colour = 0xFFFFFF00
	Cyan    Colour = 0xFF00FFFF
	Magenta Colour = 0xFFFF00FF
)

// New packs the four channels into a Colour.
func New(alpha, red, green, blue uint8) Colour {
	return Colour(alpha)<<24 | Colour(red)<<16 | Colour(green)<<8 | Colour(blue)
}

// Opaque packs an RGB triple with full alpha.
func Opaque(red, green, blue uint8) Colour {
	return New(0xFF, red, green, blue)
}

// Alpha reports the alpha channel.
func (c Colour) Alpha() uint8 { return uint8(c >> 24) }

// Red reports the red channel.
func (c Colour) Red() uint8 { return uint8(c >> 16) }

// Green reports the green channel.
func (c Colour) Green() uint8 { return uint8(c >> 8) }

// Blue reports the blue channel.
func (c Colour) Blue() uint8 { return uint8(c) }

// Scale multiplies the red, green and blue channels by factor, leaving
// alpha unchanged. Factors below 1 darken, above 1 lighten. Channels
// saturate at their 8-bit bounds.
func (c Colour) Scale(factor float32) Colour {
	scale := func(ch uint8) uint8 {
		return uint8(scalar.Clamp(int(float32(ch)*factor), 0, 255))
	}
	return New(c.Alpha(), scale(c.Red()), scale(c.Green()), scale(c.Blue()))
}

// ScaleByPercent scales the colour like Scale, with percent expressed the
// way LaTeX shading does: below 100 darkens, above 100 lightens, 100 is
// the identity.
func (c Colour) ScaleByPercent(percent uint8) Colour {
	return c.Scale(float32(percent) / 100)
}

// Lighten returns the colour brightened by amount percentage points,
// capped at a doubling of each channel.
func (c Colour) Lighten(amount uint8) Colour {
	total := 100 + uint16(amount)
	if total > 200 {
		total = 200
	}
	return c.ScaleByPercent(uint8(total))
}

// Darken returns the colour dimmed by amount percentage points.
func (c Colour) Darken(amount uint8) Colour {
	if amount > 100 {
		amount = 100
	}
	return c.ScaleByPercent(100 - amount)
}

// NRGBA converts the colour for use with the image package.
func (c Colour) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// FromNRGBA packs an image colour into a Colour.
func FromNRGBA(c color.NRGBA) Colour {
	return New(c.A, c.R, c.G, c.B)
}
