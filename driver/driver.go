// SPDX-License-Identifier: Unlicense OR MIT

/*
Package driver defines the capability set a pixel display must provide.

The ui package draws exclusively through the Display interface; board
support packages, software framebuffers and test fakes implement it. A
Display is assumed to always succeed once initialized, so the drawing
methods report no errors.
*/
package driver

import "github.com/Reemuson/stm32-lcd-ui/argb"

// Align selects horizontal text alignment.
type Align uint8

const (
	// AlignLeft draws text starting at the given x.
	AlignLeft Align = iota
	// AlignCenter centers text on the drawing area.
	AlignCenter
	// AlignRight draws text ending at the right edge.
	AlignRight
)

// Display is a pixel drawing backend.
type Display interface {
	// Init prepares the display hardware for drawing.
	Init()
	// SetBacklight sets the backlight level, 0 (off) to 255.
	SetBacklight(level uint8)
	// DrawPixel sets a single pixel.
	DrawPixel(x, y int, colour argb.Colour)
	// DrawRect fills a rectangle.
	DrawRect(x, y, width, height int, colour argb.Colour)
	// DrawText draws a string with the display's fixed-metric font.
	DrawText(x, y int, text string, fg, bg argb.Colour, align Align)
	// Clear fills the whole screen.
	Clear(colour argb.Colour)
	// ScreenSize reports the screen dimensions in pixels.
	ScreenSize() (width, height int)
	// FontWidth reports the width of one glyph in pixels.
	FontWidth() int
	// FontHeight reports the height of one glyph in pixels.
	FontHeight() int
}

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "AlignLeft"
	case AlignCenter:
		return "AlignCenter"
	case AlignRight:
		return "AlignRight"
	default:
		panic("unknown Align")
	}
}
