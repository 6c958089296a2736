// SPDX-License-Identifier: Unlicense OR MIT

/*
Package memdriver implements driver.Display on an in-memory framebuffer.

It stands in for a board support package on hosts without an LCD: tests
render into it and inspect pixels, and the demo program snapshots frames
as PNG. Text uses the fixed-metric basicfont face, matching the
fixed-cell font contract of the display interface.
*/
package memdriver

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Reemuson/stm32-lcd-ui/argb"
	"github.com/Reemuson/stm32-lcd-ui/driver"
)

// Display is a software framebuffer. Not safe for concurrent use.
type Display struct {
	img       *image.RGBA
	face      *basicfont.Face
	backlight uint8
}

// New returns a display with a width by height framebuffer.
func New(width, height int) *Display {
	return &Display{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

func (d *Display) Init() {
	d.Clear(argb.Black)
	d.backlight = 0xFF
}

func (d *Display) SetBacklight(level uint8) {
	d.backlight = level
}

// Backlight reports the last level passed to SetBacklight.
func (d *Display) Backlight() uint8 { return d.backlight }

func (d *Display) DrawPixel(x, y int, colour argb.Colour) {
	d.img.SetRGBA(x, y, rgba(colour))
}

func (d *Display) DrawRect(x, y, width, height int, colour argb.Colour) {
	r := image.Rect(x, y, x+width, y+height).Intersect(d.img.Bounds())
	draw.Draw(d.img, r, image.NewUniform(rgba(colour)), image.Point{}, draw.Src)
}

func (d *Display) DrawText(x, y int, text string, fg, bg argb.Colour, align driver.Align) {
	textWidth := len(text) * d.FontWidth()
	screenWidth, _ := d.ScreenSize()

	// Alignment matches the board driver the interface was lifted from:
	// center ignores x, right treats x as an offset from the right edge.
	switch align {
	case driver.AlignCenter:
		x = (screenWidth - textWidth) / 2
	case driver.AlignRight:
		x = screenWidth - textWidth - x
	}

	d.DrawRect(x, y, textWidth, d.FontHeight(), bg)

	drawer := font.Drawer{
		Dst:  d.img,
		Src:  image.NewUniform(rgba(fg)),
		Face: d.face,
		Dot:  fixed.P(x, y+d.face.Ascent),
	}
	drawer.DrawString(text)
}

func (d *Display) Clear(colour argb.Colour) {
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(rgba(colour)), image.Point{}, draw.Src)
}

func (d *Display) ScreenSize() (int, int) {
	b := d.img.Bounds()
	return b.Dx(), b.Dy()
}

func (d *Display) FontWidth() int { return d.face.Advance }

func (d *Display) FontHeight() int { return d.face.Height }

// Image exposes the framebuffer for inspection.
func (d *Display) Image() *image.RGBA { return d.img }

// WritePNG encodes the current framebuffer as PNG.
func (d *Display) WritePNG(w io.Writer) error {
	return png.Encode(w, d.img)
}

// rgba reinterprets a packed colour for the image package. Display
// colours are opaque by contract, so no alpha premultiplication applies.
func rgba(c argb.Colour) color.RGBA {
	return color.RGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}
