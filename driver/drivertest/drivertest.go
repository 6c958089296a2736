// SPDX-License-Identifier: Unlicense OR MIT

// Package drivertest provides fake display and sensor implementations
// for testing code against the driver interfaces without hardware.
package drivertest

import (
	"fmt"

	"github.com/Reemuson/stm32-lcd-ui/argb"
	"github.com/Reemuson/stm32-lcd-ui/driver"
	"github.com/Reemuson/stm32-lcd-ui/io/touch"
)

// Op identifies a recorded display call.
type Op string

const (
	OpInit      Op = "Init"
	OpBacklight Op = "SetBacklight"
	OpPixel     Op = "DrawPixel"
	OpRect      Op = "DrawRect"
	OpText      Op = "DrawText"
	OpClear     Op = "Clear"
)

// Call is one recorded display call with the arguments it received.
type Call struct {
	Op            Op
	X, Y          int
	Width, Height int
	Text          string
	Colour        argb.Colour
	Background    argb.Colour
	Align         driver.Align
	Level         uint8
}

// Display records every drawing call it receives. The zero value is not
// usable; construct one with NewDisplay.
type Display struct {
	Calls []Call

	width, height int
	fontW, fontH  int
}

// Screen and font metrics of the STM32H747I-DISCO board the original
// firmware ran on (800x480 panel, Font24 glyphs).
const (
	DefaultWidth      = 800
	DefaultHeight     = 480
	DefaultFontWidth  = 17
	DefaultFontHeight = 24
)

// NewDisplay returns a recording display with the default metrics.
func NewDisplay() *Display {
	return NewDisplayWithMetrics(DefaultWidth, DefaultHeight, DefaultFontWidth, DefaultFontHeight)
}

// NewDisplayWithMetrics returns a recording display reporting the given
// screen and font metrics.
func NewDisplayWithMetrics(width, height, fontW, fontH int) *Display {
	return &Display{width: width, height: height, fontW: fontW, fontH: fontH}
}

// Reset discards the recorded calls.
func (d *Display) Reset() {
	d.Calls = d.Calls[:0]
}

func (d *Display) Init() {
	d.Calls = append(d.Calls, Call{Op: OpInit})
}

func (d *Display) SetBacklight(level uint8) {
	d.Calls = append(d.Calls, Call{Op: OpBacklight, Level: level})
}

func (d *Display) DrawPixel(x, y int, colour argb.Colour) {
	d.Calls = append(d.Calls, Call{Op: OpPixel, X: x, Y: y, Colour: colour})
}

func (d *Display) DrawRect(x, y, width, height int, colour argb.Colour) {
	d.Calls = append(d.Calls, Call{Op: OpRect, X: x, Y: y, Width: width, Height: height, Colour: colour})
}

func (d *Display) DrawText(x, y int, text string, fg, bg argb.Colour, align driver.Align) {
	d.Calls = append(d.Calls, Call{Op: OpText, X: x, Y: y, Text: text, Colour: fg, Background: bg, Align: align})
}

func (d *Display) Clear(colour argb.Colour) {
	d.Calls = append(d.Calls, Call{Op: OpClear, Colour: colour})
}

func (d *Display) ScreenSize() (int, int) { return d.width, d.height }

func (d *Display) FontWidth() int { return d.fontW }

func (d *Display) FontHeight() int { return d.fontH }

func (c Call) String() string {
	switch c.Op {
	case OpRect:
		return fmt.Sprintf("DrawRect(%d,%d,%d,%d,%#08x)", c.X, c.Y, c.Width, c.Height, uint32(c.Colour))
	case OpText:
		return fmt.Sprintf("DrawText(%d,%d,%q,%s)", c.X, c.Y, c.Text, c.Align)
	case OpPixel:
		return fmt.Sprintf("DrawPixel(%d,%d,%#08x)", c.X, c.Y, uint32(c.Colour))
	case OpClear:
		return fmt.Sprintf("Clear(%#08x)", uint32(c.Colour))
	case OpBacklight:
		return fmt.Sprintf("SetBacklight(%d)", c.Level)
	default:
		return string(c.Op)
	}
}

// Sensor replays a scripted sequence of touch samples. Reads past the end
// of the script repeat the final sample. The zero value reports an
// untouched screen.
type Sensor struct {
	Samples []touch.Sample

	next        int
	initialized bool
	interrupts  bool
}

func (s *Sensor) Initialize() error {
	s.initialized = true
	return nil
}

func (s *Sensor) ReadState() (touch.Sample, error) {
	if len(s.Samples) == 0 {
		return touch.Sample{}, nil
	}
	sample := s.Samples[s.next]
	if s.next < len(s.Samples)-1 {
		s.next++
	}
	return sample, nil
}

func (s *Sensor) EnableInterrupt(enable bool) {
	s.interrupts = enable
}

// Initialized reports whether Initialize has been called.
func (s *Sensor) Initialized() bool { return s.initialized }
