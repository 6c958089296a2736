// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"github.com/Reemuson/stm32-lcd-ui/argb"
	"github.com/Reemuson/stm32-lcd-ui/driver"
)

// Kind is the type of a Widget.
type Kind uint8

const (
	// Button fires its touch handler once per press, on release.
	Button Kind = iota
	// Slider maps horizontal drags onto a value in [0, 100].
	Slider
	// ProgressBar displays a percentage as a filled bar.
	ProgressBar
	// Label displays static text.
	Label
)

// TouchHandler receives touch positions forwarded to a captured widget.
// For buttons it is invoked once on release; for sliders it is invoked
// for every sample while pressed, replacing the default drag behavior.
type TouchHandler interface {
	OnTouch(ctx *Context, w *Widget, x, y int, userData any)
}

// TouchHandlerFunc adapts a function to a TouchHandler.
type TouchHandlerFunc func(ctx *Context, w *Widget, x, y int, userData any)

func (f TouchHandlerFunc) OnTouch(ctx *Context, w *Widget, x, y int, userData any) {
	f(ctx, w, x, y, userData)
}

// ValueChangedHandler is notified whenever a slider recomputes its value.
type ValueChangedHandler interface {
	OnValueChanged(ctx *Context, w *Widget, value int)
}

// ValueChangedHandlerFunc adapts a function to a ValueChangedHandler.
type ValueChangedHandlerFunc func(ctx *Context, w *Widget, value int)

func (f ValueChangedHandlerFunc) OnValueChanged(ctx *Context, w *Widget, value int) {
	f(ctx, w, value)
}

// Widget is one rectangular element on screen. Widgets are passive data;
// the Context routes touches to them and draws them. Callers own the
// Widget storage and must not mutate geometry while a HandleTouch or
// Render call is in flight.
type Widget struct {
	// X, Y, Width, Height is the widget rectangle in screen pixels.
	X, Y          int
	Width, Height int

	Kind Kind

	// OnTouch, when set, replaces the default touch behavior for the
	// widget. UserData is passed through to it. For sliders, UserData
	// holds the linked *Widget when the default handler is used.
	OnTouch  TouchHandler
	UserData any

	// Text is the label text; empty means none.
	Text string

	// Progress is the displayed percentage of a ProgressBar, 0 to 100.
	Progress int
	// Value is the current Slider value, 0 to 100.
	Value int

	Background argb.Colour
	// Foreground colours text, the progress fill and the slider track.
	Foreground argb.Colour

	TextAlign driver.Align

	// OnValueChanged is notified after a Slider recomputes Value.
	OnValueChanged ValueChangedHandler
}

func (k Kind) String() string {
	switch k {
	case Button:
		return "Button"
	case Slider:
		return "Slider"
	case ProgressBar:
		return "ProgressBar"
	case Label:
		return "Label"
	default:
		panic("unknown Kind")
	}
}
