// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui is a minimal retained-mode widget layer for small pixel
displays.

A Context holds a fixed-capacity, ordered set of borrowed Widget
references and routes raw touch samples to the widget under the finger,
capturing it for the duration of one press. Rendering goes through the
injected driver.Display; nothing in this package talks to hardware
directly.

All operations are synchronous and run on the calling goroutine. The
Context is single-writer: callers must serialize HandleTouch, Render and
registration calls themselves.
*/
package ui

import (
	"github.com/sirupsen/logrus"

	"github.com/Reemuson/stm32-lcd-ui/argb"
	"github.com/Reemuson/stm32-lcd-ui/driver"
)

// Context is one live UI session over a Display.
type Context struct {
	display driver.Display

	// widgets is registration-ordered; order doubles as z-order for
	// hit-testing ties. Capacity is fixed at construction.
	widgets []*Widget

	screenWidth  int
	screenHeight int

	// active is the widget captured by the current press, if any.
	active      *Widget
	touchActive bool

	log *logrus.Entry
}

// Option configures a Context.
type Option func(*Context)

// WithLogger attaches a logger for touch routing diagnostics.
func WithLogger(log *logrus.Entry) Option {
	return func(ctx *Context) {
		ctx.log = log
	}
}

// New creates a Context over display holding at most capacity widgets.
// The display is initialized and its dimensions cached. A nil display
// yields a nil Context; all Context methods tolerate a nil receiver.
func New(display driver.Display, capacity int, opts ...Option) *Context {
	if display == nil || capacity < 0 {
		return nil
	}
	ctx := &Context{
		display: display,
		widgets: make([]*Widget, 0, capacity),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	display.Init()
	ctx.screenWidth, ctx.screenHeight = display.ScreenSize()
	return ctx
}

// AddWidget registers w. Registration order is render order and decides
// hit-test ties. Widgets beyond the fixed capacity are silently dropped.
// An out-of-range text alignment is normalized to AlignLeft.
func (ctx *Context) AddWidget(w *Widget) {
	if ctx == nil || w == nil {
		return
	}
	if len(ctx.widgets) >= cap(ctx.widgets) {
		if ctx.log != nil {
			ctx.log.WithField("capacity", cap(ctx.widgets)).Warn("widget capacity exceeded, dropped")
		}
		return
	}
	if w.TextAlign > driver.AlignRight {
		w.TextAlign = driver.AlignLeft
	}
	ctx.widgets = append(ctx.widgets, w)
}

// ClearWidgets unregisters every widget. Widget storage stays with the
// caller; a widget captured by an ongoing press loses its capture.
func (ctx *Context) ClearWidgets() {
	if ctx == nil {
		return
	}
	ctx.widgets = ctx.widgets[:0]
	ctx.active = nil
}

// ResetScreen clears the display to colour and unregisters all widgets.
func (ctx *Context) ResetScreen(colour argb.Colour) {
	if ctx == nil || ctx.display == nil {
		return
	}
	ctx.display.Clear(colour)
	ctx.ClearWidgets()
}

// ScreenWidth reports the cached display width in pixels.
func (ctx *Context) ScreenWidth() int {
	if ctx == nil {
		return 0
	}
	return ctx.screenWidth
}

// ScreenHeight reports the cached display height in pixels.
func (ctx *Context) ScreenHeight() int {
	if ctx == nil {
		return 0
	}
	return ctx.screenHeight
}

// Active reports the widget captured by the current press, or nil.
func (ctx *Context) Active() *Widget {
	if ctx == nil {
		return nil
	}
	return ctx.active
}
