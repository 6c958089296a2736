// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"github.com/sirupsen/logrus"

	"github.com/Reemuson/stm32-lcd-ui/internal/scalar"
	"github.com/Reemuson/stm32-lcd-ui/io/touch"
)

// Hit-test margins per widget kind, easing small-target touch accuracy.
const (
	buttonMargin  = 6
	defaultMargin = 2
)

// HandleTouch routes one raw touch sample.
//
// On an up to down edge the registered widgets are hit-tested in
// registration order and the first match is captured for the duration of
// the press; while pressed, no re-hit-testing happens, so drags that
// leave the widget keep driving it. Samples while pressed are forwarded
// to a captured slider (custom handler or default drag behavior). On
// release, a captured button fires its handler exactly once, then the
// capture is cleared.
func (ctx *Context) HandleTouch(x, y int, pressed bool) {
	if ctx == nil {
		return
	}

	if !pressed {
		if w := ctx.active; w != nil && w.Kind == Button && w.OnTouch != nil {
			w.OnTouch.OnTouch(ctx, w, x, y, w.UserData)
		}
		ctx.touchActive = false
		ctx.active = nil
		return
	}

	if !ctx.touchActive {
		ctx.touchActive = true
		ctx.active = nil
		for _, w := range ctx.widgets {
			if w.hit(x, y) {
				ctx.active = w
				break
			}
		}
		if ctx.log != nil && ctx.active != nil {
			ctx.log.WithFields(logrus.Fields{
				"kind": ctx.active.Kind.String(),
				"x":    x,
				"y":    y,
			}).Debug("widget captured")
		}
	}

	if w := ctx.active; w != nil && w.Kind == Slider {
		if w.OnTouch != nil {
			w.OnTouch.OnTouch(ctx, w, x, y, w.UserData)
		} else {
			defaultSliderTouch(ctx, w, x, y, w.UserData)
		}
	}
}

// HandleEvent routes a classified touch event, composing the touch
// package's classifier with the raw-sample router. None and Hold events
// are ignored.
func (ctx *Context) HandleEvent(e touch.Event) {
	switch e.Kind {
	case touch.Press, touch.Move:
		ctx.HandleTouch(e.X, e.Y, true)
	case touch.Release:
		ctx.HandleTouch(e.X, e.Y, false)
	}
}

// margin is the hit-test padding for the widget's kind.
func (w *Widget) margin() int {
	switch w.Kind {
	case Button:
		return buttonMargin
	case Slider:
		return w.Height / 5
	default:
		return defaultMargin
	}
}

// hit reports whether (x, y) falls inside the widget's margin-expanded
// rectangle. The box is half-open and its lower bounds never underflow
// past zero.
func (w *Widget) hit(x, y int) bool {
	m := w.margin()
	x0 := w.X - m
	if x0 < 0 {
		x0 = 0
	}
	y0 := w.Y - m
	if y0 < 0 {
		y0 = 0
	}
	x1 := w.X + w.Width + m
	y1 := w.Y + w.Height + m
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

// defaultSliderTouch is the drag behavior used when a slider has no
// custom touch handler. The usable drag range keeps the knob centre on
// screen; x is clamped into it and mapped linearly onto [0, 100]. When
// userData carries a linked widget, its progress is set to the value's
// complement and it is redrawn. The slider itself is redrawn last so the
// knob reflects the newest value.
func defaultSliderTouch(ctx *Context, w *Widget, x, _ int, userData any) {
	if ctx == nil || w == nil {
		return
	}

	knobHalf := w.Height / 2
	minX := w.X + knobHalf
	maxX := w.X + w.Width - knobHalf
	rangeX := maxX - minX

	// A slider no wider than its knob has no travel; pin the value to
	// zero rather than divide by zero.
	value := 0
	if rangeX > 0 {
		value = (scalar.Clamp(x, minX, maxX) - minX) * 100 / rangeX
	}
	w.Value = value

	if w.OnValueChanged != nil {
		w.OnValueChanged.OnValueChanged(ctx, w, value)
	}

	if linked, ok := userData.(*Widget); ok && linked != nil {
		linked.Progress = 100 - value
		ctx.Redraw(linked)
	}

	ctx.Redraw(w)
}
