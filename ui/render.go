// SPDX-License-Identifier: Unlicense OR MIT

package ui

import "github.com/Reemuson/stm32-lcd-ui/driver"

// knobLighten is how much the slider knob is brightened relative to the
// track colour.
const knobLighten = 40

// Render draws every registered widget in registration order.
func (ctx *Context) Render() {
	if ctx == nil || ctx.display == nil {
		return
	}
	for _, w := range ctx.widgets {
		ctx.drawWidget(w)
	}
}

// Redraw draws exactly one widget, typically after interaction, to avoid
// a full-screen repaint. The widget does not need to be registered.
func (ctx *Context) Redraw(w *Widget) {
	if ctx == nil || ctx.display == nil {
		return
	}
	ctx.drawWidget(w)
}

func (ctx *Context) drawWidget(w *Widget) {
	if w == nil {
		return
	}
	switch w.Kind {
	case Button:
		ctx.drawButton(w)
	case Label:
		ctx.drawLabel(w)
	case ProgressBar:
		ctx.drawProgressBar(w)
	case Slider:
		ctx.drawSlider(w)
	}
}

func (ctx *Context) drawButton(w *Widget) {
	d := ctx.display
	d.DrawRect(w.X, w.Y, w.Width, w.Height, w.Background)

	if w.Text == "" {
		return
	}
	textWidth := len(w.Text) * d.FontWidth()

	var textX int
	switch w.TextAlign {
	case driver.AlignCenter:
		textX = w.X + (w.Width-textWidth)/2
	case driver.AlignRight:
		textX = w.X + w.Width - textWidth
	default:
		textX = w.X
	}
	textY := w.Y + (w.Height-d.FontHeight())/2

	// textX already encodes the alignment; drawing left-aligned keeps
	// the backend from aligning a second time.
	d.DrawText(textX, textY, w.Text, w.Foreground, w.Background, driver.AlignLeft)
}

func (ctx *Context) drawLabel(w *Widget) {
	if w.Text == "" {
		return
	}
	ctx.display.DrawText(w.X, w.Y, w.Text, w.Foreground, w.Background, w.TextAlign)
}

func (ctx *Context) drawProgressBar(w *Widget) {
	d := ctx.display
	d.DrawRect(w.X, w.Y, w.Width, w.Height, w.Background)

	// Truncating division: a 1 px sliver only appears once it is earned.
	fillWidth := w.Progress * w.Width / 100
	d.DrawRect(w.X, w.Y, fillWidth, w.Height, w.Foreground)
}

func (ctx *Context) drawSlider(w *Widget) {
	d := ctx.display

	knobSize := w.Height // square knob
	trackHeight := w.Height / 3
	trackY := w.Y + (w.Height-trackHeight)/2

	d.DrawRect(w.X, w.Y, w.Width, w.Height, w.Background)
	d.DrawRect(w.X, trackY, w.Width, trackHeight, w.Foreground)

	usableWidth := w.Width - knobSize
	knobX := w.X + w.Value*usableWidth/100
	if knobX+knobSize > w.X+w.Width {
		knobX = w.X + w.Width - knobSize
	}

	// Knob last so it overlays the track.
	d.DrawRect(knobX, w.Y, knobSize, knobSize, w.Foreground.Lighten(knobLighten))
}
