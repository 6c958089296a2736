// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"reflect"
	"testing"

	"github.com/Reemuson/stm32-lcd-ui/argb"
	"github.com/Reemuson/stm32-lcd-ui/driver"
	"github.com/Reemuson/stm32-lcd-ui/driver/drivertest"
)

func assertCalls(t *testing.T, got, want []drivertest.Call) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("calls:\n got %v\nwant %v", got, want)
	}
}

func TestDrawButtonAlignment(t *testing.T) {
	// Font24 metrics: 17 px glyphs, so "OK" is 34 px wide.
	const textWidth = 2 * drivertest.DefaultFontWidth
	textY := 10 + (30-drivertest.DefaultFontHeight)/2

	tests := []struct {
		name  string
		align driver.Align
		textX int
	}{
		{"left", driver.AlignLeft, 20},
		{"center", driver.AlignCenter, 20 + (100-textWidth)/2},
		{"right", driver.AlignRight, 20 + 100 - textWidth},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx, d := newTestContext(t, 1)
			button := &Widget{
				X: 20, Y: 10, Width: 100, Height: 30,
				Kind: Button, Text: "OK",
				Foreground: argb.White, Background: argb.Blue,
				TextAlign: tc.align,
			}
			ctx.AddWidget(button)
			ctx.Render()

			assertCalls(t, d.Calls, []drivertest.Call{
				{Op: drivertest.OpRect, X: 20, Y: 10, Width: 100, Height: 30, Colour: argb.Blue},
				// The backend always draws left-aligned: textX already
				// encodes the alignment decision.
				{Op: drivertest.OpText, X: tc.textX, Y: textY, Text: "OK",
					Colour: argb.White, Background: argb.Blue, Align: driver.AlignLeft},
			})
		})
	}
}

func TestDrawButtonWithoutText(t *testing.T) {
	ctx, d := newTestContext(t, 1)
	button := &Widget{X: 0, Y: 0, Width: 40, Height: 20, Kind: Button, Background: argb.Red}
	ctx.AddWidget(button)
	ctx.Render()

	assertCalls(t, d.Calls, []drivertest.Call{
		{Op: drivertest.OpRect, X: 0, Y: 0, Width: 40, Height: 20, Colour: argb.Red},
	})
}

func TestDrawLabelKeepsOwnAlignment(t *testing.T) {
	ctx, d := newTestContext(t, 1)
	label := &Widget{
		X: 5, Y: 7, Width: 100, Height: 24,
		Kind: Label, Text: "temp",
		Foreground: argb.Yellow, Background: argb.Black,
		TextAlign: driver.AlignCenter,
	}
	ctx.AddWidget(label)
	ctx.Render()

	assertCalls(t, d.Calls, []drivertest.Call{
		{Op: drivertest.OpText, X: 5, Y: 7, Text: "temp",
			Colour: argb.Yellow, Background: argb.Black, Align: driver.AlignCenter},
	})
}

func TestDrawEmptyLabelDrawsNothing(t *testing.T) {
	ctx, d := newTestContext(t, 1)
	ctx.AddWidget(&Widget{X: 5, Y: 7, Width: 100, Height: 24, Kind: Label})
	ctx.Render()
	if len(d.Calls) != 0 {
		t.Errorf("empty label drew %v", d.Calls)
	}
}

func TestDrawProgressBarTruncatesFill(t *testing.T) {
	tests := []struct {
		progress, width, fill int
	}{
		{57, 100, 57},
		{33, 10, 3},  // 3.3 truncates down
		{99, 10, 9},  // never rounds up
		{100, 10, 10},
		{0, 100, 0},
	}
	for _, tc := range tests {
		ctx, d := newTestContext(t, 1)
		bar := &Widget{
			X: 10, Y: 40, Width: tc.width, Height: 20,
			Kind: ProgressBar, Progress: tc.progress,
			Foreground: argb.Green, Background: argb.Gray,
		}
		ctx.AddWidget(bar)
		ctx.Render()

		assertCalls(t, d.Calls, []drivertest.Call{
			{Op: drivertest.OpRect, X: 10, Y: 40, Width: tc.width, Height: 20, Colour: argb.Gray},
			{Op: drivertest.OpRect, X: 10, Y: 40, Width: tc.fill, Height: 20, Colour: argb.Green},
		})
	}
}

func TestDrawSlider(t *testing.T) {
	ctx, d := newTestContext(t, 1)
	slider := &Widget{
		X: 10, Y: 10, Width: 100, Height: 21,
		Kind: Slider, Value: 50,
		Foreground: argb.Blue, Background: argb.Black,
	}
	ctx.AddWidget(slider)
	ctx.Render()

	// track: height 7, vertically centered; knob: 21 px square at
	// x + 50*(100-21)/100 = x + 39.
	assertCalls(t, d.Calls, []drivertest.Call{
		{Op: drivertest.OpRect, X: 10, Y: 10, Width: 100, Height: 21, Colour: argb.Black},
		{Op: drivertest.OpRect, X: 10, Y: 17, Width: 100, Height: 7, Colour: argb.Blue},
		{Op: drivertest.OpRect, X: 49, Y: 10, Width: 21, Height: 21, Colour: argb.Blue.Lighten(40)},
	})
}

func TestDrawSliderKnobClampedAtFullValue(t *testing.T) {
	ctx, d := newTestContext(t, 1)
	slider := &Widget{
		X: 10, Y: 10, Width: 100, Height: 20,
		Kind: Slider, Value: 100,
		Foreground: argb.Blue, Background: argb.Black,
	}
	ctx.AddWidget(slider)
	ctx.Render()

	knob := d.Calls[len(d.Calls)-1]
	if knob.X+knob.Width > slider.X+slider.Width {
		t.Errorf("knob at %d+%d exceeds widget right edge %d",
			knob.X, knob.Width, slider.X+slider.Width)
	}
}

func TestRenderFollowsRegistrationOrder(t *testing.T) {
	ctx, d := newTestContext(t, 3)
	for i := 0; i < 3; i++ {
		ctx.AddWidget(&Widget{
			X: i * 10, Y: 0, Width: 10, Height: 10,
			Kind: ProgressBar, Background: argb.Gray, Foreground: argb.Green,
		})
	}
	ctx.Render()

	var xs []int
	for _, c := range d.Calls {
		xs = append(xs, c.X)
	}
	want := []int{0, 0, 10, 10, 20, 20}
	if !reflect.DeepEqual(xs, want) {
		t.Errorf("draw order xs = %v, want %v", xs, want)
	}
}

// Redrawing a single widget must reproduce exactly its portion of a full
// render, so selective repaints cannot drift from the full pass.
func TestRedrawMatchesRenderPortion(t *testing.T) {
	build := func() []*Widget {
		progress := &Widget{X: 10, Y: 40, Width: 100, Height: 20,
			Kind: ProgressBar, Progress: 43, Foreground: argb.Green, Background: argb.Gray}
		return []*Widget{
			{X: 10, Y: 10, Width: 100, Height: 20, Kind: Slider, Value: 57,
				Foreground: argb.Blue, Background: argb.Black, UserData: progress},
			progress,
			{X: 10, Y: 70, Width: 80, Height: 30, Kind: Button, Text: "go",
				Foreground: argb.White, Background: argb.Red, TextAlign: driver.AlignCenter},
		}
	}

	ctx, d := newTestContext(t, 4)
	widgets := build()
	for _, w := range widgets {
		ctx.AddWidget(w)
	}
	ctx.Render()
	full := append([]drivertest.Call(nil), d.Calls...)

	for _, w := range widgets {
		d.Reset()
		ctx.Redraw(w)
		found := false
		for start := 0; start+len(d.Calls) <= len(full); start++ {
			if reflect.DeepEqual(full[start:start+len(d.Calls)], d.Calls) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("redraw of %s widget not a slice of the full render", w.Kind)
		}
	}
}

func TestRedrawNilWidget(t *testing.T) {
	ctx, d := newTestContext(t, 1)
	ctx.Redraw(nil)
	if len(d.Calls) != 0 {
		t.Errorf("nil widget drew %v", d.Calls)
	}
}

func TestRenderOnNilContext(t *testing.T) {
	var ctx *Context
	ctx.Render()
	ctx.Redraw(&Widget{Kind: Button})
}
