// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"testing"
	"time"

	"github.com/Reemuson/stm32-lcd-ui/argb"
	"github.com/Reemuson/stm32-lcd-ui/driver/drivertest"
	"github.com/Reemuson/stm32-lcd-ui/driver/memdriver"
	"github.com/Reemuson/stm32-lcd-ui/io/touch"
)

// Full pipeline: scripted sensor samples, classified into events, routed
// to a slider with a linked progress bar, rendered to a framebuffer.
func TestSensorToFramebufferPipeline(t *testing.T) {
	sensor := &drivertest.Sensor{Samples: []touch.Sample{
		{X: 0, Y: 0, Pressed: false, Time: 0},
		{X: 60, Y: 135, Pressed: true, Time: 10 * time.Millisecond},
		{X: 120, Y: 135, Pressed: true, Time: 20 * time.Millisecond},
		{X: 220, Y: 135, Pressed: true, Time: 30 * time.Millisecond},
		{X: 220, Y: 135, Pressed: false, Time: 40 * time.Millisecond},
	}}
	classifier, err := touch.NewClassifier(sensor)
	if err != nil {
		t.Fatal(err)
	}
	if !sensor.Initialized() {
		t.Fatal("sensor not initialized by classifier")
	}

	fb := memdriver.New(320, 240)
	ctx := New(fb, 4)
	progress := &Widget{X: 20, Y: 180, Width: 200, Height: 20,
		Kind: ProgressBar, Progress: 100, Foreground: argb.Green, Background: argb.Gray}
	slider := &Widget{X: 20, Y: 120, Width: 200, Height: 40,
		Kind: Slider, Foreground: argb.Blue, Background: argb.Black, UserData: progress}
	ctx.AddWidget(slider)
	ctx.AddWidget(progress)
	ctx.Render()

	for i := 0; i < len(sensor.Samples); i++ {
		e, err := classifier.Poll()
		if err != nil {
			t.Fatal(err)
		}
		ctx.HandleEvent(e)
	}

	// knob half-extent 20, usable range [40, 200]: x=220 saturates.
	if slider.Value != 100 {
		t.Errorf("slider value = %d, want 100", slider.Value)
	}
	if progress.Progress != 0 {
		t.Errorf("linked progress = %d, want 0", progress.Progress)
	}
	if ctx.Active() != nil {
		t.Error("capture still held after release")
	}

	// The knob sits clamped at the right edge of the slider.
	knobColour := slider.Foreground.Lighten(40)
	c := fb.Image().RGBAAt(slider.X+slider.Width-1, slider.Y+1)
	want := knobColour.NRGBA()
	if c.R != want.R || c.G != want.G || c.B != want.B {
		t.Errorf("pixel under knob = %v, want %v", c, want)
	}
}
