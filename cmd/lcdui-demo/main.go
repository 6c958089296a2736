// SPDX-License-Identifier: Unlicense OR MIT

// Command lcdui-demo renders the example scene on a software
// framebuffer, drives it with a scripted touch sequence and writes the
// resulting frames as PNG files. With LCDUI_REMOTE_ADDR set it also
// serves a WebSocket mirror so the draw stream can be watched live.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Reemuson/stm32-lcd-ui/argb"
	"github.com/Reemuson/stm32-lcd-ui/driver"
	"github.com/Reemuson/stm32-lcd-ui/driver/memdriver"
	"github.com/Reemuson/stm32-lcd-ui/driver/remote"
	"github.com/Reemuson/stm32-lcd-ui/ui"
)

var log = logrus.New()

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, using defaults")
	}
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
}

func main() {
	outDir := envOr("LCDUI_OUT_DIR", "frames")
	remoteAddr := os.Getenv("LCDUI_REMOTE_ADDR")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.WithError(err).Fatal("create output directory")
	}

	fb := memdriver.New(800, 480)
	var display driver.Display = fb

	var mirror *remote.Mirror
	if remoteAddr != "" {
		mirror = remote.NewMirror(fb, logrus.NewEntry(log).WithField("component", "remote"))
		display = mirror
		mux := http.NewServeMux()
		mux.Handle("/ws", mirror)
		go func() {
			log.WithField("addr", remoteAddr).Info("remote mirror listening")
			if err := http.ListenAndServe(remoteAddr, mux); err != nil {
				log.WithError(err).Fatal("remote mirror failed")
			}
		}()
	}

	ctx := ui.New(display, 8, ui.WithLogger(logrus.NewEntry(log).WithField("component", "ui")))
	ctx.ResetScreen(argb.Black)

	title := &ui.Widget{
		X: 40, Y: 40, Width: 300, Height: 13,
		Kind:       ui.Label,
		Text:       "stm32-lcd-ui demo",
		Foreground: argb.White,
		Background: argb.Black,
	}
	progress := &ui.Widget{
		X: 40, Y: 200, Width: 300, Height: 30,
		Kind:       ui.ProgressBar,
		Progress:   100,
		Foreground: argb.Green,
		Background: argb.Gray,
	}
	slider := &ui.Widget{
		X: 40, Y: 120, Width: 300, Height: 40,
		Kind:       ui.Slider,
		Foreground: argb.Blue,
		Background: argb.Black,
		UserData:   progress, // linked: progress shows the complement
	}
	reset := &ui.Widget{
		X: 40, Y: 280, Width: 160, Height: 60,
		Kind:       ui.Button,
		Text:       "Reset",
		Foreground: argb.White,
		Background: argb.Red,
		TextAlign:  driver.AlignCenter,
		OnTouch: ui.TouchHandlerFunc(func(ctx *ui.Context, w *ui.Widget, x, y int, _ any) {
			slider.Value = 0
			progress.Progress = 100
			ctx.Redraw(slider)
			ctx.Redraw(progress)
			log.Info("scene reset")
		}),
	}

	for _, w := range []*ui.Widget{title, slider, progress, reset} {
		ctx.AddWidget(w)
	}
	ctx.Render()

	frame := 0
	snapshot := func() {
		name := filepath.Join(outDir, fmt.Sprintf("frame_%03d.png", frame))
		frame++
		f, err := os.Create(name)
		if err != nil {
			log.WithError(err).Fatal("create frame file")
		}
		defer f.Close()
		if err := fb.WritePNG(f); err != nil {
			log.WithError(err).Fatal("encode frame")
		}
	}

	script := func() {
		snapshot()
		// Drag the slider from left to right.
		for x := slider.X; x <= slider.X+slider.Width; x += 30 {
			ctx.HandleTouch(x, slider.Y+slider.Height/2, true)
			snapshot()
			if mirror != nil {
				time.Sleep(50 * time.Millisecond)
			}
		}
		ctx.HandleTouch(slider.X+slider.Width, slider.Y+slider.Height/2, false)

		// Tap the reset button.
		ctx.HandleTouch(reset.X+10, reset.Y+10, true)
		ctx.HandleTouch(reset.X+10, reset.Y+10, false)
		snapshot()
	}

	script()
	log.WithFields(logrus.Fields{
		"frames": frame,
		"dir":    outDir,
		"value":  slider.Value,
	}).Info("scripted run complete")

	// Keep replaying for live viewers.
	for mirror != nil {
		time.Sleep(2 * time.Second)
		frame = 0
		script()
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
