// SPDX-License-Identifier: Unlicense OR MIT

/*
Package touch turns raw single-touch samples into discrete events.

The Classifier is a pure state machine: each processed sample produces at
most one Event describing the edge it observed (press, release, move). It
is optional plumbing for applications that want discrete events; the ui
package's router consumes raw samples directly and the two can be composed
through ui.Context.HandleEvent.
*/
package touch

import (
	"errors"
	"time"
)

// Kind of a touch Event.
type Kind uint8

const (
	// None is reported when the sample changed nothing.
	None Kind = iota
	// Press is reported on an up to down edge.
	Press
	// Release is reported on a down to up edge.
	Release
	// Move is reported while pressed when the position changes.
	Move
	// Hold is reported once per press when the finger rests longer
	// than the configured hold duration.
	Hold
	// DoubleTap is reserved for future gesture support.
	DoubleTap
)

// Event is a classified touch event.
type Event struct {
	Kind Kind
	// X, Y is the sample position in screen pixels.
	X, Y int
	// Time is the sample timestamp, relative to an undefined base.
	Time time.Duration
}

// Sample is one raw reading from a touch sensor.
type Sample struct {
	X, Y    int
	Pressed bool
	Time    time.Duration
}

// Sensor is the capability set a touch input driver must provide.
type Sensor interface {
	// Initialize prepares the touch hardware.
	Initialize() error
	// ReadState reports the current raw touch state.
	ReadState() (Sample, error)
	// EnableInterrupt switches hardware touch interrupts on or off.
	// Polling-only drivers may treat this as a no-op.
	EnableInterrupt(enable bool)
}

// ErrNoSensor is reported by Poll when no Sensor was supplied.
var ErrNoSensor = errors.New("touch: no sensor configured")

// Classifier tracks single-touch state across samples.
//
// The zero value is ready to use without a sensor. Mutating methods are
// not safe for concurrent use.
type Classifier struct {
	sensor Sensor

	pressed      bool
	lastX, lastY int
	pressTime    time.Duration

	hold     time.Duration
	holdSent bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithHold enables Hold events after a finger rests for d.
func WithHold(d time.Duration) Option {
	return func(c *Classifier) {
		c.hold = d
	}
}

// NewClassifier returns a Classifier fed by sensor, initializing the
// hardware. A nil sensor is allowed; Process remains usable and Poll
// reports ErrNoSensor.
func NewClassifier(sensor Sensor, opts ...Option) (*Classifier, error) {
	c := &Classifier{sensor: sensor}
	for _, opt := range opts {
		opt(c)
	}
	if sensor != nil {
		if err := sensor.Initialize(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Process classifies one raw sample. It returns at most one event; the
// event position always echoes the sample. The classifier state is
// updated on every call so the next sample is compared against the most
// recent one, not against the last reported event.
//
// Callers are expected to supply non-decreasing timestamps; only the
// hold detection depends on them.
func (c *Classifier) Process(x, y int, pressed bool, t time.Duration) Event {
	e := Event{Kind: None, X: x, Y: y, Time: t}
	if c == nil {
		return e
	}

	wasPressed := c.pressed
	switch {
	case !wasPressed && pressed:
		e.Kind = Press
		c.pressTime = t
		c.holdSent = false
	case wasPressed && !pressed:
		e.Kind = Release
	case pressed:
		if x != c.lastX || y != c.lastY {
			e.Kind = Move
		} else if c.hold > 0 && !c.holdSent && t-c.pressTime >= c.hold {
			e.Kind = Hold
			c.holdSent = true
		}
	}

	c.pressed = pressed
	if pressed {
		c.lastX, c.lastY = x, y
	}
	return e
}

// Poll reads one sample from the sensor and classifies it.
func (c *Classifier) Poll() (Event, error) {
	if c == nil || c.sensor == nil {
		return Event{}, ErrNoSensor
	}
	s, err := c.sensor.ReadState()
	if err != nil {
		return Event{}, err
	}
	return c.Process(s.X, s.Y, s.Pressed, s.Time), nil
}

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Hold:
		return "Hold"
	case DoubleTap:
		return "DoubleTap"
	default:
		panic("unknown Kind")
	}
}
