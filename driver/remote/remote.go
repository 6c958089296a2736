// SPDX-License-Identifier: Unlicense OR MIT

/*
Package remote mirrors display draw calls to WebSocket clients.

A Mirror wraps another driver.Display, forwards every call to it and
broadcasts the call as a JSON operation to all connected viewers. It is
a debugging collaborator for inspecting an embedded UI from a
workstation, not part of the core rendering path.
*/
package remote

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Reemuson/stm32-lcd-ui/argb"
	"github.com/Reemuson/stm32-lcd-ui/driver"
)

// Op is one display call serialized for a viewer.
type Op struct {
	Op     string `json:"op"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Text   string `json:"text,omitempty"`
	Align  string `json:"align,omitempty"`
	Colour uint32 `json:"colour,omitempty"`
	BG     uint32 `json:"bg,omitempty"`
	Level  uint8  `json:"level,omitempty"`
}

// Mirror is a Display decorator that streams draw operations.
type Mirror struct {
	next driver.Display
	log  *logrus.Entry

	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewMirror wraps next. Draw calls forward to next unchanged; connected
// WebSocket viewers receive them as JSON. A nil log disables logging.
func NewMirror(next driver.Display, log *logrus.Entry) *Mirror {
	if log == nil {
		log = logrus.NewEntry(logrus.New())
		log.Logger.SetLevel(logrus.PanicLevel)
	}
	return &Mirror{
		next: next,
		log:  log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the request to a WebSocket and registers the viewer.
// The first message a viewer receives describes the screen metrics.
func (m *Mirror) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	width, height := m.next.ScreenSize()
	hello := struct {
		Op         string `json:"op"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		FontWidth  int    `json:"font_width"`
		FontHeight int    `json:"font_height"`
	}{"hello", width, height, m.next.FontWidth(), m.next.FontHeight()}
	if err := conn.WriteJSON(hello); err != nil {
		conn.Close()
		return
	}

	m.mu.Lock()
	m.conns[conn] = struct{}{}
	m.mu.Unlock()
	m.log.WithField("viewers", m.Viewers()).Info("viewer connected")

	// Viewers only listen; the read loop just detects the close.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		m.mu.Lock()
		delete(m.conns, conn)
		m.mu.Unlock()
		conn.Close()
		m.log.Info("viewer disconnected")
	}()
}

// Viewers reports the number of connected viewers.
func (m *Mirror) Viewers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns)
}

func (m *Mirror) broadcast(o Op) {
	data, err := json.Marshal(o)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for conn := range m.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(m.conns, conn)
			conn.Close()
		}
	}
}

func (m *Mirror) Init() {
	m.next.Init()
	m.broadcast(Op{Op: "init"})
}

func (m *Mirror) SetBacklight(level uint8) {
	m.next.SetBacklight(level)
	m.broadcast(Op{Op: "backlight", Level: level})
}

func (m *Mirror) DrawPixel(x, y int, colour argb.Colour) {
	m.next.DrawPixel(x, y, colour)
	m.broadcast(Op{Op: "pixel", X: x, Y: y, Colour: uint32(colour)})
}

func (m *Mirror) DrawRect(x, y, width, height int, colour argb.Colour) {
	m.next.DrawRect(x, y, width, height, colour)
	m.broadcast(Op{Op: "rect", X: x, Y: y, Width: width, Height: height, Colour: uint32(colour)})
}

func (m *Mirror) DrawText(x, y int, text string, fg, bg argb.Colour, align driver.Align) {
	m.next.DrawText(x, y, text, fg, bg, align)
	m.broadcast(Op{Op: "text", X: x, Y: y, Text: text, Align: align.String(), Colour: uint32(fg), BG: uint32(bg)})
}

func (m *Mirror) Clear(colour argb.Colour) {
	m.next.Clear(colour)
	m.broadcast(Op{Op: "clear", Colour: uint32(colour)})
}

func (m *Mirror) ScreenSize() (int, int) { return m.next.ScreenSize() }

func (m *Mirror) FontWidth() int { return m.next.FontWidth() }

func (m *Mirror) FontHeight() int { return m.next.FontHeight() }
