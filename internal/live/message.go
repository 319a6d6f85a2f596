package live

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yashasviudayan/portfolio/internal/scroll"
	"github.com/yashasviudayan/portfolio/internal/section"
	"github.com/yashasviudayan/portfolio/internal/viewport"
)

// NarrowWidth is the viewport width below which the header uses the mobile
// layout.
const NarrowWidth = 768

var (
	// ErrUnknownMessage is sent back for message types the session does not know.
	ErrUnknownMessage = errors.New("live: unknown message type")
	// ErrMalformed is sent back for frames that are not valid JSON.
	ErrMalformed = errors.New("live: invalid message format")
)

// Message types sent by the page.
const (
	TypeScroll    = "scroll"
	TypeLayout    = "layout"
	TypeIntersect = "intersect"
	TypeMenu      = "menu"
	TypeSelect    = "select"
	TypeTheme     = "theme"
	TypeResize    = "resize"

	typeMalformed = "\x00malformed"
)

// ClientMessage is one event forwarded by the page script.
type ClientMessage struct {
	Type string `json:"type"`

	// scroll
	Offset   float64 `json:"offset,omitempty"`
	Document float64 `json:"document,omitempty"`
	Viewport float64 `json:"viewport,omitempty"`

	// layout
	Sections map[string]viewport.Box `json:"sections,omitempty"`

	// intersect, select
	ID           string `json:"id,omitempty"`
	Intersecting bool   `json:"intersecting,omitempty"`

	// resize
	Width float64 `json:"width,omitempty"`
}

// DecodeMessage parses one websocket frame.
func DecodeMessage(raw []byte) (ClientMessage, error) {
	var m ClientMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return ClientMessage{}, fmt.Errorf("decode message: %w", err)
	}
	return m, nil
}

func (m ClientMessage) signal() scroll.Signal {
	return scroll.Signal{Offset: m.Offset, DocumentHeight: m.Document, ViewportHeight: m.Viewport}
}

// layout keeps only known section ids.
func (m ClientMessage) layout() viewport.Layout {
	out := make(viewport.Layout, len(m.Sections))
	for k, box := range m.Sections {
		if id, ok := section.Parse(k); ok {
			out[id] = box
		}
	}
	return out
}

// Frame is what the server pushes after each handled event.
type Frame struct {
	Type     string `json:"type"`
	Session  string `json:"session,omitempty"`
	Nav      string `json:"nav,omitempty"`
	Progress string `json:"progress"`
	Theme    string `json:"theme,omitempty"`
	Navigate string `json:"navigate,omitempty"`
	Error    string `json:"error,omitempty"`
}

const (
	FrameState = "state"
	FrameError = "error"
)
