// Package nav keeps the scroll offset, display mode and viewport of a
// viewing session consistent with the commands applied to it.
package nav

import (
	"termhex/internal/buffer"
	"termhex/internal/render"
)

const rowSize = buffer.RowSize

type Command int

const (
	MoveUp Command = iota
	MoveDown
	PageUp
	PageDown
	Home
	End
	ToggleMode
)

var commandNames = [...]string{
	MoveUp:     "up",
	MoveDown:   "down",
	PageUp:     "page-up",
	PageDown:   "page-down",
	Home:       "home",
	End:        "end",
	ToggleMode: "toggle-mode",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// State is the navigation state over one buffer.
// Offset always lies in [0, buf.LastRowOffset()] and is a multiple of 16.
type State struct {
	buf    *buffer.Buffer
	offset int
	mode   render.Mode
	rows   int
}

// New returns the state for buf shown on a terminal of the given height.
func New(buf *buffer.Buffer, height int, mode render.Mode) *State {
	s := &State{buf: buf, mode: mode}
	s.setRows(height)
	return s
}

func (s *State) Offset() int       { return s.offset }
func (s *State) Mode() render.Mode { return s.mode }
func (s *State) Rows() int         { return s.rows }

func (s *State) View() render.View {
	return render.View{Offset: s.offset, Rows: s.rows, Mode: s.mode}
}

// Apply runs c and reports whether the screen must be cleared before the
// next frame.
func (s *State) Apply(c Command) bool {
	switch c {
	case MoveUp:
		s.up()
	case MoveDown:
		s.down()
	case PageUp:
		for i := 0; i < s.rows; i++ {
			s.up()
		}
	case PageDown:
		for i := 0; i < s.rows; i++ {
			s.down()
		}
	case Home:
		s.offset = 0
	case End:
		s.offset = s.buf.LastRowOffset()
	case ToggleMode:
		s.mode = s.mode.Toggle()
		return true
	}
	return false
}

// Resize recomputes the viewport for a terminal of the given height. The
// offset is left alone; rows past the buffer render as padding. The screen
// always needs clearing afterwards.
func (s *State) Resize(height int) bool {
	s.setRows(height)
	return true
}

func (s *State) setRows(height int) {
	rows := height - 1
	if rows < 0 {
		rows = 0
	}
	s.rows = rows
}

func (s *State) up() {
	if s.offset >= rowSize {
		s.offset -= rowSize
	}
}

func (s *State) down() {
	if s.offset+rowSize < s.buf.Size() {
		s.offset += rowSize
	}
}
