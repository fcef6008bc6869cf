package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"termhex/internal/buffer"
)

// View is the part of the navigation state a frame depends on.
type View struct {
	Offset int
	Rows   int
	Mode   Mode
}

// Message is a transient note drawn at the right of the status bar.
type Message struct {
	Text  string
	Error bool
}

type Renderer struct {
	styles    *Styles
	colorChar bool
}

func New(styles *Styles, colorChar bool) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Renderer{styles: styles, colorChar: colorChar}
}

func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Frame draws the grid rows followed by the status bar, one string per
// screen row, joined with newlines.
func (r *Renderer) Frame(buf *buffer.Buffer, v View, msg Message) string {
	cells := Grid(buf, v.Offset, v.Rows, v.Mode, r.colorChar)

	var b strings.Builder
	for i, cell := range cells {
		if cell.Col > 0 {
			b.WriteString(strings.Repeat(" ", CellStride-CellWidth))
		}
		if cell.Colored {
			b.WriteString(r.styles.Category(cell.Category).Render(cell.Text))
		} else {
			b.WriteString(cell.Text)
		}
		if (i+1)%Columns == 0 {
			b.WriteString("\n")
		}
	}

	status := Status(v.Offset, Drawn(cells), buf.Size())
	b.WriteString(r.StatusBar(status, msg))
	return b.String()
}

// StatusBar places the range text at column 0, the percentage at
// PercentageColumn and msg, if any, at MessageColumn.
func (r *Renderer) StatusBar(s StatusLine, msg Message) string {
	left := runewidth.Truncate(s.Range(), PercentageColumn, "")
	gap := runewidth.FillRight("", PercentageColumn-runewidth.StringWidth(left))

	var b strings.Builder
	b.WriteString(r.styles.Status.Render(left))
	b.WriteString(gap)

	pct := s.PercentageText()
	b.WriteString(r.styles.Status.Render(pct))

	if msg.Text != "" {
		used := PercentageColumn + runewidth.StringWidth(pct)
		if used < MessageColumn {
			b.WriteString(strings.Repeat(" ", MessageColumn-used))
		} else {
			b.WriteString(" ")
		}
		style := r.styles.Message
		if msg.Error {
			style = r.styles.Error
		}
		b.WriteString(style.Render(msg.Text))
	}
	return b.String()
}
