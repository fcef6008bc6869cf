// Package render lays the byte buffer out on a fixed 16-column grid and
// composes the frame shown by the viewer, status bar included.
package render

import (
	"fmt"

	"termhex/internal/buffer"
	"termhex/internal/classify"
)

type Mode int

const (
	ModeHex Mode = iota
	ModeChar
)

func (m Mode) String() string {
	if m == ModeChar {
		return "char"
	}
	return "hex"
}

func (m Mode) Toggle() Mode {
	if m == ModeHex {
		return ModeChar
	}
	return ModeHex
}

const (
	Columns    = buffer.RowSize
	CellWidth  = 2
	CellStride = 2 * CellWidth

	blankCell = "  "
)

// Cell is one draw command: the glyph for a grid position at its screen
// coordinates. Index is -1 for padding past the end of the buffer.
type Cell struct {
	Col      int
	Row      int
	Index    int
	Text     string
	Category classify.Category
	Colored  bool
}

// Grid computes the cells of a rows×16 grid whose top-left cell shows the
// byte of buf at offset. Hex cells carry their category color; char cells
// only do when colorChar is set.
func Grid(buf *buffer.Buffer, offset, rows int, mode Mode, colorChar bool) []Cell {
	if rows < 0 {
		rows = 0
	}
	cells := make([]Cell, 0, rows*Columns)
	for row := 0; row < rows; row++ {
		for col := 0; col < Columns; col++ {
			i := offset + row*Columns + col
			cell := Cell{Col: col * CellStride, Row: row, Index: -1, Text: blankCell}
			if b, ok := buf.GetByte(i); ok {
				cell.Index = i
				cell.Category = classify.Classify(b)
				switch mode {
				case ModeChar:
					cell.Text = charGlyph(b)
					cell.Colored = colorChar
				default:
					cell.Text = fmt.Sprintf("%02x", b)
					cell.Colored = true
				}
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

// Drawn counts the cells that show a buffer byte.
func Drawn(cells []Cell) int {
	n := 0
	for _, c := range cells {
		if c.Index >= 0 {
			n++
		}
	}
	return n
}

func charGlyph(b byte) string {
	if classify.IsGraphic(b) {
		return " " + string(rune(b))
	}
	return blankCell
}
