package render

import (
	"fmt"
	"strconv"
)

const (
	PercentageColumn = 55
	MessageColumn    = 64
)

// StatusLine describes the byte range currently on screen.
type StatusLine struct {
	Start int
	End   int
	Total int
}

// Status builds the status line for a frame starting at offset that drew
// drawn buffer bytes.
func Status(offset, drawn, total int) StatusLine {
	return StatusLine{Start: offset, End: offset + drawn, Total: total}
}

// Range formats "[0xSTART, 0xEND] / 0xTOTAL", zero padded to the number of
// decimal digits of the total.
func (s StatusLine) Range() string {
	w := len(strconv.Itoa(s.Total))
	return fmt.Sprintf("[0x%0*x, 0x%0*x] / 0x%0*x", w, s.Start, w, s.End, w, s.Total)
}

// Percentage is the share of the buffer up to End. An empty buffer is
// fully visible, so it reports 100.
func (s StatusLine) Percentage() float64 {
	if s.Total <= 0 {
		return 100
	}
	return float64(s.End) / float64(s.Total) * 100
}

func (s StatusLine) PercentageText() string {
	return fmt.Sprintf("%6.2f%%", s.Percentage())
}
