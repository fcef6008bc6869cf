// Package classify sorts bytes into the categories used to color the hex
// grid.
package classify

import "github.com/charmbracelet/lipgloss"

type Category int

const (
	Printable Category = iota
	Whitespace
	Control
	Extended
	Other
)

var categoryNames = [...]string{
	Printable:  "printable",
	Whitespace: "whitespace",
	Control:    "control",
	Extended:   "extended",
	Other:      "other",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Fixed palette. Control bytes keep the terminal's default foreground.
var categoryColors = [...]lipgloss.TerminalColor{
	Printable:  lipgloss.Color("6"),
	Whitespace: lipgloss.Color("1"),
	Control:    lipgloss.NoColor{},
	Extended:   lipgloss.Color("3"),
	Other:      lipgloss.Color("2"),
}

func (c Category) Color() lipgloss.TerminalColor {
	if c < 0 || int(c) >= len(categoryColors) {
		return lipgloss.NoColor{}
	}
	return categoryColors[c]
}

// Classify returns the category of b. The first matching rule wins.
func Classify(b byte) Category {
	switch {
	case IsGraphic(b):
		return Printable
	case IsSpace(b):
		return Whitespace
	case IsControl(b):
		return Control
	case b >= 0x80:
		return Extended
	default:
		return Other
	}
}

// IsGraphic reports whether b is a visible, non-space ASCII character.
func IsGraphic(b byte) bool {
	return b >= 0x21 && b <= 0x7e
}

// IsSpace reports whether b is ASCII whitespace: space, tab, LF, FF or CR.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func IsControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}
