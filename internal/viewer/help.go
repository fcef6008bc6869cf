package viewer

import (
	"fmt"
	"strings"

	"termhex/internal/classify"
)

func (m *Model) renderHelp() string {
	st := m.renderer.Styles()

	var b strings.Builder
	b.WriteString(st.HelpTitle.Render("HELP - termhex"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("File: %s (%d bytes)\n", m.buf.Filename(), m.buf.Size()))
	b.WriteString(fmt.Sprintf("Mode: %s\n\n", m.nav.Mode()))
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\nHex cells are colored by byte class: ")
	b.WriteString(st.Category(classify.Printable).Render("printable"))
	b.WriteString(", ")
	b.WriteString(st.Category(classify.Whitespace).Render("whitespace"))
	b.WriteString(", control, ")
	b.WriteString(st.Category(classify.Extended).Render("extended"))
	b.WriteString(".\n\nPress ESC or ? to close this help screen.")

	// the terminal scrolls if a frame is taller than the screen; the footer
	// always keeps the last row
	lines := strings.Split(b.String(), "\n")
	if m.height > 0 && len(lines)+1 > m.height {
		lines = lines[:m.height-1]
	}
	lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	return strings.Join(lines, "\n")
}
