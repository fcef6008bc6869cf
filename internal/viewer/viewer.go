// Package viewer is the interactive hex browser: it draws the buffer at the
// current navigation state, waits for the next key or resize, and applies it.
package viewer

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termhex/internal/buffer"
	"termhex/internal/extract"
	"termhex/internal/nav"
	"termhex/internal/render"
)

type View int

const (
	ViewMain View = iota
	ViewHelp
)

type Options struct {
	// Terminal size at startup. A later tea.WindowSizeMsg replaces it.
	Width  int
	Height int

	Mode          render.Mode
	ColorCharMode bool
	ExportSuffix  string
	Styles        *render.Styles
}

type Model struct {
	buf      *buffer.Buffer
	nav      *nav.State
	renderer *render.Renderer
	keys     KeyMap
	help     help.Model
	view     View
	width    int
	height   int

	exportSuffix string

	// Shown in the status bar until the next key press.
	statusMsg render.Message
}

func NewModel(buf *buffer.Buffer, opts Options) *Model {
	h := help.New()
	h.Width = opts.Width

	return &Model{
		buf:          buf,
		nav:          nav.New(buf, opts.Height, opts.Mode),
		renderer:     render.New(opts.Styles, opts.ColorCharMode),
		keys:         DefaultKeyMap(),
		help:         h,
		view:         ViewMain,
		width:        opts.Width,
		height:       opts.Height,
		exportSuffix: opts.ExportSuffix,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.nav.Resize(msg.Height)
		log.Printf("resize: %dx%d, %d rows", msg.Width, msg.Height, m.nav.Rows())
		return m, tea.ClearScreen

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = render.Message{}

	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	switch m.view {
	case ViewHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleMainKey(msg)
	}
}

func (m *Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.nav.Apply(nav.MoveUp)
	case key.Matches(msg, m.keys.Down):
		m.nav.Apply(nav.MoveDown)
	case key.Matches(msg, m.keys.PageUp):
		m.nav.Apply(nav.PageUp)
	case key.Matches(msg, m.keys.PageDown):
		m.nav.Apply(nav.PageDown)
	case key.Matches(msg, m.keys.Home):
		m.nav.Apply(nav.Home)
	case key.Matches(msg, m.keys.End):
		m.nav.Apply(nav.End)
	case key.Matches(msg, m.keys.ToggleMode):
		if m.nav.Apply(nav.ToggleMode) {
			log.Printf("mode: %v", m.nav.Mode())
			return m, tea.ClearScreen
		}
	case key.Matches(msg, m.keys.Export):
		m.export()
	case key.Matches(msg, m.keys.Help):
		m.view = ViewHelp
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help, m.keys.Back) {
		m.view = ViewMain
		return m, tea.ClearScreen
	}
	return m, nil
}

// export writes the buffer's strings next to the input file. A failed write
// is reported in the status bar and the session carries on.
func (m *Model) export() {
	path, n, err := extract.Export(m.buf.Filename(), m.buf.Data(), m.exportSuffix)
	if err != nil {
		log.Printf("export failed: %v", err)
		m.statusMsg = render.Message{Text: fmt.Sprintf("Export failed: %v", err), Error: true}
		return
	}
	log.Printf("exported %d strings to %s", n, path)
	m.statusMsg = render.Message{Text: fmt.Sprintf("Exported %d strings to %s", n, path)}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	log.Printf("quit at offset 0x%x", m.nav.Offset())
	return m, tea.Quit
}

// Offset, Mode and Rows expose the navigation state.
func (m *Model) Offset() int           { return m.nav.Offset() }
func (m *Model) Mode() render.Mode     { return m.nav.Mode() }
func (m *Model) Rows() int             { return m.nav.Rows() }
func (m *Model) StatusMessage() string { return m.statusMsg.Text }
func (m *Model) CurrentView() View     { return m.view }

func (m *Model) View() string {
	switch m.view {
	case ViewHelp:
		return m.renderHelp()
	default:
		return m.renderer.Frame(m.buf, m.nav.View(), m.statusMsg)
	}
}
