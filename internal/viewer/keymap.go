package viewer

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer key bindings. Letter commands accept both cases.
type KeyMap struct {
	Up, Down         key.Binding
	PageUp, PageDown key.Binding
	Home, End        key.Binding

	ToggleMode key.Binding
	Export     key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up one row")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down one row")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start of file")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last full row")),

		ToggleMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "hex/char")),
		Export:     key.NewBinding(key.WithKeys("e", "E"), key.WithHelp("e", "export strings")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		// raw mode swallows SIGINT, so ctrl+c has to quit explicitly
		Quit: key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the footer of the help screen.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.ToggleMode, k.Export, k.Help, k.Quit},
	}
}
