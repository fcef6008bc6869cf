package viewer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"termhex/internal/buffer"
	"termhex/internal/extract"
	"termhex/internal/render"
)

func plainStyles() *render.Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return render.NewStyles(r)
}

func newTestModel(t *testing.T, data []byte, height int) *Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	buf, err := buffer.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(buf, Options{
		Width:        80,
		Height:       height,
		ExportSuffix: extract.DefaultSuffix,
		Styles:       plainStyles(),
	})
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_Navigation(t *testing.T) {
	m := newTestModel(t, make([]byte, 10000), 21)

	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Offset() != 32 {
		t.Fatalf("expected offset 32, got %d", m.Offset())
	}

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Offset() != 16 {
		t.Fatalf("expected offset 16, got %d", m.Offset())
	}

	press(m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyPgDown})
	if m.Offset() != 320 {
		t.Fatalf("expected offset 320 after page down, got %d", m.Offset())
	}

	press(m, tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Offset() != 0 {
		t.Fatalf("expected offset 0 after page up, got %d", m.Offset())
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.Offset() != 10000 {
		t.Fatalf("expected offset 10000 after end, got %d", m.Offset())
	}
}

func TestUpdate_ToggleModeClearsScreen(t *testing.T) {
	m := newTestModel(t, []byte("hello"), 5)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != render.ModeChar {
		t.Fatalf("expected char mode, got %v", m.Mode())
	}
	if cmd == nil {
		t.Fatal("expected a clear screen command")
	}
	if !strings.HasPrefix(m.View(), " h   e   l   l   o") {
		t.Fatalf("unexpected char view %q", m.View())
	}

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Mode() != render.ModeHex {
		t.Fatalf("expected hex mode, got %v", m.Mode())
	}
}

func TestUpdate_ResizeRecomputesRows(t *testing.T) {
	m := newTestModel(t, make([]byte, 1000), 10)
	press(m, tea.KeyMsg{Type: tea.KeyPgDown})
	offset := m.Offset()

	cmd := press(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.Rows() != 29 {
		t.Fatalf("expected 29 rows, got %d", m.Rows())
	}
	if m.Offset() != offset {
		t.Fatalf("resize moved offset from %d to %d", offset, m.Offset())
	}
	if cmd == nil {
		t.Fatal("expected a clear screen command")
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Fatalf("expected 30 lines, got %d", len(lines))
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), runes("Q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, []byte("x"), 5)
		cmd := press(m, msg)
		if cmd == nil {
			t.Fatalf("%v: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%v: expected tea.QuitMsg", msg)
		}
	}
}

func TestUpdate_ExportWritesSidecar(t *testing.T) {
	for _, k := range []string{"e", "E"} {
		m := newTestModel(t, []byte("ab\x00cd\x01\x01ef"), 5)
		press(m, runes(k))

		path := m.buf.Filename() + "_export.txt"
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if string(got) != "ab\ncd\nef" {
			t.Fatalf("%s: unexpected export %q", k, got)
		}
		if !strings.Contains(m.StatusMessage(), "Exported 3 strings") {
			t.Fatalf("%s: unexpected status %q", k, m.StatusMessage())
		}
		if !strings.Contains(m.View(), "Exported 3 strings") {
			t.Fatalf("%s: status message missing from view", k)
		}

		press(m, tea.KeyMsg{Type: tea.KeyDown})
		if m.StatusMessage() != "" {
			t.Fatalf("%s: status message should clear on next key", k)
		}
	}
}

func TestUpdate_ExportFailureKeepsRunning(t *testing.T) {
	buf := buffer.FromBytes(filepath.Join(t.TempDir(), "gone", "input.bin"), []byte("abc"))
	m := NewModel(buf, Options{Height: 5, Styles: plainStyles()})

	cmd := press(m, runes("e"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("export failure must not quit")
		}
	}
	if !strings.HasPrefix(m.StatusMessage(), "Export failed") {
		t.Fatalf("unexpected status %q", m.StatusMessage())
	}
}

func TestUpdate_HelpView(t *testing.T) {
	m := newTestModel(t, []byte("abc"), 20)

	press(m, runes("?"))
	if m.CurrentView() != ViewHelp {
		t.Fatal("expected help view")
	}
	if !strings.Contains(m.View(), "export strings") {
		t.Fatalf("help should list bindings, got %q", m.View())
	}

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.CurrentView() != ViewHelp || m.Offset() != 0 {
		t.Fatal("navigation keys must not leave the help view")
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.CurrentView() != ViewMain {
		t.Fatal("expected main view after esc")
	}
}

func TestHelpView_FooterSurvivesShortTerminal(t *testing.T) {
	for _, height := range []int{1, 3, 20} {
		m := newTestModel(t, []byte("abc"), height)
		press(m, runes("?"))

		lines := strings.Split(m.View(), "\n")
		if len(lines) > height {
			t.Fatalf("height %d: help has %d lines", height, len(lines))
		}
		footer := lines[len(lines)-1]
		if !strings.Contains(footer, "back") || !strings.Contains(footer, "quit") {
			t.Errorf("height %d: expected key footer, got %q", height, footer)
		}
	}
}

func TestView_StatusLine(t *testing.T) {
	m := newTestModel(t, make([]byte, 32), 2)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected grid row plus status, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "[0x00, 0x10] / 0x20") {
		t.Fatalf("unexpected status %q", lines[1])
	}
	if !strings.Contains(lines[1], " 50.00%") {
		t.Fatalf("expected 50%% in status %q", lines[1])
	}
}

func TestProgram_QuitsOnQ(t *testing.T) {
	m := newTestModel(t, []byte("abc"), 5)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	)
	if _, err := p.Run(); err != nil {
		t.Fatalf("program did not quit cleanly: %v", err)
	}
}
