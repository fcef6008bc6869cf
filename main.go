package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"termhex/internal/buffer"
	"termhex/internal/config"
	"termhex/internal/render"
	"termhex/internal/viewer"
)

const usage = "No arguments provided. Usage: termhex [file]"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var charMode bool

	cmd := &cobra.Command{
		Use:   "termhex [file]",
		Short: "Browse a binary file as a hex or character grid",
		Long: `termhex shows a file 16 bytes per row, as hex values or as printable
characters. Keys: arrows, PgUp/PgDn, Home/End to move, Tab to switch
hex/char, E to export printable strings to <file>_export.txt, Q to quit.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if charMode {
				cfg.View.StartMode = "char"
			}
			return run(args[0], cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/termhex/termhex.toml)")
	cmd.Flags().BoolVar(&charMode, "char", false, "start in character mode")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func run(path string, cfg *config.Config) error {
	buf, err := buffer.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	closeLog, err := setupLogging(cfg.Debug.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		width, height = 80, 24
	}
	log.Printf("open %s: %d bytes, terminal %dx%d", path, buf.Size(), width, height)

	model := viewer.NewModel(buf, viewer.Options{
		Width:         width,
		Height:        height,
		Mode:          cfg.Mode(),
		ColorCharMode: cfg.View.ColorCharMode,
		ExportSuffix:  cfg.Export.Suffix,
		Styles:        render.DefaultStyles(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to a file while the alternate
// screen is active, or discards it when debugging is off.
func setupLogging(path string) (func(), error) {
	if path == "" && os.Getenv("TERMHEX_DEBUG") != "" {
		path = "termhex-debug.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "termhex")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}
