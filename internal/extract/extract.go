// Package extract pulls runs of printable text out of binary data and
// writes them to a sidecar export file.
package extract

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"termhex/internal/classify"
)

const DefaultSuffix = "_export.txt"

// Strings returns the maximal runs of printable and whitespace bytes in
// data, in order. Control bytes end a run. Other bytes are skipped without
// ending it. Runs that do not decode as UTF-8 are dropped.
func Strings(data []byte) []string {
	var out []string
	run := make([]byte, 0, 64)

	flush := func() {
		if len(run) == 0 {
			return
		}
		if utf8.Valid(run) {
			out = append(out, string(run))
		}
		run = run[:0]
	}

	for _, b := range data {
		switch {
		case classify.IsControl(b):
			// tab, LF, FF and CR end a run too
			flush()
		case classify.IsGraphic(b) || classify.IsSpace(b):
			run = append(run, b)
		}
	}
	flush()

	return out
}

// ExportPath names the export file for input by appending suffix to the
// full path, extension included.
func ExportPath(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return input + suffix
}

// WriteFile writes strs to path, one per line, joined by single newlines.
func WriteFile(path string, strs []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(strs, "\n")), 0644); err != nil {
		return fmt.Errorf("write export %s: %w", path, err)
	}
	return nil
}

// Export extracts the strings of data and writes them next to input.
// It returns the export path and the number of strings written.
func Export(input string, data []byte, suffix string) (string, int, error) {
	path := ExportPath(input, suffix)
	strs := Strings(data)
	if err := WriteFile(path, strs); err != nil {
		return path, 0, err
	}
	return path, len(strs), nil
}
