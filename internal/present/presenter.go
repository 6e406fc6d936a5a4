// Package present routes standings to an output mode.
package present

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/mithrel/leaguenote/internal/note"
	"github.com/mithrel/leaguenote/internal/present/format"
)

type Mode int

const (
	ModePlain Mode = iota
	ModePretty
	ModeJSON
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Style      string
	Width      int
}

// ParseMode parses a string like "plain", "pretty", "json".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "pretty":
		return ModePretty, true
	case "json":
		return ModeJSON, true
	default:
		return ModePlain, false
	}
}

// RenderStandings writes standings according to options.
func RenderStandings(w io.Writer, s note.Standings, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONStandings(w, s, opts.JSONIndent)
	case ModePretty:
		return format.WritePrettyMarkdown(w, note.RenderStandings(s), opts.Style, opts.Width)
	default:
		return format.WritePlainStandings(w, s)
	}
}

// DetectWidth returns the stdout terminal width, or fallback when
// stdout is not a terminal or the width is unusable.
func DetectWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
