package format

import (
	"io"

	"github.com/mithrel/leaguenote/internal/note"
)

// WritePlainStandings writes the raw markdown ranking table. This is
// the form meant for pasting back into a note.
func WritePlainStandings(w io.Writer, s note.Standings) error {
	_, err := io.WriteString(w, note.RenderStandings(s))
	return err
}
