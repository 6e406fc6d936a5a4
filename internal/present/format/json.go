package format

import (
	"encoding/json"
	"io"

	"github.com/mithrel/leaguenote/internal/note"
)

func WriteJSONStandings(w io.Writer, s note.Standings, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}
