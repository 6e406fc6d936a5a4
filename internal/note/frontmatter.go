package note

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// ParseRoundMeta extracts front matter and body from a round note's
// source. Notes without front matter parse cleanly into a zero meta.
func ParseRoundMeta(source []byte) (RoundMeta, []byte, error) {
	var meta RoundMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return RoundMeta{}, nil, fmt.Errorf("parse front matter: %w", err)
	}
	return meta, body, nil
}
