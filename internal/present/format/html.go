package format

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// htmlMD needs the GFM table extension so ranking tables survive export.
var htmlMD = goldmark.New(goldmark.WithExtensions(extension.GFM))

// WriteHTML converts note markdown to HTML.
func WriteHTML(w io.Writer, source []byte) error {
	return htmlMD.Convert(source, w)
}
