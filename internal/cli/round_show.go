package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/leaguenote/internal/note"
	"github.com/mithrel/leaguenote/internal/present"
	"github.com/mithrel/leaguenote/internal/present/format"
)

func newRoundShowCmd() *cobra.Command {
	var asHTML bool
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Display a round note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read note: %w", err)
			}
			meta, body, err := note.ParseRoundMeta(data)
			if err != nil {
				return err
			}

			if asHTML {
				return format.WriteHTML(cmd.OutOrStdout(), body)
			}

			md := string(body)
			if meta.League != "" {
				md = fmt.Sprintf("> **League:** %s | **Round:** %d | **Created:** %s\n\n---\n\n%s",
					meta.League, meta.Round, meta.Created.Local().Format(time.RFC3339),
					strings.TrimSpace(string(body)))
			}
			width := app.Cfg.GetInt("render.width")
			if width <= 0 {
				width = present.DetectWidth(80)
			}
			return format.WritePrettyMarkdown(cmd.OutOrStdout(), md, app.Cfg.GetString("render.style"), width)
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "emit the note body as HTML instead of rendering for the terminal")
	return cmd
}
