package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mithrel/leaguenote/internal/note"
	"github.com/mithrel/leaguenote/internal/present"
)

func newRoundRankCmd() *cobra.Command {
	var outputMode string
	var appendTable bool
	cmd := &cobra.Command{
		Use:   "rank [file]",
		Short: "Rank the Results section of a note into a standings table",
		Long: "Reads a round note (or stdin), parses its '## Results' bullets, and\n" +
			"prints a markdown table ranked by return, best first. Lines that do\n" +
			"not look like '- name: 1.23%' are skipped.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			path := ""
			if len(args) == 1 && args[0] != "-" {
				path = args[0]
			}
			var data []byte
			var err error
			if path == "" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(path)
			}
			if err != nil {
				return fmt.Errorf("read note: %w", err)
			}

			// Best-effort front matter for diagnostics only.
			if meta, _, fmErr := note.ParseRoundMeta(data); fmErr == nil && meta.League != "" {
				app.Log.WithFields(logrus.Fields{
					"league": meta.League,
					"round":  meta.Round,
				}).Debug("ranking results")
			}

			standings, err := note.RankResults(string(data))
			if errors.Is(err, note.ErrNoResults) {
				// A normal empty outcome, not a failure.
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), noticeStyle.Render("No results found."))
				return nil
			}
			if err != nil {
				return err
			}

			if appendTable {
				if path == "" {
					return fmt.Errorf("--append needs a file argument")
				}
				return appendStandings(cmd, path, data, standings)
			}

			if outputMode == "" {
				outputMode = app.Cfg.GetString("output")
			}
			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			width := app.Cfg.GetInt("render.width")
			if width <= 0 {
				width = present.DetectWidth(80)
			}
			return present.RenderStandings(cmd.OutOrStdout(), standings, present.Options{
				Mode:  mode,
				Style: app.Cfg.GetString("render.style"),
				Width: width,
			})
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "", "output mode: plain|pretty|json (defaults to config)")
	cmd.Flags().BoolVar(&appendTable, "append", false, "write the table into the note under '## Standings', replacing a previous one")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "pretty", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// appendStandings writes the note back with the table under a
// '## Standings' heading. Where the table lands is a shell decision;
// the core only returns text.
func appendStandings(cmd *cobra.Command, path string, original []byte, standings note.Standings) error {
	out := upsertStandingsSection(string(original), note.RenderStandings(standings))
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("append standings: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Appended standings to "+path))
	return nil
}

// upsertStandingsSection appends a '## Standings' section, or replaces
// the existing one so repeated runs refresh the table instead of
// stacking duplicates. Content after the section is preserved.
func upsertStandingsSection(doc, table string) string {
	section := "## Standings\n\n" + table
	lines := strings.Split(doc, "\n")
	start := -1
	for i, line := range lines {
		if strings.EqualFold(strings.TrimSpace(line), "## Standings") {
			start = i
			break
		}
	}
	if start < 0 {
		if doc != "" && !strings.HasSuffix(doc, "\n") {
			doc += "\n"
		}
		return doc + "\n" + section
	}
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}
	head := strings.TrimRight(strings.Join(lines[:start], "\n"), "\n")
	if head != "" {
		head += "\n\n"
	}
	tail := strings.Join(lines[end:], "\n")
	if tail != "" {
		tail = "\n" + tail
	}
	return head + section + tail
}
