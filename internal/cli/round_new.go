package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mithrel/leaguenote/internal/note"
	"github.com/mithrel/leaguenote/internal/util"
	"github.com/mithrel/leaguenote/internal/vault"
)

func newRoundNewCmd() *cobra.Command {
	var roundRaw string
	var participantsRaw string
	var dir string
	cmd := &cobra.Command{
		Use:   "new [league]",
		Short: "Create a templated round note",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			// Raw inputs; blanks fall back to config, then to the
			// built-in defaults inside NewRoundSpec.
			leagueRaw := strings.TrimSpace(strings.Join(args, " "))
			if leagueRaw == "" {
				leagueRaw = app.Cfg.GetString("league")
			}
			if strings.TrimSpace(roundRaw) == "" {
				roundRaw = app.Cfg.GetString("round")
			}
			if strings.TrimSpace(participantsRaw) == "" {
				participantsRaw = strings.Join(app.Cfg.GetStringSlice("participants"), ",")
			}

			spec := note.NewRoundSpec(leagueRaw, roundRaw, participantsRaw)
			content := note.ComposeRound(spec, app.Now())

			target := app.Vault
			if dir != "" {
				target = vault.New(dir)
			}
			path, err := target.Create(vault.NoteFileName(spec.League, spec.Round), content)
			if errors.Is(err, vault.ErrUnchanged) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), noticeStyle.Render("Unchanged: "+path))
				return nil
			}
			if err != nil {
				return fmt.Errorf("could not create round note: %w", err)
			}

			app.Log.WithFields(logrus.Fields{
				"league":       spec.League,
				"round":        spec.Round,
				"participants": len(spec.Participants),
				"path":         path,
			}).Debug("round note created")

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Created "+path))
			return nil
		},
	}
	cmd.Flags().StringVarP(&roundRaw, "round", "r", "", "round number (defaults to config)")
	cmd.Flags().StringVarP(&participantsRaw, "participants", "p", "", "comma-separated participant names")
	cmd.Flags().StringVar(&dir, "dir", "", "write the note here instead of notes_dir")

	_ = cmd.RegisterFlagCompletionFunc("participants", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		app := getApp(cmd)
		roster := app.Cfg.GetStringSlice("participants")
		// Complete the name after the last comma.
		prefix := ""
		if i := strings.LastIndex(toComplete, ","); i >= 0 {
			prefix = toComplete[:i+1]
			toComplete = toComplete[i+1:]
		}
		matches := util.ScoreCompletions(toComplete, roster, 10)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, prefix+m)
		}
		return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
