package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mithrel/leaguenote/internal/editor"
)

func newRoundEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Open a round note in $EDITOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			path := args[0]
			// Bare names resolve against the vault.
			if filepath.Dir(path) == "." && filepath.Ext(path) == ".md" {
				if candidate := filepath.Join(app.Vault.Dir, path); fileExists(candidate) && !fileExists(path) {
					path = candidate
				}
			}
			return editor.Open(path)
		},
	}
	return cmd
}
