package cli

import "github.com/spf13/cobra"

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
	}

	gen := &cobra.Command{
		Use:   "generate",
		Short: "Generate a completion script for a shell",
	}
	gen.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate Bash completions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	})
	gen.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate Zsh completions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	})
	gen.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Generate Fish completions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	cmd.AddCommand(gen)

	return cmd
}
