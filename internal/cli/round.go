package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Status styles for user-facing notices; diagnostics go through logrus.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Create, rank, and inspect league round notes",
	}
	cmd.AddCommand(newRoundNewCmd())
	cmd.AddCommand(newRoundRankCmd())
	cmd.AddCommand(newRoundShowCmd())
	cmd.AddCommand(newRoundEditCmd())
	return cmd
}
