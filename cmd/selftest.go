package cmd

import (
	"github.com/spf13/cobra"
)

// selftestCmd represents the selftest command.
var selftestCmd = newSelftestCmd()

func newSelftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Flatten a built-in fixture and verify the result",
		Long: `Build a small include tree in memory, flatten it, and check both the
output and the diagnostic of its deliberately missing include.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.SelfTest(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}
