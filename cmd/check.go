package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"incflat.dev/pkg/incflat/internal/domain"
	m "incflat.dev/pkg/incflat/internal/model"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check ROOT EXPECTED",
		Short: "Verify that a flattened file is up to date",
		Long: `Flatten ROOT in memory and compare the result with EXPECTED. Differences
are printed as a unified diff and the command exits non-zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{
				GuardArgs:   guardArgs(),
				Root:        m.Path(args[0]),
				Expected:    m.Path(args[1]),
				SearchPaths: parseSearchPaths(viper.GetStringSlice(includeConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
