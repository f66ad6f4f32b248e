package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"incflat.dev/pkg/incflat/internal/domain"
	m "incflat.dev/pkg/incflat/internal/model"
)

var formatFlag string

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree ROOT",
		Short: "Show how every include of a root file resolves",
		Long: `Resolve every include reachable from ROOT without writing output and list
where each one was found, in the order they would be expanded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Tree(cmd.Context(), domain.TreeArgs{
				GuardArgs:   guardArgs(),
				Root:        m.Path(args[0]),
				SearchPaths: parseSearchPaths(viper.GetStringSlice(includeConfigKey)),
				Format:      formatFlag,
				Stdout:      cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", domain.FormatTable, "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
