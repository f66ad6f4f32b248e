package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"incflat.dev/pkg/incflat/internal/domain"
	m "incflat.dev/pkg/incflat/internal/model"
)

var outputFlag string
var outDirFlag string
var parallelFlag int
var atomicFlag bool

// flattenCmd represents the flatten command.
var flattenCmd = newFlattenCmd()

func newFlattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten ROOT...",
		Short: "Expand include directives into a single file",
		Long:  flattenLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Flatten(cmd.Context(), domain.FlattenArgs{
				GuardArgs:   guardArgs(),
				Roots:       parsePaths(args),
				SearchPaths: parseSearchPaths(viper.GetStringSlice(includeConfigKey)),
				Output:      m.Path(outputFlag),
				OutDir:      m.Path(viper.GetString(outDirConfigKey)),
				Stdout:      cmd.OutOrStdout(),
				Atomic:      viper.GetBool(atomicConfigKey),
				Threads:     viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureFlattenFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(flattenCmd)
}

func configureFlattenFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFlag, outputFlagName, "o", "", `output file for a single root ("-" for stdout)`)

	cmd.Flags().StringVarP(&outDirFlag, outDirFlagName, "d", viper.GetString(outDirConfigKey), "output directory, one file per root")
	bindFlagToConfig(cmd.Flags().Lookup(outDirFlagName), outDirConfigKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of roots flattened at once")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&atomicFlag, atomicFlagName, viper.GetBool(atomicConfigKey), "write output only if every include resolves")
	bindFlagToConfig(cmd.Flags().Lookup(atomicFlagName), atomicConfigKey)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
