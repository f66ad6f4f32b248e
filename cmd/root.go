// Package cmd provides the root command and CLI setup for incflat.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"incflat.dev/pkg/incflat/internal/adapter"
	"incflat.dev/pkg/incflat/internal/controller"
	"incflat.dev/pkg/incflat/internal/domain"
	m "incflat.dev/pkg/incflat/internal/model"
)

var sourceFSAdapter adapter.SourceFSAdapter
var outputAdapter adapter.OutputAdapter
var manifestStore adapter.ManifestStore
var flattener domain.Flattener
var workflow domain.Workflow
var ui controller.UI

// includeDirs is a root-level flag listing search directories in lookup order.
var includeDirs []string

var detectCyclesFlag bool
var maxDepthFlag int
var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stderr))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	outputAdapter = adapter.NewLocalOutputAdapter()
	manifestStore = adapter.NewManifestStore()
	flattener = domain.NewFlattener(sourceFSAdapter, ui)
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		outputAdapter,
		manifestStore,
		ui,
		flattener,
	)
}

const directiveHelp = `Recognised directives, each alone on its line:
  #include "NAME"   looked up next to the including file, then in -I dirs
  #include <NAME>   looked up in -I dirs only, first match wins`

const rootLongDescription = `incflat flattens text files that use #include directives: every directive
is replaced, recursively, by the contents of the file it names, and all
other lines are copied through unchanged.

` + directiveHelp

const flattenLongDescription = `Flatten one or more root files.

A single root is written to --output, or to stdout when --output is "-" or
unset. Several roots need --out-dir and are flattened in parallel, each to a
file named after the root.

` + directiveHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "incflat",
		Short:         "Flatten #include directives into a single file",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&includeDirs, includeFlagName, "I", viper.GetStringSlice(includeConfigKey), "add a search directory for includes (can be repeated, searched in order)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(includeFlagName), includeConfigKey)

	cmd.PersistentFlags().BoolVar(&detectCyclesFlag, detectCyclesFlagName, viper.GetBool(detectCyclesConfigKey), "fail on a file that includes itself instead of recursing forever")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(detectCyclesFlagName), detectCyclesConfigKey)

	cmd.PersistentFlags().IntVar(&maxDepthFlag, maxDepthFlagName, viper.GetInt(maxDepthConfigKey), "fail when includes nest deeper than this (0 = unlimited)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(maxDepthFlagName), maxDepthConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Unresolved includes and file-destination failures were already
		// reported as they happened.
		if !errors.Is(err, domain.ErrUnresolvedInclude) && !errors.Is(err, domain.ErrReported) {
			rootCmd.PrintErrln("Error:", err)
		}

		os.Exit(1)
	}
}

func parseSearchPaths(dirs []string) m.SearchPaths {
	paths := make(m.SearchPaths, 0, len(dirs))
	for _, dir := range dirs {
		paths = append(paths, m.Path(dir))
	}

	return paths
}

func guardArgs() domain.GuardArgs {
	return domain.GuardArgs{
		DetectCycles: viper.GetBool(detectCyclesConfigKey),
		MaxDepth:     viper.GetInt(maxDepthConfigKey),
	}
}
