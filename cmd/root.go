// Package cmd provides the root command and CLI setup for reprocheck.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"reprocheck.dev/pkg/reprocheck/internal/adapter"
	"reprocheck.dev/pkg/reprocheck/internal/controller"
	"reprocheck.dev/pkg/reprocheck/internal/domain"
)

var buildFS adapter.BuildFS
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

// recordsRootFlag is a root-level flag shared by commands that read builds.
var recordsRootFlag string

// verboseFlag raises file logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd, controller.IsTTY(os.Stdout))
	buildFS = adapter.NewLocalBuildFS()
	reportStore = adapter.NewFileReportStore()
	workflow = domain.NewWorkflow(buildFS, reportStore, ui)
}

const rootLongDescription = `Reprocheck compares the artifacts produced by independent builds of the
same version and reports files whose checksums differ, files missing from
some builds, and files whose sizes differ.

Build records are expected under:

  <records-root>/<version>/build-<id>/<output-dir>/...files...`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "reprocheck",
		Short:        "Build reproducibility checker",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&recordsRootFlag, recordsFlagName, "r",
			viper.GetString(recordsConfigKey),
			"records root directory containing <version>/build-<id> trees",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(recordsFlagName), recordsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (defaults to "+defaultLogFilename+")")
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
		os.Exit(1)
	}
}
