package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reprocheck.dev/pkg/reprocheck/internal/domain"
	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

var compareOutputFlag string
var compareFormatFlag string
var compareParallelFlag int

// compareCmd represents the compare command.
var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <version>",
		Short: "Compare checksums across builds of one version",
		Long: `Compare the artifacts of every recorded build of the given version and
report inconsistent checksums, missing files and size differences. An
optional structured report can be written with --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Compare(cmd.Context(), domain.CompareArgs{
				RecordsRoot: m.Path(viper.GetString(recordsConfigKey)),
				Version:     args[0],
				OutputDirs:  viper.GetStringSlice(outputDirsConfigKey),
				ReportPath:  m.Path(compareOutputFlag),
				Format:      viper.GetString(formatConfigKey),
				Workers:     viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureCompareFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func configureCompareFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&compareOutputFlag, outputFlagName, "o", "", "output file for the detailed report")

	// Constant defaults rather than viper reads: package variables
	// initialize before config.go's init() registers the viper defaults, so
	// a viper read here would leave --help showing empty/zero defaults.
	cmd.Flags().StringVarP(&compareFormatFlag, formatFlagName, "f", defaultFormat, "report format: json or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().IntVarP(&compareParallelFlag, parallelFlagName, "p", defaultParallel, "number of builds hashed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
