package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reprocheck.dev/pkg/reprocheck/internal/domain"
	m "reprocheck.dev/pkg/reprocheck/internal/model"
)

// buildsCmd represents the builds command.
var buildsCmd = newBuildsCmd()

func newBuildsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builds <version>",
		Short: "List recorded builds for a version",
		Long:  "List the build directories recorded for the given version, without hashing anything.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.ListBuilds(cmd.Context(), domain.ListArgs{
				RecordsRoot: m.Path(viper.GetString(recordsConfigKey)),
				Version:     args[0],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(buildsCmd)
}
