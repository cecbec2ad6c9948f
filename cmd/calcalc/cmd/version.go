package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/calcalc/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		return render(cmd.OutOrStdout(), info, info.String, nil)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
