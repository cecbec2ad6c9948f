package cmd

import (
	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current timestamp",
	Long: `Prints the current timestamp of the configured clock
(calendar.location, or UTC with --utc).`,
	Args: cobra.NoArgs,
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
}

func runNow(cmd *cobra.Command, args []string) error {
	now, err := app.svc.Now()
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), map[string]string{"now": now.String()},
		func() string { return now.String() }, nil)
}
