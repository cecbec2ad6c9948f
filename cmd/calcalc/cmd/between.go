package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/calcalc/internal/tui"
)

var betweenCmd = &cobra.Command{
	Use:   "between <timestamp> <timestamp>",
	Short: "Distance between two timestamps",
	Long: `Prints the distance between two timestamps. The order of the
arguments does not matter.

Months and years are approximations (days/30, days/365). Sundays and
Saturdays are counted over both dates inclusive; working days are the
days minus the Sundays.`,
	Example: `  calcalc between "2001-02-18 10:00:00" "1997-07-12 10:00:00"
  calcalc between -o json "2023-01-12 00:00:00" "2024-05-08 00:00:00"`,
	Args: cobra.ExactArgs(2),
	RunE: runBetween,
}

func init() {
	rootCmd.AddCommand(betweenCmd)
}

func runBetween(cmd *cobra.Command, args []string) error {
	res, err := app.svc.Between(args[0], args[1])
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), res,
		func() string { return res.Distance.String() },
		func() string { return tui.RenderDistance(&res) })
}
