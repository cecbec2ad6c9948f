package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/calcalc/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add <timestamp> <amount> <unit>",
	Short: "Add an amount of a unit to a timestamp",
	Long: `Adds a signed amount to a timestamp and prints the result.

Units: second, minute, hour, day, week, month, year (plurals and
s, sec, min, h, hr, d, w, wk, mo, y, yr are accepted).

Months and years step the calendar; a day that does not exist in the
target month becomes the last day of that month. Fractional amounts are
accepted for second to week when they come to whole seconds.`,
	Example: `  calcalc add "2004-02-29 10:00:00" -2423 days
  calcalc add "2023-01-31 00:00:00" 1 month
  calcalc add "2023-01-12 00:00:00" 1.5 h`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	// negative amounts must not be read as flags
	addCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	res, err := app.svc.Add(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), res,
		func() string { return res.Result.String() },
		func() string {
			return fmt.Sprintf("%s %+d %s = %s", res.Start, res.Quantity.Amount, res.Quantity.Unit,
				tui.ResultStyle.Render(res.Result.String()))
		})
}
