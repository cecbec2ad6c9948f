package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/calcalc/internal/calculator"
)

const (
	demoFirst  = "2004-02-29 10:00:00"
	demoSecond = "1997-07-12 10:00:00"
	demoDays   = "-2423"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an example calculation",
	Long: `Prints the distance between ` + demoFirst + ` and ` + demoSecond + `
and the result of adding ` + demoDays + ` days to the first timestamp.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

type demoResult struct {
	Between calculator.DistanceResult `json:"between" yaml:"between"`
	Add     calculator.AddResult      `json:"add" yaml:"add"`
}

func runDemo(cmd *cobra.Command, args []string) error {
	dist, err := app.svc.Between(demoFirst, demoSecond)
	if err != nil {
		return err
	}
	added, err := app.svc.Add(demoFirst, demoDays, "days")
	if err != nil {
		return err
	}

	res := demoResult{Between: dist, Add: added}
	return render(cmd.OutOrStdout(), res,
		func() string {
			return fmt.Sprintf("%s\n%s", dist.Distance, added.Result)
		}, nil)
}
