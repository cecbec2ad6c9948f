package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apperror "github.com/msto63/calcalc/foundation/core/error"
	"github.com/msto63/calcalc/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI",
	Long: `Starts the terminal user interface of calcalc.

Navigation:
  Tab/Shift+Tab - next/previous field
  Enter         - calculate
  Ctrl+N        - switch between distance and add
  Ctrl+T        - insert the current timestamp (add view: into Timestamp)
  Ctrl+L        - clear
  Esc/Ctrl+C    - quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	width := app.cfg.GetInt("tui.input_width")
	if width < tui.MinInputWidth {
		return apperror.New(fmt.Sprintf("tui.input_width must be at least %d, got %d", tui.MinInputWidth, width)).
			WithCode(apperror.CodeInvalidConfig).
			WithDetail("input_width", width)
	}

	if err := tui.Run(app.svc, tui.WithInputWidth(width)); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
