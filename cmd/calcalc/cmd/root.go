package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	apperror "github.com/msto63/calcalc/foundation/core/error"
	"github.com/msto63/calcalc/foundation/core/config"
	"github.com/msto63/calcalc/foundation/core/log"
	"github.com/msto63/calcalc/internal/calculator"
	"github.com/msto63/calcalc/pkg/calendar"
	"github.com/msto63/calcalc/pkg/core/metrics"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	useUTC       bool
	dumpMetrics  bool
)

// app holds what PersistentPreRunE built for the running command
var app struct {
	cfg     *config.Config
	logger  *log.Logger
	metrics *metrics.Recorder
	svc     *calculator.Service
	output  string
}

var configDefaults = map[string]interface{}{
	"calendar.location": "local",
	"log.level":         "warn",
	"log.format":        "text",
	"output.format":     "text",
	"output.color":      true,
	"tui.input_width":   22,
}

var rootCmd = &cobra.Command{
	Use:   "calcalc",
	Short: "calcalc - calendar distance calculator",
	Long: `calcalc computes the distance between two timestamps and adds
quantities of time to a timestamp.

Timestamps always have the form "YYYY-MM-DD HH:MM:SS".

Commands:
  between  - distance between two timestamps
  add      - add an amount of a unit to a timestamp
  now      - current timestamp
  demo     - example calculation
  tui      - interactive terminal UI`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dumpMetrics && app.metrics != nil {
			return app.metrics.WriteText(cmd.ErrOrStderr())
		}
		return nil
	},
}

// Execute runs the root command and reports a failure on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered calcalc.toml/.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: text, json, yaml, pretty")
	rootCmd.PersistentFlags().BoolVar(&useUTC, "utc", false, "read the clock in UTC")
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "write operation metrics to stderr on exit")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return err
	}
	if verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return err
	}

	locName := cfg.GetString("calendar.location")
	if useUTC {
		locName = "utc"
	}
	loc, err := calendar.LoadLocation(locName)
	if err != nil {
		return apperror.Wrap(err, fmt.Sprintf("invalid calendar.location %q", locName)).
			WithCode(apperror.CodeInvalidConfig)
	}

	output := cfg.GetString("output.format")
	if cmd.Flags().Changed("output") {
		output = outputFormat
	}
	output = strings.ToLower(output)
	if !isOutputFormat(output) {
		return apperror.New(fmt.Sprintf("unknown output format %q", output)).
			WithCode(apperror.CodeInvalidInput).
			WithDetail("allowed", strings.Join(outputFormats, ", "))
	}

	if !cfg.GetBool("output.color") {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	app.cfg = cfg
	app.output = output
	app.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "calcalc",
	}).WithFields(log.Fields{
		"location": loc.String(),
		"output":   output,
	})
	app.metrics = metrics.NewRecorder()
	app.svc = calculator.NewService(calculator.Config{
		Clock:   calendar.SystemClock{Location: loc},
		Logger:  app.logger,
		Metrics: app.metrics,
	})

	app.logger.Debug("configuration loaded", log.Fields{
		"config":        cfg.FilePath(),
		"config_format": cfg.Format(),
	})
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "CALCALC",
			Defaults:  configDefaults,
		})
	}

	opts := config.DefaultDiscoveryOptions()
	opts.Defaults = configDefaults
	return config.Discover(opts)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
