// gesturectl replays gesture scripts, prints the effective configuration and
// runs an interactive recognition demo.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/internal/logging"
)

var version = "dev"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "gesturectl",
		Short: "Multi-touch gesture recognition tools",
		Long: `gesturectl drives the gesture recognition engine outside a game.

Configuration is read from gesture.yaml (or --config) and GESTURE_*
environment variables, e.g. GESTURE_TAP_RADIUS=48.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file (default gesture.yaml if present)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format: text or json")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "trace every recognizer transition")

	root.AddCommand(newReplayCmd(flags))
	root.AddCommand(newConfigCmd(flags))
	root.AddCommand(newDemoCmd(flags))
	return root
}

// load reads the configuration and builds the logger it describes. Flags
// override the file and environment.
func (f *globalFlags) load(cmd *cobra.Command) (gesture.Config, *slog.Logger, error) {
	cfg, err := gesture.LoadConfig(f.configPath)
	if err != nil {
		return cfg, nil, err
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Logging.Format = f.logFormat
	}
	if f.debug {
		cfg.Logging.Level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return cfg, nil, fmt.Errorf("configure logging: %w", err)
	}
	logger.Debug("config loaded", slog.String("source", cfg.Source))
	return cfg, logger, nil
}

// shutdown stops the engine and logs a failure to release its input source.
func shutdown(engine *gesture.Engine, logger *slog.Logger) {
	if err := engine.Shutdown(); err != nil {
		logger.Warn("gesture engine shutdown", slog.Any("error", err))
	}
}
