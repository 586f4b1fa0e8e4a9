// Package cmd provides the CLI commands for strategycanvas.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dbmrq/strategycanvas/internal/config"
	apperrors "github.com/dbmrq/strategycanvas/internal/errors"
	"github.com/dbmrq/strategycanvas/internal/export"
	"github.com/dbmrq/strategycanvas/internal/logging"
	"github.com/dbmrq/strategycanvas/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// values from leaking between runs in tests.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strategycanvas",
		Short: "Build a strategy canvas in the terminal",
		Long: `strategycanvas walks you through building a strategy canvas: the
factors your industry competes on, your competitors, and a 0-5 rating for
each of them on every factor. The result is a line chart you can export
as a PNG.

Run without a subcommand to start the wizard. Use "render" to export a
canvas described in a YAML file without the wizard.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
	root.SetVersionTemplate("strategycanvas {{.Version}}\n")

	root.PersistentFlags().String("config", "", "Config file (default "+config.DefaultConfigPath+")")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	root.AddCommand(newRenderCmd(), newInitCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd()
	root.SetOut(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprint(os.Stderr, apperrors.FormatAny(err))
		stop()
		os.Exit(1)
	}
}

// runRoot starts the wizard.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer setupLogging(cmd, cfg)()

	return tui.Run(cmd.Context(), tui.Options{
		Exporter:    newExporter(cfg),
		OutputDir:   cfg.Export.OutputDir,
		Attribution: cfg.Export.Attribution,
	})
}

// loadConfig reads the file named by --config, which must exist, or the
// default config file when it is present.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(config.DefaultConfigPath)
}

// setupLogging starts file logging and returns the function that stops it.
// A logging failure is reported but does not stop the command.
func setupLogging(cmd *cobra.Command, cfg *config.Config) func() {
	logCfg := cfg.LoggingConfig()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logCfg.Level = logging.LevelDebug
	}

	if err := logging.InitGlobal(logCfg); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
		return func() {}
	}
	logging.Info("strategycanvas starting", "version", Version, "command", cmd.Name())
	return func() { _ = logging.CloseGlobal() }
}

func newExporter(cfg *config.Config) *export.Exporter {
	return export.New(
		export.OptionsFromConfig(cfg.Export),
		export.DirSink{Dir: cfg.Export.OutputDir},
		export.WithLogger(logging.Global()),
	)
}
