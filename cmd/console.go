package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"convar/internal/config"
	"convar/internal/demo"
	"convar/internal/repl"
	"convar/pkg/cvar"
	"convar/pkg/logging"

	"github.com/spf13/cobra"
)

// newConsoleCmd creates the command running the interactive REPL over
// the demo configuration.
func newConsoleCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Start the interactive configuration console",
		Long: `Start an interactive console over the demo configuration.

Commands:
  <name>           print the current value of a property
  <name> <value>   set a property
  reset [name]     restore a property, a group or everything to defaults
  find [text]      list nodes whose full name contains text
  help [name]      show help, or details for one node`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, verbose)
			if err != nil {
				return err
			}

			console := cvar.New(demo.NewGameConfig(),
				cvar.WithPathSeparator(cfg.PathSeparator),
				cvar.WithMaxDepth(cfg.MaxDepth),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := repl.NewLogger(cfg.Verbose, cfg.Color)
			return repl.New(console, logger, cfg).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "directory containing console.yaml (default: ~/.config/convar)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	return cmd
}

// loadConfig initializes logging and loads the console settings,
// applying the verbose flag on top of the file contents.
func loadConfig(configPath string, verbose bool) (config.ConsoleConfig, error) {
	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	if configPath == "" {
		var err error
		if configPath, err = config.DefaultConfigPath(); err != nil {
			return config.ConsoleConfig{}, err
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.ConsoleConfig{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}
