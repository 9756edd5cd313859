package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"midiwire/config"
	"midiwire/debug"
	"midiwire/theme"
)

// app carries what every subcommand needs after startup
type app struct {
	cfg   *config.Config
	theme *theme.Theme
}

func main() {
	a := &app{}
	var debugFlag, noColor bool

	rootCmd := &cobra.Command{
		Use:   "midiwire",
		Short: "Decode and encode MIDI 1.0 wire messages",
		Long: `midiwire converts between raw MIDI bytes and typed messages.

  midiwire decode 90 3c 64
  midiwire encode note-on 1 60 100
  echo "F0 7E 7F 06 01 F7" | midiwire decode`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(debugFlag, noColor)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Disable()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write a debug log to the config directory")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		decodeCmd(a),
		encodeCmd(a),
		configCmd(a),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func (a *app) setup(debugFlag, noColor bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	if debugFlag || cfg.Debug {
		dir, err := config.ConfigDir()
		if err != nil {
			return fmt.Errorf("config dir: %w", err)
		}
		if err := debug.Enable(dir); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
	}

	var palette *theme.Palette
	if cfg.Output.Palette != "" {
		palette, err = theme.LoadGPL(cfg.Output.Palette)
		if err != nil {
			return fmt.Errorf("load palette: %w", err)
		}
	}
	a.theme = theme.New(palette)
	a.theme.NoColor = noColor || cfg.Output.NoColor

	debug.Log("setup", "policy=%s palette=%q", cfg.ChannelPolicy, cfg.Output.Palette)
	return nil
}
