package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"midiwire/config"
	"midiwire/midi"
)

func configCmd(a *app) *cobra.Command {
	var policy, palette string
	var debugLog, noColor bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			changed := false

			if flags.Changed("policy") {
				p, err := midi.ParseChannelPolicy(policy)
				if err != nil {
					return err
				}
				a.cfg.ChannelPolicy = p.String()
				changed = true
			}
			if flags.Changed("palette") {
				a.cfg.Output.Palette = palette
				changed = true
			}
			if flags.Changed("debug-log") {
				a.cfg.Debug = debugLog
				changed = true
			}
			if flags.Changed("plain") {
				a.cfg.Output.NoColor = noColor
				changed = true
			}

			if changed {
				if err := a.cfg.Save(); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
			}

			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:          %s\n", path)
			fmt.Fprintf(out, "channelPolicy: %s\n", a.cfg.ChannelPolicy)
			fmt.Fprintf(out, "palette:       %s\n", a.cfg.Output.Palette)
			fmt.Fprintf(out, "debug:         %t\n", a.cfg.Debug)
			fmt.Fprintf(out, "noColor:       %t\n", a.cfg.Output.NoColor)
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "channel policy: strict, clamp or wrap")
	cmd.Flags().StringVar(&palette, "palette", "", "GIMP palette file for colors (empty for built-in)")
	cmd.Flags().BoolVar(&debugLog, "debug-log", false, "always write the debug log")
	cmd.Flags().BoolVar(&noColor, "plain", false, "always disable colored output")
	return cmd
}
