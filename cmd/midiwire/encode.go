package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"midiwire/debug"
	"midiwire/midi"
)

func encodeCmd(a *app) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "encode <kind> [channel] [data...]",
		Short: "Encode a message and print its bytes as hex",
		Long: `Encode a MIDI message from its kind name, channel and data bytes.

Channel-voice kinds take a channel number 1-16 first; out-of-range
numbers are handled by the configured channel policy. Data bytes are
decimal or 0x-prefixed hex and must be in 0-127. For system-exclusive
the data bytes are the payload; F0 and F7 are added.

  midiwire encode note-on 1 60 100
  midiwire encode program-change 6 40
  midiwire encode system-exclusive 0x7E 0x7F 0x06 0x01
  midiwire encode timing-clock`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := a.cfg.Policy()
			if err != nil {
				return err
			}
			msg, err := buildMessage(policy, args)
			if err != nil {
				return err
			}

			raw := midi.Encode(msg)
			debug.Log("encode", "%v -> % X", args, raw)

			if compact {
				fmt.Fprintln(cmd.OutOrStdout(), formatHex(raw))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), spacedHex(raw))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&compact, "compact", "c", false, "print hex without spaces")
	return cmd
}

// buildMessage turns "<kind> [channel] [data...]" into a message
func buildMessage(policy midi.ChannelPolicy, args []string) (midi.Message, error) {
	kind, err := midi.ParseKind(args[0])
	if err != nil {
		return nil, err
	}
	rest := args[1:]

	var ch midi.Channel
	if kind.HasChannel() {
		if len(rest) == 0 {
			return nil, fmt.Errorf("%s needs a channel (1-16)", kind)
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", rest[0], err)
		}
		ch, err = policy.Resolve(n - 1)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", n, err)
		}
		rest = rest[1:]
	}

	data := make([]byte, 0, len(rest))
	for _, s := range rest {
		v, err := strconv.ParseUint(s, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("data byte %q: %w", s, err)
		}
		if v > 0x7F {
			return nil, fmt.Errorf("data byte %s is not 7-bit", s)
		}
		data = append(data, byte(v))
	}

	return midi.NewMessage(kind, ch, data)
}
