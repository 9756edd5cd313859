package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"midiwire/debug"
	"midiwire/midi"
)

func decodeCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "decode [hex bytes...]",
		Short: "Decode one message from hex, or one per line from stdin",
		Long: `Decode a MIDI message given as hex bytes.

With no arguments, every non-empty stdin line is decoded as its own
message. A SysEx line must contain exactly one message, F0 through F7.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				raw, err := parseHex(args...)
				if err != nil {
					return err
				}
				return a.decodeOne(out, raw, verbose)
			}
			return a.decodeLines(cmd.InOrStdin(), out, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "pretty-print the decoded struct")
	return cmd
}

func (a *app) decodeOne(w io.Writer, raw []byte, verbose bool) error {
	msg, err := midi.Decode(raw)
	if err != nil {
		debug.Log("decode", "% X: %v", raw, err)
		return fmt.Errorf("decode % X: %w", raw, err)
	}
	debug.Log("decode", "% X -> %s", raw, msg.Kind())

	fmt.Fprintln(w, a.renderMessage(msg, raw))
	if verbose {
		fmt.Fprintln(w, a.theme.MutedStyle().Render(midi.Describe(msg)))
		fmt.Fprintln(w, a.prettyPrinter().Sprint(msg))
	}
	return nil
}

// decodeLines keeps going past bad lines and reports how many failed
func (a *app) decodeLines(r io.Reader, w io.Writer, verbose bool) error {
	scanner := bufio.NewScanner(r)
	var lineNo, failed int

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		debug.LogEvery(100, "decode", "lines read")

		raw, err := parseHex(line)
		if err == nil {
			err = a.decodeOne(w, raw, verbose)
		}
		if err != nil {
			failed++
			fmt.Fprintln(w, a.theme.ErrorStyle().Render(fmt.Sprintf("line %d: %v", lineNo, err)))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed to decode", failed, lineNo)
	}
	return nil
}

func (a *app) renderMessage(msg midi.Message, raw []byte) string {
	var b strings.Builder
	b.WriteString(a.theme.KindStyle(msg.Kind()).Render(msg.Kind().String()))
	if ch, ok := midi.ChannelOf(msg); ok {
		fmt.Fprintf(&b, " ch%d", ch.Number())
	}
	if f := fields(msg); f != "" {
		b.WriteString(" ")
		b.WriteString(f)
	}
	b.WriteString(" ")
	b.WriteString(a.theme.MutedStyle().Render("[" + spacedHex(raw) + "]"))
	return b.String()
}

// fields renders the data bytes of msg by name
func fields(msg midi.Message) string {
	switch m := msg.(type) {
	case midi.NoteOff:
		return fmt.Sprintf("key=%d velocity=%d", m.Key, m.Velocity)
	case midi.NoteOn:
		return fmt.Sprintf("key=%d velocity=%d", m.Key, m.Velocity)
	case midi.PolyphonicAftertouch:
		return fmt.Sprintf("key=%d pressure=%d", m.Key, m.Pressure)
	case midi.ControlOrModeChange:
		return fmt.Sprintf("controller=%d value=%d", m.Controller, m.Value)
	case midi.ProgramChange:
		return fmt.Sprintf("program=%d", m.Program)
	case midi.Aftertouch:
		return fmt.Sprintf("pressure=%d", m.Pressure)
	case midi.PitchBendChange:
		return fmt.Sprintf("lsb=%d msb=%d", m.LSB, m.MSB)
	case midi.SystemExclusive:
		return fmt.Sprintf("len=%d data=[% X]", len(m.Data), m.Data)
	case midi.SongPositionPointer:
		return fmt.Sprintf("lsb=%d msb=%d", m.LSB, m.MSB)
	case midi.SongSelect:
		return fmt.Sprintf("song=%d", m.Song)
	}
	return ""
}

func (a *app) prettyPrinter() *pp.PrettyPrinter {
	printer := pp.New()
	printer.SetColoringEnabled(!a.theme.NoColor)
	return printer
}
