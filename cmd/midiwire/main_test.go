package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"midiwire/config"
	"midiwire/midi"
	"midiwire/theme"
)

func testApp() *app {
	th := theme.New(nil)
	th.NoColor = true
	return &app{cfg: config.DefaultConfig(), theme: th}
}

func TestParseHex(t *testing.T) {
	want := []byte{0x90, 0x3C, 0x64}
	for _, args := range [][]string{
		{"90", "3c", "64"},
		{"903C64"},
		{"90:3C:64"},
		{"0x90,0x3C,0x64"},
		{"90 3c", "64"},
	} {
		got, err := parseHex(args...)
		if err != nil {
			t.Errorf("%q: %v", args, err)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%q: expected % X, got % X", args, want, got)
		}
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"903", "zz", "90 3g"} {
		if _, err := parseHex(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestFormatHex(t *testing.T) {
	b := []byte{0xF0, 0x01, 0xF7}
	if got := formatHex(b); got != "F001F7" {
		t.Errorf("expected F001F7, got %q", got)
	}
	if got := spacedHex(b); got != "F0 01 F7" {
		t.Errorf("expected \"F0 01 F7\", got %q", got)
	}
}

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		args []string
		want midi.Message
	}{
		{[]string{"note-on", "1", "60", "100"}, midi.NoteOn{Channel: midi.Channel1, Key: 60, Velocity: 100}},
		{[]string{"ProgramChange", "6", "40"}, midi.ProgramChange{Channel: midi.Channel6, Program: 40}},
		{[]string{"pitch-bend-change", "16", "0", "0x40"}, midi.PitchBendChange{Channel: midi.Channel16, LSB: 0, MSB: 0x40}},
		{[]string{"song-select", "3"}, midi.SongSelect{Song: 3}},
		{[]string{"timing-clock"}, midi.TimingClock{}},
	}

	for _, tt := range tests {
		got, err := buildMessage(midi.ChannelStrict, tt.args)
		if err != nil {
			t.Errorf("%q: %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %+v, got %+v", tt.args, tt.want, got)
		}
	}
}

func TestBuildMessageSysEx(t *testing.T) {
	got, err := buildMessage(midi.ChannelStrict, []string{"system-exclusive", "0x7E", "0x7F", "6", "1"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if raw := midi.Encode(got); !bytes.Equal(raw, []byte{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7}) {
		t.Errorf("unexpected bytes % X", raw)
	}
}

func TestBuildMessageChannelPolicy(t *testing.T) {
	args := []string{"note-on", "17", "60", "100"}

	_, err := buildMessage(midi.ChannelStrict, args)
	if !errors.Is(err, midi.ErrChannelOutOfRange) {
		t.Errorf("strict: expected ErrChannelOutOfRange, got %v", err)
	}

	got, err := buildMessage(midi.ChannelClamp, args)
	if err != nil || got.(midi.NoteOn).Channel != midi.Channel16 {
		t.Errorf("clamp: expected Channel16, got %+v (%v)", got, err)
	}

	got, err = buildMessage(midi.ChannelWrap, args)
	if err != nil || got.(midi.NoteOn).Channel != midi.Channel1 {
		t.Errorf("wrap: expected Channel1, got %+v (%v)", got, err)
	}
}

func TestBuildMessageErrors(t *testing.T) {
	for _, args := range [][]string{
		{"bogus"},
		{"note-on"},
		{"note-on", "one", "60", "100"},
		{"note-on", "1", "60"},
		{"note-on", "1", "60", "128"},
		{"note-on", "1", "60", "-1"},
		{"stop", "1"},
	} {
		if _, err := buildMessage(midi.ChannelStrict, args); err == nil {
			t.Errorf("%q: expected error", args)
		}
	}
}

func TestDecodeOne(t *testing.T) {
	a := testApp()
	var out bytes.Buffer
	if err := a.decodeOne(&out, []byte{0xC5, 40}, false); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := out.String()
	for _, want := range []string{"ProgramChange", "ch6", "program=40", "[C5 28]"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestDecodeOneError(t *testing.T) {
	a := testApp()
	var out bytes.Buffer
	err := a.decodeOne(&out, []byte{0xF9}, false)
	if !errors.Is(err, midi.ErrInvalidStatusByte) {
		t.Errorf("expected ErrInvalidStatusByte, got %v", err)
	}
}

func TestDecodeLines(t *testing.T) {
	a := testApp()
	in := strings.NewReader("# comment\n90 3C 64\n\nF0 01 02 03 F7\nFC\n")
	var out bytes.Buffer
	if err := a.decodeLines(in, &out, false); err != nil {
		t.Fatalf("decode lines: %v", err)
	}
	got := out.String()
	for _, want := range []string{"NoteOn ch1 key=60 velocity=100", "SystemExclusive len=3", "Stop"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestDecodeLinesReportsFailures(t *testing.T) {
	a := testApp()
	in := strings.NewReader("90 3C\nF8\nzz\n")
	var out bytes.Buffer
	err := a.decodeLines(in, &out, false)
	if err == nil || !strings.Contains(err.Error(), "2 of 3") {
		t.Fatalf("expected 2 of 3 failures, got %v", err)
	}
	if !strings.Contains(out.String(), "line 1:") || !strings.Contains(out.String(), "TimingClock") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestDecodeVerbose(t *testing.T) {
	a := testApp()
	var out bytes.Buffer
	if err := a.decodeOne(&out, []byte{0x90, 60, 100}, true); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(out.String(), "Velocity") {
		t.Errorf("expected struct dump in %q", out.String())
	}
}
