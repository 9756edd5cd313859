package midi

import (
	"fmt"
	"strings"
)

// Category groups message kinds the way the status byte does
type Category int

const (
	CategoryChannelVoice Category = iota
	CategorySystemCommon
	CategorySystemRealTime
	CategorySystemExclusive
)

func (c Category) String() string {
	switch c {
	case CategoryChannelVoice:
		return "channel voice"
	case CategorySystemCommon:
		return "system common"
	case CategorySystemRealTime:
		return "system real-time"
	case CategorySystemExclusive:
		return "system exclusive"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Kind identifies a Message variant
type Kind int

const (
	KindUnknown Kind = iota
	KindNoteOff
	KindNoteOn
	KindPolyphonicAftertouch
	KindControlOrModeChange
	KindProgramChange
	KindAftertouch
	KindPitchBendChange
	KindSystemExclusive
	KindSongPositionPointer
	KindSongSelect
	KindTuneRequest
	KindTimingClock
	KindStart
	KindContinue
	KindStop
	KindActiveSensing
	KindSystemReset
)

var kindNames = [...]string{
	KindUnknown:              "Unknown",
	KindNoteOff:              "NoteOff",
	KindNoteOn:               "NoteOn",
	KindPolyphonicAftertouch: "PolyphonicAftertouch",
	KindControlOrModeChange:  "ControlOrModeChange",
	KindProgramChange:        "ProgramChange",
	KindAftertouch:           "Aftertouch",
	KindPitchBendChange:      "PitchBendChange",
	KindSystemExclusive:      "SystemExclusive",
	KindSongPositionPointer:  "SongPositionPointer",
	KindSongSelect:           "SongSelect",
	KindTuneRequest:          "TuneRequest",
	KindTimingClock:          "TimingClock",
	KindStart:                "Start",
	KindContinue:             "Continue",
	KindStop:                 "Stop",
	KindActiveSensing:        "ActiveSensing",
	KindSystemReset:          "SystemReset",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Category returns the status byte category of k
func (k Kind) Category() Category {
	switch {
	case k >= KindNoteOff && k <= KindPitchBendChange:
		return CategoryChannelVoice
	case k == KindSystemExclusive:
		return CategorySystemExclusive
	case k >= KindSongPositionPointer && k <= KindTuneRequest:
		return CategorySystemCommon
	}
	return CategorySystemRealTime
}

// HasChannel reports whether messages of kind k carry a channel
func (k Kind) HasChannel() bool {
	return k.Category() == CategoryChannelVoice
}

// ParseKind looks up a kind by name, ignoring case, '-' and '_'
func ParseKind(name string) (Kind, error) {
	norm := func(s string) string {
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "-", "")
		return strings.ReplaceAll(s, "_", "")
	}
	want := norm(name)
	for k := KindNoteOff; int(k) < len(kindNames); k++ {
		if norm(kindNames[k]) == want {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown message kind %q", name)
}

// Message is a decoded MIDI message. The concrete type is one of the
// variant structs in this file.
type Message interface {
	Kind() Kind
	isMessage()
}

type NoteOff struct {
	Channel  Channel
	Key      uint8
	Velocity uint8
}

type NoteOn struct {
	Channel  Channel
	Key      uint8
	Velocity uint8
}

type PolyphonicAftertouch struct {
	Channel  Channel
	Key      uint8
	Pressure uint8
}

type ControlOrModeChange struct {
	Channel    Channel
	Controller uint8
	Value      uint8
}

type ProgramChange struct {
	Channel Channel
	Program uint8
}

type Aftertouch struct {
	Channel  Channel
	Pressure uint8
}

// PitchBendChange keeps the two data bytes as sent (LSB first)
type PitchBendChange struct {
	Channel Channel
	LSB     uint8
	MSB     uint8
}

// SystemExclusive holds the payload between F0 and F7.
//
// A value returned by Decode shares Data with the decoded buffer and is only
// valid while that buffer is left untouched. Use Clone to keep it longer.
type SystemExclusive struct {
	Data []byte
}

// Clone returns a copy whose payload does not alias any other buffer
func (m SystemExclusive) Clone() SystemExclusive {
	if m.Data == nil {
		return SystemExclusive{}
	}
	data := make([]byte, len(m.Data))
	copy(data, m.Data)
	return SystemExclusive{Data: data}
}

// SongPositionPointer keeps the two data bytes as sent (LSB first)
type SongPositionPointer struct {
	LSB uint8
	MSB uint8
}

type SongSelect struct {
	Song uint8
}

type TuneRequest struct{}
type TimingClock struct{}
type Start struct{}
type Continue struct{}
type Stop struct{}
type ActiveSensing struct{}
type SystemReset struct{}

func (NoteOff) Kind() Kind              { return KindNoteOff }
func (NoteOn) Kind() Kind               { return KindNoteOn }
func (PolyphonicAftertouch) Kind() Kind { return KindPolyphonicAftertouch }
func (ControlOrModeChange) Kind() Kind  { return KindControlOrModeChange }
func (ProgramChange) Kind() Kind        { return KindProgramChange }
func (Aftertouch) Kind() Kind           { return KindAftertouch }
func (PitchBendChange) Kind() Kind      { return KindPitchBendChange }
func (SystemExclusive) Kind() Kind      { return KindSystemExclusive }
func (SongPositionPointer) Kind() Kind  { return KindSongPositionPointer }
func (SongSelect) Kind() Kind           { return KindSongSelect }
func (TuneRequest) Kind() Kind          { return KindTuneRequest }
func (TimingClock) Kind() Kind          { return KindTimingClock }
func (Start) Kind() Kind                { return KindStart }
func (Continue) Kind() Kind             { return KindContinue }
func (Stop) Kind() Kind                 { return KindStop }
func (ActiveSensing) Kind() Kind        { return KindActiveSensing }
func (SystemReset) Kind() Kind          { return KindSystemReset }

func (NoteOff) isMessage()              {}
func (NoteOn) isMessage()               {}
func (PolyphonicAftertouch) isMessage() {}
func (ControlOrModeChange) isMessage()  {}
func (ProgramChange) isMessage()        {}
func (Aftertouch) isMessage()           {}
func (PitchBendChange) isMessage()      {}
func (SystemExclusive) isMessage()      {}
func (SongPositionPointer) isMessage()  {}
func (SongSelect) isMessage()           {}
func (TuneRequest) isMessage()          {}
func (TimingClock) isMessage()          {}
func (Start) isMessage()                {}
func (Continue) isMessage()             {}
func (Stop) isMessage()                 {}
func (ActiveSensing) isMessage()        {}
func (SystemReset) isMessage()          {}

// ChannelOf returns the channel of a channel-voice message
func ChannelOf(m Message) (Channel, bool) {
	switch v := m.(type) {
	case NoteOff:
		return v.Channel, true
	case NoteOn:
		return v.Channel, true
	case PolyphonicAftertouch:
		return v.Channel, true
	case ControlOrModeChange:
		return v.Channel, true
	case ProgramChange:
		return v.Channel, true
	case Aftertouch:
		return v.Channel, true
	case PitchBendChange:
		return v.Channel, true
	}
	return 0, false
}
