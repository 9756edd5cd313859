package midi

import "fmt"

// sysexLen marks the variable-length entry in the status table
const sysexLen = -1

const (
	StatusSysEx      byte = 0xF0
	StatusSysExEnd   byte = 0xF7
	statusFirstVoice byte = 0x80
)

type statusEntry struct {
	lo, hi  byte
	kind    Kind
	dataLen int
	build   func(ch Channel, data []byte) Message
}

// statusTable is the full dispatch table, ordered by status byte. Channel-voice
// ranges span 16 values and the channel is always status - lo. Anything not
// covered here is an invalid status.
var statusTable = [...]statusEntry{
	{0x80, 0x8F, KindNoteOff, 2, func(ch Channel, d []byte) Message {
		return NoteOff{Channel: ch, Key: d[0], Velocity: d[1]}
	}},
	{0x90, 0x9F, KindNoteOn, 2, func(ch Channel, d []byte) Message {
		return NoteOn{Channel: ch, Key: d[0], Velocity: d[1]}
	}},
	{0xA0, 0xAF, KindPolyphonicAftertouch, 2, func(ch Channel, d []byte) Message {
		return PolyphonicAftertouch{Channel: ch, Key: d[0], Pressure: d[1]}
	}},
	{0xB0, 0xBF, KindControlOrModeChange, 2, func(ch Channel, d []byte) Message {
		return ControlOrModeChange{Channel: ch, Controller: d[0], Value: d[1]}
	}},
	{0xC0, 0xCF, KindProgramChange, 1, func(ch Channel, d []byte) Message {
		return ProgramChange{Channel: ch, Program: d[0]}
	}},
	{0xD0, 0xDF, KindAftertouch, 1, func(ch Channel, d []byte) Message {
		return Aftertouch{Channel: ch, Pressure: d[0]}
	}},
	{0xE0, 0xEF, KindPitchBendChange, 2, func(ch Channel, d []byte) Message {
		return PitchBendChange{Channel: ch, LSB: d[0], MSB: d[1]}
	}},
	{0xF0, 0xF0, KindSystemExclusive, sysexLen, func(_ Channel, d []byte) Message {
		return SystemExclusive{Data: d}
	}},
	{0xF2, 0xF2, KindSongPositionPointer, 2, func(_ Channel, d []byte) Message {
		return SongPositionPointer{LSB: d[0], MSB: d[1]}
	}},
	{0xF3, 0xF3, KindSongSelect, 1, func(_ Channel, d []byte) Message {
		return SongSelect{Song: d[0]}
	}},
	{0xF6, 0xF6, KindTuneRequest, 0, func(Channel, []byte) Message { return TuneRequest{} }},
	{0xF8, 0xF8, KindTimingClock, 0, func(Channel, []byte) Message { return TimingClock{} }},
	{0xFA, 0xFA, KindStart, 0, func(Channel, []byte) Message { return Start{} }},
	{0xFB, 0xFB, KindContinue, 0, func(Channel, []byte) Message { return Continue{} }},
	{0xFC, 0xFC, KindStop, 0, func(Channel, []byte) Message { return Stop{} }},
	{0xFE, 0xFE, KindActiveSensing, 0, func(Channel, []byte) Message { return ActiveSensing{} }},
	{0xFF, 0xFF, KindSystemReset, 0, func(Channel, []byte) Message { return SystemReset{} }},
}

// byKind indexes statusTable by Kind for the encoder
var byKind = func() (idx [len(kindNames)]*statusEntry) {
	for i := range statusTable {
		idx[statusTable[i].kind] = &statusTable[i]
	}
	return idx
}()

func lookupStatus(status byte) (*statusEntry, bool) {
	if status < statusFirstVoice {
		return nil, false
	}
	for i := range statusTable {
		e := &statusTable[i]
		if status < e.lo {
			return nil, false
		}
		if status <= e.hi {
			return e, true
		}
	}
	return nil, false
}

func entryFor(k Kind) (*statusEntry, bool) {
	if k <= KindUnknown || int(k) >= len(byKind) {
		return nil, false
	}
	e := byKind[k]
	return e, e != nil
}

// Status returns the status byte for kind k. The channel only affects
// channel-voice kinds.
func (k Kind) Status(ch Channel) byte {
	e, ok := entryFor(k)
	if !ok {
		return 0
	}
	if k.HasChannel() {
		return e.lo + byte(ch)&0x0F
	}
	return e.lo
}

// DataLen returns the number of data bytes after the status byte, or -1 for
// SystemExclusive.
func (k Kind) DataLen() int {
	e, ok := entryFor(k)
	if !ok {
		return 0
	}
	return e.dataLen
}

// NewMessage builds a message of kind k. For SystemExclusive data is the
// payload (without F0/F7) and is not copied. The channel is ignored for
// system kinds.
func NewMessage(k Kind, ch Channel, data []byte) (Message, error) {
	e, ok := entryFor(k)
	if !ok {
		return nil, fmt.Errorf("unknown message kind %d", int(k))
	}
	if e.dataLen != sysexLen && len(data) != e.dataLen {
		return nil, fmt.Errorf("%s takes %d data bytes, got %d", k, e.dataLen, len(data))
	}
	if k.HasChannel() && !ch.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrChannelOutOfRange, ch.Index())
	}
	return e.build(ch, data), nil
}
