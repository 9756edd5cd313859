package midi

// Encode returns the wire bytes for m. A nil message encodes to nil.
//
// Data bytes are written as given; keeping them in 0-127 and channels in
// Channel1-Channel16 is up to the caller.
func Encode(m Message) []byte {
	if m == nil {
		return nil
	}
	return AppendEncode(make([]byte, 0, encodedLen(m)), m)
}

// AppendEncode appends the wire bytes for m to dst
func AppendEncode(dst []byte, m Message) []byte {
	switch v := m.(type) {
	case NoteOff:
		return append(dst, KindNoteOff.Status(v.Channel), v.Key, v.Velocity)
	case NoteOn:
		return append(dst, KindNoteOn.Status(v.Channel), v.Key, v.Velocity)
	case PolyphonicAftertouch:
		return append(dst, KindPolyphonicAftertouch.Status(v.Channel), v.Key, v.Pressure)
	case ControlOrModeChange:
		return append(dst, KindControlOrModeChange.Status(v.Channel), v.Controller, v.Value)
	case ProgramChange:
		return append(dst, KindProgramChange.Status(v.Channel), v.Program)
	case Aftertouch:
		return append(dst, KindAftertouch.Status(v.Channel), v.Pressure)
	case PitchBendChange:
		return append(dst, KindPitchBendChange.Status(v.Channel), v.LSB, v.MSB)
	case SystemExclusive:
		dst = append(dst, StatusSysEx)
		dst = append(dst, v.Data...)
		return append(dst, StatusSysExEnd)
	case SongPositionPointer:
		return append(dst, KindSongPositionPointer.Status(0), v.LSB, v.MSB)
	case SongSelect:
		return append(dst, KindSongSelect.Status(0), v.Song)
	case nil:
		return dst
	}
	// remaining kinds are a bare status byte
	return append(dst, m.Kind().Status(0))
}

func encodedLen(m Message) int {
	if sx, ok := m.(SystemExclusive); ok {
		return len(sx.Data) + 2
	}
	return 1 + m.Kind().DataLen()
}
