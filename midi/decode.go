package midi

// Decode parses one complete message from b.
//
// Fixed-size messages ignore any bytes past their data bytes. For
// SystemExclusive, b must span exactly one message (F0 ... F7): everything
// between the first and last byte is the payload, and the last byte is taken
// to be the terminator without being checked. The returned payload aliases b.
func Decode(b []byte) (Message, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}

	status := b[0]
	e, ok := lookupStatus(status)
	if !ok {
		return nil, &InvalidStatusByteError{Status: status}
	}

	if e.dataLen == sysexLen {
		if len(b) < 2 {
			return nil, &MissingDataByteError{Status: status, Expected: 1, Actual: 0}
		}
		return e.build(0, b[1:len(b)-1:len(b)-1]), nil
	}

	if got := len(b) - 1; got < e.dataLen {
		return nil, &MissingDataByteError{Status: status, Expected: e.dataLen, Actual: got}
	}

	return e.build(Channel(status-e.lo), b[1:1+e.dataLen]), nil
}
