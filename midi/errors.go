package midi

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when Decode gets zero bytes
	ErrEmptyInput = errors.New("empty input")

	ErrInvalidStatusByte = errors.New("invalid status byte")
	ErrMissingDataByte   = errors.New("missing data byte")
)

// InvalidStatusByteError reports a first byte that is not a known status
type InvalidStatusByteError struct {
	Status byte
}

func (e *InvalidStatusByteError) Error() string {
	return fmt.Sprintf("invalid status byte 0x%02X", e.Status)
}

func (e *InvalidStatusByteError) Unwrap() error {
	return ErrInvalidStatusByte
}

// MissingDataByteError reports a message shorter than its status requires.
// Expected and Actual count bytes after the status byte.
type MissingDataByteError struct {
	Status   byte
	Expected int
	Actual   int
}

func (e *MissingDataByteError) Error() string {
	return fmt.Sprintf("missing data byte at position %d: status 0x%02X needs %d data bytes, got %d",
		e.Position(), e.Status, e.Expected, e.Actual)
}

func (e *MissingDataByteError) Unwrap() error {
	return ErrMissingDataByte
}

// Position is the buffer index of the first missing byte
func (e *MissingDataByteError) Position() int {
	return e.Actual + 1
}
