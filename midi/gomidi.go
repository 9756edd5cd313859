package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// ToGomidi converts m to a gomidi message, e.g. to hand to a gomidi sender
func ToGomidi(m Message) gomidi.Message {
	return gomidi.Message(Encode(m))
}

// FromGomidi decodes a message received through gomidi. A SystemExclusive
// result aliases msg.
func FromGomidi(msg gomidi.Message) (Message, error) {
	m, err := Decode(msg.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decode gomidi message: %w", err)
	}
	return m, nil
}

// Describe renders m the way gomidi prints messages
func Describe(m Message) string {
	if m == nil {
		return ""
	}
	return ToGomidi(m).String()
}
