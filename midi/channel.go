package midi

import (
	"errors"
	"fmt"
	"strings"
)

// Channel is one of the 16 MIDI channels, stored as its 4-bit index
type Channel uint8

const (
	Channel1 Channel = iota
	Channel2
	Channel3
	Channel4
	Channel5
	Channel6
	Channel7
	Channel8
	Channel9
	Channel10
	Channel11
	Channel12
	Channel13
	Channel14
	Channel15
	Channel16
)

// NumChannels is the number of channels addressable by a status byte
const NumChannels = 16

// ErrChannelOutOfRange is returned for channel indices outside 0-15
var ErrChannelOutOfRange = errors.New("channel index out of range")

// FromIndex maps index 0-15 to Channel1-Channel16
func FromIndex(i int) (Channel, error) {
	if i < 0 || i >= NumChannels {
		return 0, fmt.Errorf("%w: %d", ErrChannelOutOfRange, i)
	}
	return Channel(i), nil
}

// Index returns the 0-15 index carried in the status byte's low nibble
func (c Channel) Index() int {
	return int(c)
}

// Number returns the 1-16 display number
func (c Channel) Number() int {
	return int(c) + 1
}

// Valid reports whether c is one of Channel1-Channel16
func (c Channel) Valid() bool {
	return c < NumChannels
}

func (c Channel) String() string {
	return fmt.Sprintf("Channel%d", c.Number())
}

// ChannelPolicy decides what happens to an index outside 0-15
type ChannelPolicy int

const (
	ChannelStrict ChannelPolicy = iota // reject
	ChannelClamp                       // pin to Channel1 / Channel16
	ChannelWrap                        // modulo 16
)

// Resolve converts i to a Channel according to the policy
func (p ChannelPolicy) Resolve(i int) (Channel, error) {
	switch p {
	case ChannelStrict:
		return FromIndex(i)
	case ChannelClamp:
		return Channel(min(max(i, 0), NumChannels-1)), nil
	case ChannelWrap:
		return Channel(((i % NumChannels) + NumChannels) % NumChannels), nil
	}
	return 0, fmt.Errorf("unknown channel policy %d", int(p))
}

func (p ChannelPolicy) String() string {
	switch p {
	case ChannelStrict:
		return "strict"
	case ChannelClamp:
		return "clamp"
	case ChannelWrap:
		return "wrap"
	}
	return fmt.Sprintf("ChannelPolicy(%d)", int(p))
}

// ParseChannelPolicy accepts "strict", "clamp" or "wrap". Empty means strict.
func ParseChannelPolicy(s string) (ChannelPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return ChannelStrict, nil
	case "clamp":
		return ChannelClamp, nil
	case "wrap":
		return ChannelWrap, nil
	}
	return ChannelStrict, fmt.Errorf("unknown channel policy %q", s)
}
