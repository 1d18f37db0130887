package encryption

import (
	"fmt"
	"strings"
)

// Mode is a chaining mode of operation.
type Mode byte

const (
	// ModeCTR encrypts every block independently under an incrementing counter.
	ModeCTR Mode = iota + 1
	// ModeOFB feeds every ciphertext block back into the next block.
	ModeOFB
)

const magicSize = 6

var magics = map[Mode]string{
	ModeCTR: "KC3CTR",
	ModeOFB: "KC3OFB",
}

// ParseMode parses "ctr" or "ofb", ignoring case.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "ctr":
		return ModeCTR, nil
	case "ofb":
		return ModeOFB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
	}
}

// String returns the lower case mode name.
func (m Mode) String() string {
	switch m {
	case ModeCTR:
		return "ctr"
	case ModeOFB:
		return "ofb"
	default:
		return fmt.Sprintf("mode(%d)", byte(m))
	}
}

// Magic returns the stream header magic of the mode.
func (m Mode) Magic() string {
	return magics[m]
}

func modeFromMagic(magic []byte) (Mode, bool) {
	for mode, s := range magics {
		if string(magic) == s {
			return mode, true
		}
	}

	return 0, false
}
