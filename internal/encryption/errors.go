package encryption

import "errors"

var (
	// ErrTruncated is returned when the input ends inside the header or a block.
	ErrTruncated = errors.New("truncated input")
	// ErrUnknownMode is returned for a header magic that names no known mode.
	ErrUnknownMode = errors.New("input corrupted: unknown mode of operation")
	// ErrInvalidMode is returned when a mode name is neither "ctr" nor "ofb".
	ErrInvalidMode = errors.New("unknown mode of operation")
	// ErrCorrupt is returned when a decoded block carries an impossible length byte.
	ErrCorrupt = errors.New("input corrupted: invalid block length")
)
