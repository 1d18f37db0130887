// Package encryption runs the KC3 block cipher over byte streams in CTR or OFB
// mode and applies it to files.
//
// A stream starts with a 6-byte mode magic and a 4-byte little-endian random
// counter, followed by 64-byte blocks. Every block carries up to 63 payload
// bytes and a trailing length byte; the first block with fewer than 63 payload
// bytes ends the stream.
package encryption
