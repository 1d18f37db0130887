// Package kcrypt implements the KC3 block cipher: a three round Feistel network
// over 64-byte blocks whose round function and key schedule are polynomials
// interpolated over GF(2^8) from data and key bytes.
//
// The block key is mutated by every block it encrypts or decrypts. Callers that
// need to process a stream must thread one BlockKey through the blocks in order
// and must not share it between streams.
package kcrypt
