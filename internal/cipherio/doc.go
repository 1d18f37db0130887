// Package cipherio provides the byte streams the stream modes read from and write to.
//
// A Stream can be backed by a file, by a fixed in-memory buffer or by a pair of
// caller supplied callbacks; the modes treat all of them alike.
package cipherio
