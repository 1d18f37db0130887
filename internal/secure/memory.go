// Package secure provides helpers for handling key material in memory.
package secure

import "runtime"

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}

	runtime.KeepAlive(b)
}
