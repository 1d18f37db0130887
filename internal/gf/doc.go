// Package gf implements arithmetic over GF(2^8) and polynomial interpolation
// on top of it.
//
// A Field is built once from a generator polynomial and is immutable afterwards,
// so a single *Field can be shared by every cipher instance in the process.
package gf
