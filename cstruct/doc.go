// Package cstruct packs and unpacks binary structures driven by a compact
// format string, byte-for-byte compatible with the cstruct wire layout (a
// Python-struct-like mini-language).
//
// # Format strings
//
// A format string is a sequence of fields, each an optional decimal count
// followed by a type letter. '<' and '>' switch the running byte order for
// every following field; each call starts little-endian.
//
//	<  >          switch to little/big endian (no field)
//	b  B          int8  / uint8            1 byte
//	h  H          int16 / uint16           2 bytes
//	i  I          int32 / uint32           4 bytes
//	q  Q          int64 / uint64           8 bytes
//	t  T          Int128 / Uint128         16 bytes
//	e             float16 (as float32)     2 bytes
//	f             float32                  4 bytes
//	d             float64                  8 bytes
//	Ns            fixed-width string       N bytes (default 1)
//	x  Nx         skip padding             N bytes (default 1)
//
// A count before a numeric type makes an array field: "4I" is four uint32
// values sharing one argument slot (a slice). Before 's' or 'x' the count is
// the field's byte width instead. A zero or missing count means 1. Any other
// character is a format error.
//
// # Packing and unpacking
//
//	buf := make([]byte, 16)
//	n, err := cstruct.Pack(buf, "<I4s>H", uint32(1), "name", uint16(2))
//
//	var id uint32
//	name := make([]byte, 5) // 4s needs width+1 for the NUL terminator
//	var port uint16
//	_, err = cstruct.Unpack(buf[:n], "<I4s>H", &id, name, &port)
//
// Pack and Unpack consume exactly one argument per field: a value (pack) or
// pointer (unpack) for scalars, a slice for arrays and strings, nothing for
// padding. Argument types are checked at run time; a mismatch is an error
// rather than a misread.
//
// String fields truncate long sources, zero-fill short ones, and on unpack
// append a NUL after the copied width. Padding skips bytes without reading or
// writing them. Half-precision fields convert through an exact binary16
// converter; the other floats are moved bit-for-bit.
//
// # Errors and partial writes
//
// Failures are reported through errors wrapping ErrFormat, ErrShortBuffer,
// ErrArgument, or ErrFieldRange. A field is bounds-checked before any of its
// bytes are touched, but fields processed before the failing one remain
// written: neither Pack nor Unpack rolls back.
//
// # Concurrency
//
// Every operation is a pure function of its inputs with no package state.
// Calls on disjoint buffers may run concurrently; sharing a buffer across
// calls is the caller's synchronization problem, as with memcpy.
package cstruct
