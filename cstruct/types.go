package cstruct

// Int128 is a signed 128-bit value carried as its 16-byte little-endian
// representation. Go has no native 128-bit integer, so the engine moves these
// as opaque blocks: a '<' field copies the bytes through, a '>' field
// reverses them. No arithmetic is performed on the value.
type Int128 [16]byte

// Uint128 is the unsigned counterpart of Int128 with the same byte layout.
type Uint128 [16]byte
