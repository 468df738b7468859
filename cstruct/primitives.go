package cstruct

import (
	"encoding/binary"
	"math"
)

// Single-field put/get primitives, one pair per concrete type and byte order.
// Pack and Unpack are built on these; they are exported so a caller holding a
// known layout can touch one field without going through a format string.
// Like encoding/binary, they panic when b is shorter than the fixed width;
// the width is part of the caller's contract, not an error case.

func PutInt8(b []byte, v int8)   { b[0] = byte(v) }
func PutUint8(b []byte, v uint8) { b[0] = v }

func Int8(b []byte) int8   { return int8(b[0]) }
func Uint8(b []byte) uint8 { return b[0] }

func PutInt16LE(b []byte, v int16)   { binary.LittleEndian.PutUint16(b, uint16(v)) }
func PutInt16BE(b []byte, v int16)   { binary.BigEndian.PutUint16(b, uint16(v)) }
func PutUint16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func PutUint16BE(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

func Int16LE(b []byte) int16   { return int16(binary.LittleEndian.Uint16(b)) }
func Int16BE(b []byte) int16   { return int16(binary.BigEndian.Uint16(b)) }
func Uint16LE(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func Uint16BE(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

func PutInt32LE(b []byte, v int32)   { binary.LittleEndian.PutUint32(b, uint32(v)) }
func PutInt32BE(b []byte, v int32)   { binary.BigEndian.PutUint32(b, uint32(v)) }
func PutUint32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func PutUint32BE(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

func Int32LE(b []byte) int32   { return int32(binary.LittleEndian.Uint32(b)) }
func Int32BE(b []byte) int32   { return int32(binary.BigEndian.Uint32(b)) }
func Uint32LE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func Uint32BE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

func PutInt64LE(b []byte, v int64)   { binary.LittleEndian.PutUint64(b, uint64(v)) }
func PutInt64BE(b []byte, v int64)   { binary.BigEndian.PutUint64(b, uint64(v)) }
func PutUint64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
func PutUint64BE(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

func Int64LE(b []byte) int64   { return int64(binary.LittleEndian.Uint64(b)) }
func Int64BE(b []byte) int64   { return int64(binary.BigEndian.Uint64(b)) }
func Uint64LE(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }
func Uint64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

// 128-bit values are opaque little-endian blocks; big-endian fields reverse
// the 16 bytes on the way through.

func PutInt128LE(b []byte, v Int128)   { copy(b[:16], v[:]) }
func PutInt128BE(b []byte, v Int128)   { storeReversed16(b, v) }
func PutUint128LE(b []byte, v Uint128) { copy(b[:16], v[:]) }
func PutUint128BE(b []byte, v Uint128) { storeReversed16(b, v) }

func Int128LE(b []byte) Int128 {
	var v Int128
	copy(v[:], b[:16])
	return v
}

func Int128BE(b []byte) Int128 { return Int128(loadReversed16(b)) }

func Uint128LE(b []byte) Uint128 {
	var v Uint128
	copy(v[:], b[:16])
	return v
}

func Uint128BE(b []byte) Uint128 { return Uint128(loadReversed16(b)) }

func storeReversed16(b []byte, v [16]byte) {
	_ = b[15]
	for i, x := range v {
		b[15-i] = x
	}
}

func loadReversed16(b []byte) (v [16]byte) {
	_ = b[15]
	for i := range v {
		v[i] = b[15-i]
	}
	return v
}

// Half-precision fields hold float32 values on the API side; the two-byte
// binary16 pattern exists only on the wire.

func PutFloat16LE(b []byte, v float32) { binary.LittleEndian.PutUint16(b, Float16FromFloat32(v)) }
func PutFloat16BE(b []byte, v float32) { binary.BigEndian.PutUint16(b, Float16FromFloat32(v)) }

func Float16LE(b []byte) float32 { return Float32FromFloat16(binary.LittleEndian.Uint16(b)) }
func Float16BE(b []byte) float32 { return Float32FromFloat16(binary.BigEndian.Uint16(b)) }

func PutFloat32LE(b []byte, v float32) { binary.LittleEndian.PutUint32(b, math.Float32bits(v)) }
func PutFloat32BE(b []byte, v float32) { binary.BigEndian.PutUint32(b, math.Float32bits(v)) }

func Float32LE(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }
func Float32BE(b []byte) float32 { return math.Float32frombits(binary.BigEndian.Uint32(b)) }

func PutFloat64LE(b []byte, v float64) { binary.LittleEndian.PutUint64(b, math.Float64bits(v)) }
func PutFloat64BE(b []byte, v float64) { binary.BigEndian.PutUint64(b, math.Float64bits(v)) }

func Float64LE(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }
func Float64BE(b []byte) float64 { return math.Float64frombits(binary.BigEndian.Uint64(b)) }
