package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/sensignal/cstruct-go/cstruct"
)

// Conversion between command-line strings and the argument slots Pack and
// Unpack consume. One slot per non-padding field; array fields take a
// comma-separated list, 128-bit fields take 32 hex digits (big-endian, as
// written), strings are taken verbatim.

// buildArgs turns one value string per non-padding field into Pack arguments.
func buildArgs(fields []cstruct.FieldInfo, vals []string) ([]any, error) {
	var args []any
	vi := 0
	for _, f := range fields {
		if f.Kind == cstruct.KindPadding {
			continue
		}
		if vi >= len(vals) {
			return nil, fmt.Errorf("missing value for %s field at offset %d", f.Kind, f.Offset)
		}
		a, err := parseValue(f, vals[vi])
		if err != nil {
			return nil, fmt.Errorf("value %q for %s field: %w", vals[vi], f.Kind, err)
		}
		args = append(args, a)
		vi++
	}
	if vi != len(vals) {
		return nil, fmt.Errorf("format takes %d values, got %d", vi, len(vals))
	}
	return args, nil
}

func parseValue(f cstruct.FieldInfo, s string) (any, error) {
	if f.Kind == cstruct.KindString {
		return s, nil
	}
	parts := []string{s}
	if f.Count > 1 {
		parts = strings.Split(s, ",")
		if len(parts) != f.Count {
			return nil, fmt.Errorf("field wants %d comma-separated elements, got %d", f.Count, len(parts))
		}
	}
	switch f.Kind {
	case cstruct.KindInt8:
		return parseSlot(f.Count, parts, func(p string) (int8, error) {
			v, err := strconv.ParseInt(p, 0, 8)
			return int8(v), err
		})
	case cstruct.KindUint8:
		return parseSlot(f.Count, parts, func(p string) (uint8, error) {
			v, err := strconv.ParseUint(p, 0, 8)
			return uint8(v), err
		})
	case cstruct.KindInt16:
		return parseSlot(f.Count, parts, func(p string) (int16, error) {
			v, err := strconv.ParseInt(p, 0, 16)
			return int16(v), err
		})
	case cstruct.KindUint16:
		return parseSlot(f.Count, parts, func(p string) (uint16, error) {
			v, err := strconv.ParseUint(p, 0, 16)
			return uint16(v), err
		})
	case cstruct.KindInt32:
		return parseSlot(f.Count, parts, func(p string) (int32, error) {
			v, err := strconv.ParseInt(p, 0, 32)
			return int32(v), err
		})
	case cstruct.KindUint32:
		return parseSlot(f.Count, parts, func(p string) (uint32, error) {
			v, err := strconv.ParseUint(p, 0, 32)
			return uint32(v), err
		})
	case cstruct.KindInt64:
		return parseSlot(f.Count, parts, func(p string) (int64, error) {
			return strconv.ParseInt(p, 0, 64)
		})
	case cstruct.KindUint64:
		return parseSlot(f.Count, parts, func(p string) (uint64, error) {
			return strconv.ParseUint(p, 0, 64)
		})
	case cstruct.KindInt128:
		return parseSlot(f.Count, parts, func(p string) (cstruct.Int128, error) {
			b, err := parse128(p)
			return cstruct.Int128(b), err
		})
	case cstruct.KindUint128:
		return parseSlot(f.Count, parts, func(p string) (cstruct.Uint128, error) {
			b, err := parse128(p)
			return cstruct.Uint128(b), err
		})
	case cstruct.KindFloat16, cstruct.KindFloat32:
		return parseSlot(f.Count, parts, func(p string) (float32, error) {
			v, err := strconv.ParseFloat(p, 32)
			return float32(v), err
		})
	case cstruct.KindFloat64:
		return parseSlot(f.Count, parts, func(p string) (float64, error) {
			return strconv.ParseFloat(p, 64)
		})
	}
	return nil, fmt.Errorf("unsupported field kind %s", f.Kind)
}

// parseSlot parses every element and collapses a one-element scalar field to
// its bare value, matching what Pack expects per slot.
func parseSlot[T any](count int, parts []string, one func(string) (T, error)) (any, error) {
	vs := make([]T, len(parts))
	for i, p := range parts {
		v, err := one(p)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	if count == 1 {
		return vs[0], nil
	}
	return vs, nil
}

// parse128 reads exactly 32 hex digits written most-significant first and
// returns the canonical little-endian block.
func parse128(s string) ([16]byte, error) {
	var out [16]byte
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(raw) != 16 {
		return out, fmt.Errorf("128-bit value wants 32 hex digits, got %d", len(s))
	}
	for i, b := range raw {
		out[15-i] = b
	}
	return out, nil
}

func format128(b [16]byte) string {
	rev := make([]byte, 16)
	for i, x := range b {
		rev[15-i] = x
	}
	return "0x" + hex.EncodeToString(rev)
}

// makeDest allocates one Unpack destination for a non-padding field.
func makeDest(f cstruct.FieldInfo) any {
	switch f.Kind {
	case cstruct.KindString:
		// Width plus the NUL terminator Unpack appends.
		return make([]byte, f.Size+1)
	case cstruct.KindInt8:
		return dest[int8](f.Count)
	case cstruct.KindUint8:
		return dest[uint8](f.Count)
	case cstruct.KindInt16:
		return dest[int16](f.Count)
	case cstruct.KindUint16:
		return dest[uint16](f.Count)
	case cstruct.KindInt32:
		return dest[int32](f.Count)
	case cstruct.KindUint32:
		return dest[uint32](f.Count)
	case cstruct.KindInt64:
		return dest[int64](f.Count)
	case cstruct.KindUint64:
		return dest[uint64](f.Count)
	case cstruct.KindInt128:
		return dest[cstruct.Int128](f.Count)
	case cstruct.KindUint128:
		return dest[cstruct.Uint128](f.Count)
	case cstruct.KindFloat16, cstruct.KindFloat32:
		return dest[float32](f.Count)
	case cstruct.KindFloat64:
		return dest[float64](f.Count)
	}
	return nil
}

func dest[T any](count int) any {
	if count == 1 {
		return new(T)
	}
	return make([]T, count)
}

// renderDest converts a populated destination into something printable.
func renderDest(f cstruct.FieldInfo, d any) any {
	if f.Kind == cstruct.KindString {
		b := d.([]byte)
		if i := bytes.IndexByte(b, 0); i >= 0 {
			b = b[:i]
		}
		return string(b)
	}
	switch v := d.(type) {
	case []uint8:
		// A uint8 array, not a string; keep JSON from base64-encoding it.
		out := make([]uint, len(v))
		for i, b := range v {
			out[i] = uint(b)
		}
		return out
	case *cstruct.Int128:
		return format128(*v)
	case *cstruct.Uint128:
		return format128(*v)
	case []cstruct.Int128:
		out := make([]string, len(v))
		for i, b := range v {
			out[i] = format128(b)
		}
		return out
	case []cstruct.Uint128:
		out := make([]string, len(v))
		for i, b := range v {
			out[i] = format128(b)
		}
		return out
	case *int8:
		return *v
	case *uint8:
		return *v
	case *int16:
		return *v
	case *uint16:
		return *v
	case *int32:
		return *v
	case *uint32:
		return *v
	case *int64:
		return *v
	case *uint64:
		return *v
	case *float32:
		return *v
	case *float64:
		return *v
	default:
		return d // slices print and marshal as-is
	}
}
