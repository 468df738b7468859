package cstruct

import (
	"fmt"

	"github.com/sensignal/cstruct-go/internal/buf"
)

// Pack encodes one argument per format field into dst and returns the number
// of bytes written. Scalar fields take a value of the exact element type,
// array fields (count > 1) take a slice with at least count elements, string
// fields take a string or []byte, and padding fields take no argument.
//
// The destination is bounds-checked before each field is touched, so a
// failing field never writes a byte, but fields packed before the failure
// stay in dst. There is no rollback.
func Pack(dst []byte, format string, args ...any) (int, error) {
	s := scanner{format: format}
	out := 0
	argn := 0
	for {
		tok, ok, err := s.next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		need, err := checkRoom(dst, out, tok)
		if err != nil {
			return out, err
		}
		if tok.kind == KindPadding {
			// Deliberate skip; dst bytes keep whatever they held.
			out += need
			continue
		}
		arg, err := takeArg(args, &argn, tok.kind)
		if err != nil {
			return out, err
		}
		if err := packField(dst[out:out+need], tok, arg); err != nil {
			return out, err
		}
		out += need
	}
}

// AppendPack packs into a grown copy of dst, sizing the destination from the
// format itself. It allocates, so it is the convenience form; Pack is the
// fixed-buffer form.
func AppendPack(dst []byte, format string, args ...any) ([]byte, error) {
	n, err := SizeOf(format)
	if err != nil {
		return dst, err
	}
	off := len(dst)
	grown := append(dst, make([]byte, n)...)
	if _, err := Pack(grown[off:], format, args...); err != nil {
		return dst, err
	}
	return grown, nil
}

// checkRoom verifies that the whole field fits at offset off before anything
// is written or read for it.
func checkRoom(b []byte, off int, tok token) (int, error) {
	need, ok := tok.extent()
	if !ok {
		return 0, fmt.Errorf("%s field extent overflows: %w", tok.kind, ErrFormat)
	}
	if !buf.Has(b, off, need) {
		return 0, fmt.Errorf("%s field needs %d bytes at offset %d, have %d: %w",
			tok.kind, need, off, len(b)-off, ErrShortBuffer)
	}
	return need, nil
}

// takeArg consumes the next argument slot. One slot serves a whole field,
// however many elements it has.
func takeArg(args []any, n *int, kind Kind) (any, error) {
	if *n >= len(args) {
		return nil, fmt.Errorf("no argument left for %s field (slot %d): %w", kind, *n, ErrArgument)
	}
	a := args[*n]
	*n++
	return a, nil
}

func packField(dst []byte, tok token, arg any) error {
	le := tok.order == orderLittle
	switch tok.kind {
	case KindString:
		return packString(dst, tok, arg)
	case KindInt8:
		return packSlot(dst, tok, arg, PutInt8)
	case KindUint8:
		return packSlot(dst, tok, arg, PutUint8)
	case KindInt16:
		return packSlot(dst, tok, arg, pick(le, PutInt16LE, PutInt16BE))
	case KindUint16:
		return packSlot(dst, tok, arg, pick(le, PutUint16LE, PutUint16BE))
	case KindInt32:
		return packSlot(dst, tok, arg, pick(le, PutInt32LE, PutInt32BE))
	case KindUint32:
		return packSlot(dst, tok, arg, pick(le, PutUint32LE, PutUint32BE))
	case KindInt64:
		return packSlot(dst, tok, arg, pick(le, PutInt64LE, PutInt64BE))
	case KindUint64:
		return packSlot(dst, tok, arg, pick(le, PutUint64LE, PutUint64BE))
	case KindInt128:
		return packSlot(dst, tok, arg, pick(le, PutInt128LE, PutInt128BE))
	case KindUint128:
		return packSlot(dst, tok, arg, pick(le, PutUint128LE, PutUint128BE))
	case KindFloat16:
		return packSlot(dst, tok, arg, pick(le, PutFloat16LE, PutFloat16BE))
	case KindFloat32:
		return packSlot(dst, tok, arg, pick(le, PutFloat32LE, PutFloat32BE))
	case KindFloat64:
		return packSlot(dst, tok, arg, pick(le, PutFloat64LE, PutFloat64BE))
	}
	return fmt.Errorf("unhandled kind %s: %w", tok.kind, ErrFormat)
}

// pick selects the little- or big-endian primitive for the running order.
func pick[F any](le bool, little, big F) F {
	if le {
		return little
	}
	return big
}

// packSlot encodes one argument slot: a single value for scalar fields, a
// slice of count elements for array fields.
func packSlot[T any](dst []byte, tok token, arg any, put func([]byte, T)) error {
	if tok.count == 1 {
		v, ok := arg.(T)
		if !ok {
			return fmt.Errorf("%s field wants %T, got %T: %w", tok.kind, v, arg, ErrArgument)
		}
		put(dst, v)
		return nil
	}
	vs, ok := arg.([]T)
	if !ok {
		return fmt.Errorf("%s[%d] field wants %T, got %T: %w", tok.kind, tok.count, vs, arg, ErrArgument)
	}
	if len(vs) < tok.count {
		return fmt.Errorf("%s[%d] field given %d elements: %w", tok.kind, tok.count, len(vs), ErrArgument)
	}
	for i := 0; i < tok.count; i++ {
		put(dst[i*tok.size:], vs[i])
	}
	return nil
}

// packString copies up to size bytes of the source and zero-fills the rest.
// A longer source truncates silently; the field width never changes.
func packString(dst []byte, tok token, arg any) error {
	n := 0
	switch v := arg.(type) {
	case string:
		n = copy(dst[:tok.size], v)
	case []byte:
		n = copy(dst[:tok.size], v)
	default:
		return fmt.Errorf("string field wants string or []byte, got %T: %w", arg, ErrArgument)
	}
	for i := n; i < tok.size; i++ {
		dst[i] = 0
	}
	return nil
}
