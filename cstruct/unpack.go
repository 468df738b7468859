package cstruct

import "fmt"

// Unpack decodes src into one destination per format field and returns the
// number of bytes consumed. Scalar fields take a pointer to the element type,
// array fields (count > 1) take a slice with at least count elements, string
// fields take a []byte of at least size+1 bytes (a NUL is written after the
// copied region), and padding fields take no destination.
//
// The source is bounds-checked before each field is read. Destinations
// populated before a failure keep their decoded values; there is no rollback.
func Unpack(src []byte, format string, args ...any) (int, error) {
	s := scanner{format: format}
	in := 0
	argn := 0
	for {
		tok, ok, err := s.next()
		if err != nil {
			return in, err
		}
		if !ok {
			return in, nil
		}
		need, err := checkRoom(src, in, tok)
		if err != nil {
			return in, err
		}
		if tok.kind == KindPadding {
			in += need
			continue
		}
		arg, err := takeArg(args, &argn, tok.kind)
		if err != nil {
			return in, err
		}
		if err := unpackField(src[in:in+need], tok, arg); err != nil {
			return in, err
		}
		in += need
	}
}

func unpackField(src []byte, tok token, arg any) error {
	le := tok.order == orderLittle
	switch tok.kind {
	case KindString:
		return unpackString(src, tok, arg)
	case KindInt8:
		return unpackSlot(src, tok, arg, Int8)
	case KindUint8:
		return unpackSlot(src, tok, arg, Uint8)
	case KindInt16:
		return unpackSlot(src, tok, arg, pick(le, Int16LE, Int16BE))
	case KindUint16:
		return unpackSlot(src, tok, arg, pick(le, Uint16LE, Uint16BE))
	case KindInt32:
		return unpackSlot(src, tok, arg, pick(le, Int32LE, Int32BE))
	case KindUint32:
		return unpackSlot(src, tok, arg, pick(le, Uint32LE, Uint32BE))
	case KindInt64:
		return unpackSlot(src, tok, arg, pick(le, Int64LE, Int64BE))
	case KindUint64:
		return unpackSlot(src, tok, arg, pick(le, Uint64LE, Uint64BE))
	case KindInt128:
		return unpackSlot(src, tok, arg, pick(le, Int128LE, Int128BE))
	case KindUint128:
		return unpackSlot(src, tok, arg, pick(le, Uint128LE, Uint128BE))
	case KindFloat16:
		return unpackSlot(src, tok, arg, pick(le, Float16LE, Float16BE))
	case KindFloat32:
		return unpackSlot(src, tok, arg, pick(le, Float32LE, Float32BE))
	case KindFloat64:
		return unpackSlot(src, tok, arg, pick(le, Float64LE, Float64BE))
	}
	return fmt.Errorf("unhandled kind %s: %w", tok.kind, ErrFormat)
}

// unpackSlot decodes one destination slot: a pointer for scalar fields, a
// slice of count elements for array fields.
func unpackSlot[T any](src []byte, tok token, arg any, get func([]byte) T) error {
	if tok.count == 1 {
		p, ok := arg.(*T)
		if !ok {
			return fmt.Errorf("%s field wants %T, got %T: %w", tok.kind, p, arg, ErrArgument)
		}
		*p = get(src)
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
		vs[i] = get(src[i*tok.size:])
	}
	return nil
}

// unpackString copies the field and writes a NUL terminator after it, so the
// destination must hold size+1 bytes.
func unpackString(src []byte, tok token, arg any) error {
	dst, ok := arg.([]byte)
	if !ok {
		return fmt.Errorf("string field wants []byte, got %T: %w", arg, ErrArgument)
	}
	if len(dst) < tok.size+1 {
		return fmt.Errorf("string field needs a %d byte destination (width+terminator), have %d: %w",
			tok.size+1, len(dst), ErrArgument)
	}
	copy(dst[:tok.size], src[:tok.size])
	dst[tok.size] = 0
	return nil
}
