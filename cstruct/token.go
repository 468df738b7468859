package cstruct

import (
	"fmt"

	"github.com/sensignal/cstruct-go/internal/buf"
)

// Kind identifies the concrete type of one format-string field.
type Kind uint8

const (
	KindInt8 Kind = iota
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindInt128
	KindUint128
	KindFloat16
	KindFloat32
	KindFloat64
	KindPadding
	KindString
)

var kindNames = [...]string{
	"int8", "uint8", "int16", "uint16", "int32", "uint32",
	"int64", "uint64", "int128", "uint128",
	"float16", "float32", "float64", "padding", "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// byteOrder is the running endianness of a format scan. Every call starts
// little-endian; '<' and '>' in the format switch it for subsequent fields.
type byteOrder uint8

const (
	orderLittle byteOrder = iota
	orderBig
)

// token is one parsed unit of a format string. Tokens are produced by the
// scanner and consumed immediately by the engines; they never outlive a call.
type token struct {
	kind  Kind
	order byteOrder
	size  int // bytes per element; for string and padding, the whole field
	count int // elements sharing one argument slot; 1 for string and padding
}

// extent returns the total byte span of the token, guarding size*count
// against overflow.
func (t token) extent() (int, bool) {
	return buf.MulOverflowSafe(t.size, t.count)
}

// scanner walks a format string one token at a time. The zero order is
// little-endian, so a zero-positioned scanner is ready to use.
type scanner struct {
	format string
	pos    int
	order  byteOrder
}

// next returns the next token of the format. ok is false once the format is
// exhausted; trailing endianness markers are consumed without emitting a
// token.
func (s *scanner) next() (tok token, ok bool, err error) {
	for s.pos < len(s.format) {
		switch c := s.format[s.pos]; {
		case c == '<':
			s.order = orderLittle
			s.pos++
		case c == '>':
			s.order = orderBig
			s.pos++
		case c >= '0' && c <= '9':
			count, err := s.scanCount()
			if err != nil {
				return token{}, false, err
			}
			return s.scanType(count)
		default:
			return s.scanType(1)
		}
	}
	return token{}, false, nil
}

// scanCount accumulates a decimal repeat count. A run of digits that would
// not fit in an int is a format error, never a silent wrap.
func (s *scanner) scanCount() (int, error) {
	n := 0
	for s.pos < len(s.format) {
		c := s.format[s.pos]
		if c < '0' || c > '9' {
			break
		}
		n10, ok := buf.MulOverflowSafe(n, 10)
		if !ok {
			return 0, fmt.Errorf("count at %d overflows: %w", s.pos, ErrFormat)
		}
		n, ok = buf.AddOverflowSafe(n10, int(c-'0'))
		if !ok {
			return 0, fmt.Errorf("count at %d overflows: %w", s.pos, ErrFormat)
		}
		s.pos++
	}
	if n == 0 {
		// A zero (or absent) count means one element.
		n = 1
	}
	return n, nil
}

func (s *scanner) scanType(count int) (token, bool, error) {
	if s.pos >= len(s.format) {
		return token{}, false, fmt.Errorf("format ends without a type letter: %w", ErrFormat)
	}
	tok := token{order: s.order, count: count}
	switch s.format[s.pos] {
	case 'b':
		tok.kind, tok.size = KindInt8, 1
	case 'B':
		tok.kind, tok.size = KindUint8, 1
	case 'h':
		tok.kind, tok.size = KindInt16, 2
	case 'H':
		tok.kind, tok.size = KindUint16, 2
	case 'i':
		tok.kind, tok.size = KindInt32, 4
	case 'I':
		tok.kind, tok.size = KindUint32, 4
	case 'q':
		tok.kind, tok.size = KindInt64, 8
	case 'Q':
		tok.kind, tok.size = KindUint64, 8
	case 't':
		tok.kind, tok.size = KindInt128, 16
	case 'T':
		tok.kind, tok.size = KindUint128, 16
	case 'e':
		tok.kind, tok.size = KindFloat16, 2
	case 'f':
		tok.kind, tok.size = KindFloat32, 4
	case 'd':
		tok.kind, tok.size = KindFloat64, 8
	case 's':
		// The leading count is the byte width of the string, not a repeat.
		tok.kind, tok.size, tok.count = KindString, count, 1
	case 'x':
		tok.kind, tok.size, tok.count = KindPadding, count, 1
	default:
		return token{}, false, fmt.Errorf("type letter %q at %d: %w",
			s.format[s.pos], s.pos, ErrFormat)
	}
	s.pos++
	return tok, true, nil
}

// FieldInfo describes one field of a format string within its packed layout.
type FieldInfo struct {
	Kind      Kind
	Offset    int // byte offset from the start of the layout
	Size      int // bytes per element
	Count     int // elements in the field; always 1 for string and padding
	BigEndian bool
}

// Fields parses format and returns one entry per field, padding included.
// Unlike Pack and Unpack it allocates; it exists for tooling and
// introspection, not for the packing hot path.
func Fields(format string) ([]FieldInfo, error) {
	var out []FieldInfo
	s := scanner{format: format}
	off := 0
	for {
		tok, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		n, ok := tok.extent()
		if !ok {
			return nil, fmt.Errorf("%s field extent overflows: %w", tok.kind, ErrFormat)
		}
		out = append(out, FieldInfo{
			Kind:      tok.kind,
			Offset:    off,
			Size:      tok.size,
			Count:     tok.count,
			BigEndian: tok.order == orderBig,
		})
		off, ok = buf.AddOverflowSafe(off, n)
		if !ok {
			return nil, fmt.Errorf("layout size overflows: %w", ErrFormat)
		}
	}
}
