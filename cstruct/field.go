package cstruct

import "fmt"

// FieldOffset walks the format over src without decoding anything and returns
// the byte offset of field index. Fields are counted per token: an array
// field is one field, and padding counts too. Bounds are checked exactly as
// Pack and Unpack check them, so an offset is only returned when the whole
// field lies inside src.
func FieldOffset(src []byte, format string, index int) (int, error) {
	off, _, err := locateField(src, format, index)
	return off, err
}

// Field returns the sub-slice of src holding field index, aliasing src rather
// than copying. Combined with the single-field primitives this gives in-place
// access without a full Unpack.
func Field(src []byte, format string, index int) ([]byte, error) {
	off, n, err := locateField(src, format, index)
	if err != nil {
		return nil, err
	}
	return src[off : off+n], nil
}

func locateField(src []byte, format string, index int) (off, n int, err error) {
	s := scanner{format: format}
	field := 0
	for {
		tok, ok, err := s.next()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			return 0, 0, fmt.Errorf("format has %d fields, want index %d: %w",
				field, index, ErrFieldRange)
		}
		need, err := checkRoom(src, off, tok)
		if err != nil {
			return 0, 0, err
		}
		if field == index {
			return off, need, nil
		}
		field++
		off += need
	}
}
