package cstruct

import "errors"

var (
	// ErrFormat indicates a malformed format string: an unrecognized type
	// letter, or a repeat count too large to represent.
	ErrFormat = errors.New("cstruct: bad format")
	// ErrShortBuffer indicates the next field does not fit in the remaining
	// buffer. Bytes consumed by earlier fields are not rolled back.
	ErrShortBuffer = errors.New("cstruct: buffer too short")
	// ErrArgument indicates a missing argument slot, or one whose dynamic
	// type does not match the field it was consumed for.
	ErrArgument = errors.New("cstruct: bad argument")
	// ErrFieldRange indicates a field index past the last field of a format.
	ErrFieldRange = errors.New("cstruct: field index out of range")
)
