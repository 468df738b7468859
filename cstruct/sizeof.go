package cstruct

import (
	"fmt"

	"github.com/sensignal/cstruct-go/internal/buf"
)

// SizeOf returns the total byte size of the layout described by format:
// the offset one past its last field, padding included. It never touches a
// buffer and never allocates.
func SizeOf(format string) (int, error) {
	s := scanner{format: format}
	total := 0
	for {
		tok, ok, err := s.next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return total, nil
		}
		n, ok := tok.extent()
		if !ok {
			return 0, fmt.Errorf("%s field extent overflows: %w", tok.kind, ErrFormat)
		}
		total, ok = buf.AddOverflowSafe(total, n)
		if !ok {
			return 0, fmt.Errorf("layout size overflows: %w", ErrFormat)
		}
	}
}
