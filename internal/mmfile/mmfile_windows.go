//go:build windows

package mmfile

import "os"

// Map reads the whole file; structctl inputs are small enough that the unix
// mapping is an optimization, not a requirement.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}
