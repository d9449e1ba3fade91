//go:build !unix

package csv

import (
	"fmt"
	"os"
)

// MmapFile reads a file into memory on non-Unix platforms.
// On platforms without mmap support, this falls back to reading the entire
// file. The cleanup function is a no-op, provided for API compatibility with
// the Unix version.
func MmapFile(filename string) ([]byte, func(), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, func() {}, nil
}
