//go:build unix

package csv

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapFile memory-maps a file for reading.
// Returns the mapped byte slice and a cleanup function that must be called
// to unmap the file.
//
// Combined with NewBytesTokenizer this parses huge files with minimal
// resident memory: the OS pages data in as the tokenizer walks forward, and
// field ranges index straight into the mapping.
//
// Example usage:
//
//	data, cleanup, err := csv.MmapFile("large.csv")
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
//	tok := csv.NewBytesTokenizer(data, csv.DefaultOptions())
//	// ... ParseLine loop
//
// IMPORTANT: do not use the data slice, or any zero-copy range derived from
// it, after calling cleanup().
func MmapFile(filename string) ([]byte, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	size := stat.Size()
	if size == 0 {
		// Empty file - mmap of length 0 fails, so return an empty slice.
		return []byte{}, func() { f.Close() }, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to mmap file: %w", err)
	}

	cleanup := func() {
		_ = unix.Munmap(data)
		f.Close()
	}

	return data, cleanup, nil
}
