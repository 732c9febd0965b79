//go:build windows

package csvmap

import (
	"io"
	"os"
)

// mmapFile falls back to reading the whole file on Windows rather than
// wiring a separate Windows mmap syscall path; the rest of the reader
// treats the result identically to a real mapping.
func mmapFile(f *os.File, size int64) ([]byte, error) {
	return io.ReadAll(f)
}

func munmapFile(data []byte) error {
	return nil
}
