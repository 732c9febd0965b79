package csvmap

import (
	"os"

	"github.com/csvquery/csvmap/internal/simd"
)

// Reader memory-maps a file and yields Row values sequentially, advancing
// an internal cursor. It is not safe for concurrent use; each goroutine
// that needs rows should open its own Reader or SliceReader.
type Reader struct {
	config  Config
	file    *os.File
	data    []byte
	cursor  int
	backend simd.Backend
}

// Open opens path read-only and memory-maps its entire contents. The
// platform byte-scan backend is probed once here and held fixed for the
// reader's lifetime.
func Open(path string, config Config) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(FileError, "open", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, newError(FileError, "stat", err)
	}
	size := info.Size()
	data, err := mmapFile(f, size)
	if err != nil {
		f.Close()
		return nil, newError(FileError, "mmap", err)
	}

	backend := simd.SelectBackend(config.ForcePortableScan)
	logger := config.logger()
	logger.Debug().
		Str("path", path).
		Int64("size", size).
		Str("backend", backend.String()).
		Msg("csvmap: reader opened")

	return &Reader{config: config, file: f, data: data, backend: backend}, nil
}

// Close unmaps the file and closes the underlying descriptor. Any Row or
// Field values borrowed from this reader must not be used afterward.
func (r *Reader) Close() error {
	var err error
	if r.data != nil {
		err = munmapFile(r.data)
		r.data = nil
	}
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// RawSlice returns the whole mapped region as a borrowed view, enabling
// the parallel dispatcher to partition without re-reading the file.
func (r *Reader) RawSlice() []byte { return r.data }

// NextRow returns the next row and true, or a zero Row and false at
// end-of-input. Reaching end-of-input resets the cursor to 0, so a
// subsequent call restarts iteration from the beginning of the mapping.
func (r *Reader) NextRow() (Row, bool) {
	tail := r.data[r.cursor:]
	if len(tail) == 0 {
		r.cursor = 0
		return Row{}, false
	}
	i := simd.LocateLineBreak(tail, r.config.LineBreak, r.backend)
	if i == 0 {
		// Final row without a trailing terminator.
		i = len(tail)
	}
	rowBytes := stripTerminator(tail[:i])
	if len(rowBytes) == i && tail[i-1] == r.config.LineBreak {
		rowBytes = tail[:i-1]
	}
	r.cursor += i
	return newRow(rowBytes, r.config.Delimiter, r.config.Quote, r.config.ForcePortableScan, r.backend), true
}

// stripTerminator removes a trailing CRLF, lone LF, or lone CR from b.
func stripTerminator(b []byte) []byte {
	n := len(b)
	if n >= 2 && b[n-2] == '\r' && b[n-1] == '\n' {
		return b[:n-2]
	}
	if n >= 1 && (b[n-1] == '\n' || b[n-1] == '\r') {
		return b[:n-1]
	}
	return b
}
