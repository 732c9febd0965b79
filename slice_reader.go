package csvmap

import "github.com/csvquery/csvmap/internal/simd"

// SliceReader has the same contract as Reader but is constructed over a
// caller-owned byte slice instead of an mmapped file. The parallel
// dispatcher's workers each drive one SliceReader over their chunk.
type SliceReader struct {
	config  Config
	data    []byte
	cursor  int
	backend simd.Backend
}

// NewSliceReader constructs a SliceReader over data using backend for all
// scanning. Callers that already resolved a backend (such as the parallel
// dispatcher) pass it directly so every worker agrees on the same choice;
// library users constructing a standalone SliceReader should use
// NewSliceReaderAuto instead.
func NewSliceReader(data []byte, config Config, backend simd.Backend) *SliceReader {
	return &SliceReader{config: config, data: data, backend: backend}
}

// NewSliceReaderAuto constructs a SliceReader, resolving the backend once
// from config.ForcePortableScan and the platform feature probe.
func NewSliceReaderAuto(data []byte, config Config) *SliceReader {
	return NewSliceReader(data, config, simd.SelectBackend(config.ForcePortableScan))
}

// RawSlice returns the reader's full borrowed slice.
func (s *SliceReader) RawSlice() []byte { return s.data }

// NextRow advances the cursor and returns the next row, or signals end and
// resets the cursor to 0.
func (s *SliceReader) NextRow() (Row, bool) {
	tail := s.data[s.cursor:]
	if len(tail) == 0 {
		s.cursor = 0
		return Row{}, false
	}
	i := simd.LocateLineBreak(tail, s.config.LineBreak, s.backend)
	if i == 0 {
		// Final row without a trailing terminator.
		i = len(tail)
	}
	rowBytes := stripTerminator(tail[:i])
	if len(rowBytes) == i && tail[i-1] == s.config.LineBreak {
		rowBytes = tail[:i-1]
	}
	s.cursor += i
	return newRow(rowBytes, s.config.Delimiter, s.config.Quote, s.config.ForcePortableScan, s.backend), true
}

// PeekNext returns the next row without advancing the cursor, or a zero
// Row and false if none remains.
func (s *SliceReader) PeekNext() (Row, bool) {
	tail := s.data[s.cursor:]
	if len(tail) == 0 {
		return Row{}, false
	}
	i := simd.LocateLineBreak(tail, s.config.LineBreak, s.backend)
	if i == 0 {
		i = len(tail)
	}
	rowBytes := stripTerminator(tail[:i])
	if len(rowBytes) == i && tail[i-1] == s.config.LineBreak {
		rowBytes = tail[:i-1]
	}
	return newRow(rowBytes, s.config.Delimiter, s.config.Quote, s.config.ForcePortableScan, s.backend), true
}
