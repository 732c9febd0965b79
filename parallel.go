package csvmap

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/csvquery/csvmap/internal/simd"
)

// ParallelRowView exposes the row currently being visited by a worker,
// plus a lookahead into the next row in that worker's chunk.
type ParallelRowView struct {
	reader  *SliceReader
	current Row
}

// Current returns the row currently being visited.
func (v *ParallelRowView) Current() Row { return v.current }

// PeekNext returns the next row in the worker's chunk without advancing
// past it, or an empty Row if none remains.
func (v *ParallelRowView) PeekNext() Row {
	row, ok := v.reader.PeekNext()
	if !ok {
		return Row{}
	}
	return row
}

// ParallelFunc is invoked once per row by ParallelScan. Implementations
// must be safe to call concurrently from multiple workers; each worker
// calls fn with its own ParallelRowView and worker index, sharing only acc.
type ParallelFunc[T any] func(view *ParallelRowView, workerIndex int, acc Shared[T])

// ParallelScan partitions data into row-aligned chunks (one per logical
// CPU, floor-capped at 1), spawns one worker goroutine per chunk, and
// blocks until every worker has returned. fn is responsible for locking
// acc's mutex for the minimum duration needed; the dispatcher performs no
// implicit locking per row. A panic inside fn is recovered at the worker
// boundary and, after every worker has joined, returned as an error.
func ParallelScan[T any](data []byte, config Config, fn ParallelFunc[T], acc Shared[T]) error {
	backend := simd.SelectBackend(config.ForcePortableScan)
	boundaries := partitionBoundaries(data, config.LineBreak, backend)
	workers := len(boundaries) - 1

	logger := config.logger()
	logger.Debug().Int("workers", workers).Int("bytes", len(data)).Str("backend", backend.String()).
		Msg("csvmap: parallel scan starting")

	var wg sync.WaitGroup
	workerErrs := make([]error, workers)
	for k := 0; k < workers; k++ {
		wg.Add(1)
		go func(workerIdx, start, end int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					workerErrs[workerIdx] = newError(FileError, "worker-panic",
						fmt.Errorf("worker %d panicked: %v", workerIdx, r))
				}
			}()
			runWorker(data[start:end], config, backend, workerIdx, fn, acc)
		}(k, boundaries[k], boundaries[k+1])
	}
	wg.Wait()

	for _, err := range workerErrs {
		if err != nil {
			return err
		}
	}
	return nil
}

func runWorker[T any](chunk []byte, config Config, backend simd.Backend, workerIdx int, fn ParallelFunc[T], acc Shared[T]) {
	reader := NewSliceReader(chunk, config, backend)
	view := &ParallelRowView{reader: reader}
	for {
		row, ok := reader.NextRow()
		if !ok {
			return
		}
		view.current = row
		fn(view, workerIdx, acc)
	}
}

// partitionBoundaries computes N+1 offsets into data (N = logical CPU
// count, floor-capped at 1) such that every boundary is 0, len(data), or
// immediately after a row terminator (LF, CR, CRLF, or a lineBreak byte).
// All boundaries are computed before
// any worker is spawned, so no two workers can race over the same bytes.
func partitionBoundaries(data []byte, lineBreak byte, backend simd.Backend) []int {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	total := len(data)
	if total == 0 || n == 1 {
		return []int{0, total}
	}
	chunkSize := total / n
	if chunkSize == 0 {
		return []int{0, total}
	}

	boundaries := make([]int, n+1)
	boundaries[n] = total
	for k := 1; k < n; k++ {
		boundaries[k] = safeBoundaryAt(data, k*chunkSize, lineBreak, backend)
	}
	// A single oversized row can push a boundary past a later hint; clamp
	// forward so boundaries stay non-decreasing and no chunk gets a
	// negative length.
	for k := 1; k <= n; k++ {
		if boundaries[k] < boundaries[k-1] {
			boundaries[k] = boundaries[k-1]
		}
	}
	return boundaries
}

func safeBoundaryAt(data []byte, hint int, lineBreak byte, backend simd.Backend) int {
	if hint >= len(data) {
		return len(data)
	}
	i := simd.LocateLineBreak(data[hint:], lineBreak, backend)
	if i == 0 {
		return len(data)
	}
	return hint + i
}
