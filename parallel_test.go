package csvmap

import (
	"strconv"
	"strings"
	"testing"

	"github.com/csvquery/csvmap/internal/simd"
)

func generateCSV(rows int) []byte {
	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString("row")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(i * 2))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func TestPartitionBoundariesAlignment(t *testing.T) {
	data := generateCSV(5000)
	boundaries := partitionBoundaries(data, '\n', simd.BackendPortable)

	if boundaries[0] != 0 {
		t.Fatalf("first boundary = %d, want 0", boundaries[0])
	}
	if boundaries[len(boundaries)-1] != len(data) {
		t.Fatalf("last boundary = %d, want %d", boundaries[len(boundaries)-1], len(data))
	}
	for i := 1; i < len(boundaries)-1; i++ {
		b := boundaries[i]
		if b == 0 || b == len(data) {
			continue
		}
		if data[b-1] != '\n' {
			t.Errorf("boundary %d (offset %d) does not follow a line break", i, b)
		}
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] < boundaries[i-1] {
			t.Errorf("boundaries not non-decreasing at %d: %d < %d", i, boundaries[i], boundaries[i-1])
		}
	}
}

func TestParallelScanEquivalentToSerialCount(t *testing.T) {
	data := generateCSV(5000)

	serial := NewSliceReaderAuto(data, DefaultConfig())
	wantCount := 0
	for {
		if _, ok := serial.NextRow(); !ok {
			break
		}
		wantCount++
	}

	acc := NewShared(0)
	err := ParallelScan(data, DefaultConfig(), func(view *ParallelRowView, workerIdx int, acc Shared[int]) {
		v := acc.Lock()
		*v++
		acc.Unlock()
	}, acc)
	if err != nil {
		t.Fatalf("ParallelScan: %v", err)
	}

	gotCount := *acc.Lock()
	acc.Unlock()

	if gotCount != wantCount {
		t.Errorf("parallel row count = %d, want %d (serial)", gotCount, wantCount)
	}
}

func TestParallelScanSumMatchesSerial(t *testing.T) {
	data := generateCSV(2000)

	sumSerial := 0
	serial := NewSliceReaderAuto(data, DefaultConfig())
	for {
		row, ok := serial.NextRow()
		if !ok {
			break
		}
		sumSerial += int(row.FieldAt(1).AsI64())
	}

	acc := NewShared(0)
	err := ParallelScan(data, DefaultConfig(), func(view *ParallelRowView, workerIdx int, acc Shared[int]) {
		n := int(view.Current().FieldAt(1).AsI64())
		v := acc.Lock()
		*v += n
		acc.Unlock()
	}, acc)
	if err != nil {
		t.Fatalf("ParallelScan: %v", err)
	}

	sumParallel := *acc.Lock()
	acc.Unlock()

	if sumParallel != sumSerial {
		t.Errorf("parallel sum = %d, want %d (serial)", sumParallel, sumSerial)
	}
}

func TestParallelScanRecoversWorkerPanic(t *testing.T) {
	data := generateCSV(100)
	acc := NewSharedDefault[int]()
	err := ParallelScan(data, DefaultConfig(), func(view *ParallelRowView, workerIdx int, acc Shared[int]) {
		panic("boom")
	}, acc)
	if err == nil {
		t.Fatal("expected an error from a panicking worker")
	}
}

func TestParallelScanPeekNext(t *testing.T) {
	data := []byte("1,a\n2,b\n3,c\n")
	acc := NewShared([]string{})
	err := ParallelScan(data, DefaultConfig(), func(view *ParallelRowView, workerIdx int, acc Shared[[]string]) {
		next := view.PeekNext()
		v := acc.Lock()
		if next.IsEmpty() && len(next.RawBytes()) == 0 {
			*v = append(*v, "last")
		} else {
			*v = append(*v, "has-next")
		}
		acc.Unlock()
	}, acc)
	if err != nil {
		t.Fatalf("ParallelScan: %v", err)
	}
}
