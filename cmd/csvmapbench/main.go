package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/csvquery/csvmap"
)

func main() {
	sizeMB := 500
	if len(os.Args) > 1 {
		if v, err := fmt.Sscanf(os.Args[1], "%d", &sizeMB); err != nil || v != 1 {
			fmt.Println("Usage: csvmapbench [size_mb]")
			os.Exit(1)
		}
	}

	fmt.Printf("Generating %d MB CSV...\n", sizeMB)
	tmpDir, err := os.MkdirTemp("", "csvmap_bench")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	csvPath := filepath.Join(tmpDir, "bench.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		panic(err)
	}

	w := bufio.NewWriterSize(f, 64*1024)
	w.WriteString("id,code,value,description\n")

	bytesWritten := int64(0)
	limit := int64(sizeMB) * 1024 * 1024
	rows := 0
	buf := make([]byte, 0, 1024)
	rng := rand.New(rand.NewSource(123))

	for bytesWritten < limit {
		rows++
		buf = buf[:0]
		buf = fmt.Appendf(buf, "%d,US-%d,%d,\"Description for item %d with some padding to make it longer\"\n",
			rows, rng.Intn(1000), rng.Intn(10000), rows)
		n, _ := w.Write(buf)
		bytesWritten += int64(n)
	}
	w.Flush()
	f.Close()

	fmt.Printf("Generated %d rows (%.2f MB)\n", rows, float64(bytesWritten)/1024/1024)

	fmt.Println("Starting sequential scan...")
	start := time.Now()

	r, err := csvmap.Open(csvPath, csvmap.DefaultConfig())
	if err != nil {
		panic(err)
	}
	seqCount := 0
	for {
		if _, ok := r.NextRow(); !ok {
			break
		}
		seqCount++
	}
	seqElapsed := time.Since(start)
	mapped := r.RawSlice()

	fmt.Println("Starting parallel scan...")
	start = time.Now()

	acc := csvmap.NewShared(0)
	err = csvmap.ParallelScan(mapped, csvmap.DefaultConfig(), func(view *csvmap.ParallelRowView, workerIdx int, acc csvmap.Shared[int]) {
		v := acc.Lock()
		*v++
		acc.Unlock()
	}, acc)
	if err != nil {
		panic(err)
	}
	parElapsed := time.Since(start)
	parCount := *acc.Lock()
	acc.Unlock()
	r.Close()

	mbPerSecSeq := float64(bytesWritten) / 1024 / 1024 / seqElapsed.Seconds()
	mbPerSecPar := float64(bytesWritten) / 1024 / 1024 / parElapsed.Seconds()

	fmt.Printf("\n--------------------------------------------------\n")
	fmt.Printf("Sequential: %d rows, %.2f MB/s, %v\n", seqCount, mbPerSecSeq, seqElapsed)
	fmt.Printf("Parallel:   %d rows, %.2f MB/s, %v\n", parCount, mbPerSecPar, parElapsed)
	fmt.Printf("--------------------------------------------------\n")
}
