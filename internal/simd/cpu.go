// Package simd provides byte-scanning primitives for CSV terminator and
// separator detection, dispatched across interchangeable backends chosen
// once from CPU feature bits rather than re-probed on every call.
package simd

import "golang.org/x/sys/cpu"

// Backend identifies one of the interchangeable scan kernels. All backends
// must produce byte-identical results for the same input; they differ only
// in how many bytes they examine per step.
type Backend int

const (
	// BackendPortable scans one byte at a time. Always available.
	BackendPortable Backend = iota
	// BackendSWAR128 scans 16 bytes per step using two 64-bit SWAR lanes.
	BackendSWAR128
	// BackendSWAR256 scans 32 bytes per step using four 64-bit SWAR lanes.
	BackendSWAR256
)

func (b Backend) String() string {
	switch b {
	case BackendSWAR256:
		return "swar256"
	case BackendSWAR128:
		return "swar128"
	default:
		return "portable"
	}
}

var (
	has256 bool
	has128 bool
)

func init() {
	has256 = cpu.X86.HasAVX2
	has128 = cpu.X86.HasAVX2 || cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD
}

// SelectBackend picks the best backend available on this CPU, or the
// portable backend if forcePortable is set. The choice is made once at
// Reader construction and held fixed for the lifetime of that reader.
func SelectBackend(forcePortable bool) Backend {
	if forcePortable {
		return BackendPortable
	}
	if has256 {
		return BackendSWAR256
	}
	if has128 {
		return BackendSWAR128
	}
	return BackendPortable
}
