package simd

// findFirst128 processes 16 bytes (two 64-bit SWAR lanes) per step, the
// pure-Go stand-in for a 128-bit vector compare (SSE4.2 on amd64, NEON on
// arm64).
func findFirst128(data []byte, ns needleSet) int {
	return findFirstSWAR(data, ns, 2)
}
