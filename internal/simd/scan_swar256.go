package simd

// findFirst256 processes 32 bytes (four 64-bit SWAR lanes) per step, the
// pure-Go stand-in for a 256-bit vector compare (AVX2 on amd64).
func findFirst256(data []byte, ns needleSet) int {
	return findFirstSWAR(data, ns, 4)
}
