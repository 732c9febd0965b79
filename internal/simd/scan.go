package simd

// needleSet holds up to three distinct bytes to search for simultaneously:
// line feed, carriage return, and an optional third byte supplied by the
// caller (a field separator or a custom line-break byte).
type needleSet struct {
	bytes [3]byte
	n     int
}

func buildNeedles(extra byte) needleSet {
	ns := needleSet{bytes: [3]byte{'\n', '\r'}, n: 2}
	if extra != '\n' && extra != '\r' {
		ns.bytes[2] = extra
		ns.n = 3
	}
	return ns
}

// findFirst returns the index of the first byte in data matching any of
// ns.bytes[:ns.n], or -1 if none is present. It dispatches to the requested
// backend; all backends return the same leftmost match for the same input.
func findFirst(data []byte, ns needleSet, backend Backend) int {
	switch backend {
	case BackendSWAR256:
		return findFirst256(data, ns)
	case BackendSWAR128:
		return findFirst128(data, ns)
	default:
		return findFirstPortable(data, ns, 0)
	}
}

// LocateTerminator finds the end of the first CSV row terminator in data,
// where a terminator is "\n", "\r\n", a lone "\r", or an occurrence of
// delimiter.
// It returns the offset one past the terminator (so data[:n] is the row,
// CRLF counted as the two bytes it occupies), or 0 if no terminator is
// present in data.
func LocateTerminator(data []byte, delimiter byte, backend Backend) int {
	return locate(data, buildNeedles(delimiter), backend)
}

// LocateLineBreak is LocateTerminator specialized for a configured
// line-break byte rather than the field delimiter; used by the chunk
// partitioner to find safe row boundaries independent of delimiter choice.
func LocateLineBreak(data []byte, lineBreak byte, backend Backend) int {
	return locate(data, buildNeedles(lineBreak), backend)
}

func locate(data []byte, ns needleSet, backend Backend) int {
	idx := findFirst(data, ns, backend)
	if idx < 0 {
		return 0
	}
	if data[idx] == '\r' && idx+1 < len(data) && data[idx+1] == '\n' {
		return idx + 2
	}
	return idx + 1
}

// IndexByte returns the index of the first occurrence of target in data,
// or -1 if absent. Used by the field iterator's unquoted fast path so that
// it shares the same backend dispatch as row scanning.
func IndexByte(data []byte, target byte, backend Backend) int {
	ns := needleSet{bytes: [3]byte{target, target, target}, n: 1}
	return findFirst(data, ns, backend)
}
