package simd

import "testing"

var allBackends = []Backend{BackendPortable, BackendSWAR128, BackendSWAR256}

func TestLocateTerminatorAcrossBackends(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"lf only", "a;b;c\nrest", 6},
		{"crlf", "a;b;c\r\nrest", 7},
		{"lone cr", "a;b;c\rrest", 6},
		{"no terminator", "a;b;c", 0},
		{"delimiter before newline", "a,b\nc", 2},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		for _, backend := range allBackends {
			t.Run(tt.name+"/"+backend.String(), func(t *testing.T) {
				got := LocateTerminator([]byte(tt.input), ',', backend)
				if got != tt.want {
					t.Errorf("LocateTerminator(%q, %s) = %d, want %d", tt.input, backend, got, tt.want)
				}
			})
		}
	}
}

func TestLocateLineBreakIgnoresDelimiter(t *testing.T) {
	for _, backend := range allBackends {
		got := LocateLineBreak([]byte("a;b\nrest"), '\n', backend)
		if got != 4 {
			t.Errorf("backend %s: got %d, want 4", backend, got)
		}
	}
}

func TestIndexByteAcrossBackends(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = 'x'
	}
	data[150] = ','

	for _, backend := range allBackends {
		got := IndexByte(data, ',', backend)
		if got != 150 {
			t.Errorf("backend %s: IndexByte = %d, want 150", backend, got)
		}
	}
}

func TestBackendsAgreeOnMixedInput(t *testing.T) {
	// A buffer spanning several SWAR step boundaries (32 bytes) so the
	// word-tail fallback path is exercised alongside the fast path.
	input := []byte("field1,field2,\"quo,ted\"\nfield3,field4,field5\r\nlast,row,here")

	// Every suffix is scanned, so both inputs longer than one step and
	// inputs shorter than one step (handled entirely by the tail) are seen.
	for start := range input {
		want := LocateTerminator(input[start:], ',', BackendPortable)
		for _, backend := range allBackends {
			got := LocateTerminator(input[start:], ',', backend)
			if got != want {
				t.Errorf("backend %s disagrees at offset %d: got %d, want %d", backend, start, got, want)
			}
		}
	}
}

func TestSelectBackend(t *testing.T) {
	if b := SelectBackend(true); b != BackendPortable {
		t.Errorf("forcePortable should yield BackendPortable, got %s", b)
	}
	switch SelectBackend(false) {
	case BackendPortable, BackendSWAR128, BackendSWAR256:
	default:
		t.Error("SelectBackend(false) returned an unknown backend")
	}
}

func BenchmarkLocateTerminator1KB(b *testing.B) {
	input := make([]byte, 1024)
	for i := range input {
		input[i] = 'x'
	}
	input[1000] = '\n'

	backend := SelectBackend(false)
	b.ReportAllocs()
	b.ResetTimer()
	b.SetBytes(1024)
	for i := 0; i < b.N; i++ {
		LocateTerminator(input, ',', backend)
	}
}

func FuzzLocateTerminator(f *testing.F) {
	f.Add([]byte("a,b,c\n"), byte(','))
	f.Add([]byte(`"hello",world`+"\n"), byte(','))
	f.Add([]byte("a;b;c\r\n"), byte(';'))
	f.Add([]byte{}, byte(','))

	f.Fuzz(func(t *testing.T, input []byte, delimiter byte) {
		want := LocateTerminator(input, delimiter, BackendPortable)
		for _, backend := range []Backend{BackendSWAR128, BackendSWAR256} {
			if got := LocateTerminator(input, delimiter, backend); got != want {
				t.Errorf("backend %s: got %d, want %d for %q", backend, got, want, input)
			}
		}
	})
}
