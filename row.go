package csvmap

import "github.com/csvquery/csvmap/internal/simd"

// Row wraps a borrowed slice view of one row's bytes (terminator already
// stripped), together with the parsing configuration needed to walk its
// fields. Rows are ephemeral: their lifetime is bounded by the lifetime of
// the mapping or slice they were produced from.
type Row struct {
	data              []byte
	delimiter         byte
	quote             byte
	forcePortableScan bool
	backend           simd.Backend
}

func newRow(data []byte, delimiter, quote byte, forcePortableScan bool, backend simd.Backend) Row {
	return Row{
		data:              data,
		delimiter:         delimiter,
		quote:             quote,
		forcePortableScan: forcePortableScan,
		backend:           backend,
	}
}

// IsEmpty reports whether the row's byte view has zero length. A
// zero-length row still yields one empty field from FieldIter.
func (r Row) IsEmpty() bool { return len(r.data) == 0 }

// RawBytes returns the row's borrowed byte view, terminator excluded.
func (r Row) RawBytes() []byte { return r.data }

// DecodeLine decodes the whole row as text under enc.
func (r Row) DecodeLine(enc Encoding) (string, error) {
	return decodeBytes(r.data, enc)
}

// FieldIter constructs a fresh field iterator over the row, independent of
// any other iterator or FieldAt/CountFields call on the same row.
func (r Row) FieldIter() *FieldIter {
	return &FieldIter{
		data:      r.data,
		delimiter: r.delimiter,
		quote:     r.quote,
		backend:   r.backend,
	}
}

// FieldAt returns the n-th (0-based) field, or an empty Field if the row
// has fewer than n+1 fields. It walks a fresh iterator and does not
// perturb any other call's cursor state.
func (r Row) FieldAt(n int) Field {
	it := r.FieldIter()
	for i := 0; ; i++ {
		f, ok := it.Next()
		if !ok {
			return Field{}
		}
		if i == n {
			return f
		}
	}
}

// CountFields returns one plus the number of delimiter bytes not enclosed
// in a quoted region, by walking a fresh independent iterator to
// completion.
func (r Row) CountFields() int {
	it := r.FieldIter()
	n := 0
	for {
		_, ok := it.Next()
		if !ok {
			return n
		}
		n++
	}
}

// FieldIter walks a Row's bytes yielding Field views, honoring quoted-field
// escape semantics. A FieldIter is not safe for concurrent use.
type FieldIter struct {
	data      []byte
	delimiter byte
	quote     byte
	backend   simd.Backend

	cursor    int
	exhausted bool
}

// Next returns the next field and true, or a zero Field and false once the
// row is exhausted. Quoted fields have their enclosing quote bytes
// stripped; an internal doubled-quote escape pair is preserved unchanged
// in the yielded bytes.
func (it *FieldIter) Next() (Field, bool) {
	if it.exhausted {
		return Field{}, false
	}
	if it.cursor == len(it.data) {
		it.exhausted = true
		return Field{data: it.data[it.cursor:it.cursor]}, true
	}
	if it.quote != 0 && it.data[it.cursor] == it.quote {
		return it.nextQuoted(), true
	}
	return it.nextUnquoted(), true
}

func (it *FieldIter) nextUnquoted() Field {
	start := it.cursor
	rel := simd.IndexByte(it.data[start:], it.delimiter, it.backend)
	if rel < 0 {
		it.cursor = len(it.data)
		it.exhausted = true
		return Field{data: it.data[start:]}
	}
	end := start + rel
	it.cursor = end + 1
	return Field{data: it.data[start:end]}
}

func (it *FieldIter) nextQuoted() Field {
	// it.data[it.cursor] == it.quote; scan from just past the leading quote.
	contentStart := it.cursor + 1
	i := contentStart
	for {
		rel := simd.IndexByte(it.data[i:], it.quote, it.backend)
		if rel < 0 {
			// Unterminated quote: the rest of the row is the field.
			it.cursor = len(it.data)
			it.exhausted = true
			return Field{data: it.data[contentStart:]}
		}
		closeIdx := i + rel
		if closeIdx+1 < len(it.data) && it.data[closeIdx+1] == it.quote {
			// Doubled quote: escaped literal quote, keep scanning.
			i = closeIdx + 2
			continue
		}
		content := it.data[contentStart:closeIdx]
		after := closeIdx + 1
		if after < len(it.data) && it.data[after] == it.delimiter {
			it.cursor = after + 1
		} else {
			it.cursor = after
			it.exhausted = true
		}
		return Field{data: content}
	}
}
