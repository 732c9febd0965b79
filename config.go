package csvmap

import "github.com/rs/zerolog"

// Encoding tags the byte->text transform applied when a Field or Row is
// decoded. UTF8 is the identity transform; the rest delegate to
// golang.org/x/text/encoding.
type Encoding int

const (
	UTF8 Encoding = iota
	Windows1252
	Windows1251
	ISO8859_1
	ISO8859_2
	ISO8859_15
	KOI8R
	ShiftJIS
	GBK
	Big5
)

func (e Encoding) String() string {
	switch e {
	case Windows1252:
		return "windows-1252"
	case Windows1251:
		return "windows-1251"
	case ISO8859_1:
		return "iso-8859-1"
	case ISO8859_2:
		return "iso-8859-2"
	case ISO8859_15:
		return "iso-8859-15"
	case KOI8R:
		return "koi8-r"
	case ShiftJIS:
		return "shift-jis"
	case GBK:
		return "gbk"
	case Big5:
		return "big5"
	default:
		return "utf-8"
	}
}

// Config is the immutable configuration shared by Reader, SliceReader, and
// the parallel dispatcher. Once a reader or partition is constructed from
// a Config, the Config's values never change.
type Config struct {
	Delimiter         byte
	Quote             byte
	LineBreak         byte
	Encoding          Encoding
	ForcePortableScan bool

	// Logger is optional; when nil, the reader and dispatcher log nothing.
	Logger *zerolog.Logger
}

// DefaultConfig returns the conventional CSV configuration: comma
// delimiter, double-quote quoting, LF line break, UTF-8 decoding.
func DefaultConfig() Config {
	return Config{
		Delimiter: ',',
		Quote:     '"',
		LineBreak: '\n',
		Encoding:  UTF8,
	}
}

func (c Config) logger() *zerolog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	l := zerolog.Nop()
	return &l
}
