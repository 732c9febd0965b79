package csvmap

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func stripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == utf8BOM[0] && data[1] == utf8BOM[1] && data[2] == utf8BOM[2] {
		return data[3:]
	}
	return data
}

func encodingFor(e Encoding) encoding.Encoding {
	switch e {
	case Windows1252:
		return charmap.Windows1252
	case Windows1251:
		return charmap.Windows1251
	case ISO8859_1:
		return charmap.ISO8859_1
	case ISO8859_2:
		return charmap.ISO8859_2
	case ISO8859_15:
		return charmap.ISO8859_15
	case KOI8R:
		return charmap.KOI8R
	case ShiftJIS:
		return japanese.ShiftJIS
	case GBK:
		return simplifiedchinese.GBK
	case Big5:
		return traditionalchinese.Big5
	default:
		return nil
	}
}

// decodeBytes applies e's byte->text transform to data, stripping a
// leading UTF-8 BOM first. UTF-8 is treated as identity: un-mappable
// non-UTF8 input decoders substitute U+FFFD rather than raising, per the
// default lossy-decoder policy; strict mode is not yet exposed (ParseError
// is reserved for future strict parsing per the error taxonomy).
func decodeBytes(data []byte, e Encoding) (string, error) {
	data = stripBOM(data)
	if e == UTF8 {
		return string(data), nil
	}
	enc := encodingFor(e)
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", newError(DecodeError, "decode", err)
	}
	return string(out), nil
}
