package parser

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/erraggy/jsontools/jsonerrors"
)

// sourceEncoding identifies the byte encoding an input document arrived in.
type sourceEncoding string

const (
	encUTF8    sourceEncoding = "UTF-8"
	encUTF16LE sourceEncoding = "UTF-16LE"
	encUTF16BE sourceEncoding = "UTF-16BE"
	encUTF32LE sourceEncoding = "UTF-32LE"
	encUTF32BE sourceEncoding = "UTF-32BE"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeEncoding transcodes input to UTF-8. JSON interchange permits
// UTF-16 and UTF-32 streams, recognized either by BOM or by the null-byte
// pattern of their first ASCII character; both are handled here so the
// rest of the parser only ever sees UTF-8. A UTF-8 BOM is stripped.
func normalizeEncoding(data []byte) ([]byte, sourceEncoding, error) {
	enc, hasBOM := detectEncoding(data)
	if enc == encUTF8 {
		if hasBOM {
			return data[len(utf8BOM):], enc, nil
		}
		return data, enc, nil
	}

	bom16, bom32 := unicode.IgnoreBOM, utf32.IgnoreBOM
	if hasBOM {
		bom16, bom32 = unicode.UseBOM, utf32.UseBOM
	}

	var dec transform.Transformer
	switch enc {
	case encUTF16LE:
		dec = unicode.UTF16(unicode.LittleEndian, bom16).NewDecoder()
	case encUTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, bom16).NewDecoder()
	case encUTF32LE:
		dec = utf32.UTF32(utf32.LittleEndian, bom32).NewDecoder()
	case encUTF32BE:
		dec = utf32.UTF32(utf32.BigEndian, bom32).NewDecoder()
	}

	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, enc, &jsonerrors.ParseError{
			Message: "malformed " + string(enc) + " input",
			Cause:   err,
		}
	}
	return out, enc, nil
}

// detectEncoding inspects the first bytes of data for a BOM or, failing
// that, the null-byte layout of an ASCII first character.
func detectEncoding(data []byte) (sourceEncoding, bool) {
	switch {
	case len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0xFE && data[3] == 0xFF:
		return encUTF32BE, true
	case len(data) >= 4 && data[0] == 0xFF && data[1] == 0xFE && data[2] == 0x00 && data[3] == 0x00:
		return encUTF32LE, true
	case bytes.HasPrefix(data, utf8BOM):
		return encUTF8, true
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return encUTF16BE, true
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return encUTF16LE, true
	}

	// No BOM. A document must start with an ASCII character, so null bytes
	// in the first four positions reveal wider encodings.
	if len(data) >= 4 {
		switch {
		case data[0] == 0x00 && data[1] == 0x00 && data[2] == 0x00 && data[3] != 0x00:
			return encUTF32BE, false
		case data[0] != 0x00 && data[1] == 0x00 && data[2] == 0x00 && data[3] == 0x00:
			return encUTF32LE, false
		case data[0] == 0x00 && data[1] != 0x00:
			return encUTF16BE, false
		case data[0] != 0x00 && data[1] == 0x00:
			return encUTF16LE, false
		}
	}
	return encUTF8, false
}
