package id3

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Text encoding marker, the first byte of text frames.
const (
	textEncodingLatin1  = 0x00
	textEncodingUTF16   = 0x01 // with BOM
	textEncodingUTF16BE = 0x02 // v2.4+
	textEncodingUTF8    = 0x03 // v2.4+
)

// DecodeText converts the payload of a text frame to a UTF-8 string trimmed of
// whitespace and NUL padding. version is the tag's major version; markers 2
// and 3 only exist from v2.4 on and are read as legacy text before that.
// legacy decodes marker 0; nil means ISO-8859-1.
func DecodeText(data []byte, version uint8, legacy encoding.Encoding) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	s, err := decodeString(data[0], data[1:], version, legacy)
	if err != nil {
		return "", err
	}

	return trimText(s), nil
}

// DecodeComment splits a COMM (or USLT) payload:
//
//	Text encoding          $xx
//	Language               $xx xx xx
//	Short content descrip. <text string according to encoding> $00 (00)
//	The actual text        <full text string according to encoding>
func DecodeComment(data []byte, version uint8, legacy encoding.Encoding) (lang, desc, text string, err error) {
	if len(data) < 4 {
		return "", "", "", errors.Errorf("comment frame too short: %d bytes", len(data))
	}

	enc := data[0]
	lang = string(data[1:4])

	descBytes, textBytes := splitTerminated(data[4:], enc, version)

	desc, err = decodeString(enc, descBytes, version, legacy)
	if err != nil {
		return "", "", "", errors.Wrap(err, "decode comment description")
	}

	text, err = decodeString(enc, textBytes, version, legacy)
	if err != nil {
		return "", "", "", errors.Wrap(err, "decode comment text")
	}

	return lang, trimText(desc), trimText(text), nil
}

func decodeString(enc byte, b []byte, version uint8, legacy encoding.Encoding) (string, error) {
	if len(b) == 0 {
		return "", nil
	}

	var dec *encoding.Decoder

	switch {
	case enc == textEncodingUTF16:
		// Writers that omit the BOM are nearly always little endian.
		dec = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case enc == textEncodingUTF16BE && version >= 4:
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case enc == textEncodingUTF8 && version >= 4:
		dec = unicode.UTF8.NewDecoder()
	default:
		if legacy == nil {
			legacy = charmap.ISO8859_1
		}
		dec = legacy.NewDecoder()
	}

	out, err := dec.Bytes(b)
	if err != nil {
		return "", errors.Wrapf(err, "decode text (encoding %d)", enc)
	}

	// a second BOM survives the decoder as U+FEFF
	return strings.TrimPrefix(string(out), "\uFEFF"), nil
}

// splitTerminated splits b at the first string terminator for enc: one NUL
// for single-byte encodings, an aligned NUL pair for UTF-16.
func splitTerminated(b []byte, enc byte, version uint8) (head, rest []byte) {
	wide := enc == textEncodingUTF16 || (enc == textEncodingUTF16BE && version >= 4)

	if !wide {
		for i, c := range b {
			if c == 0 {
				return b[:i], b[i+1:]
			}
		}
		return b, nil
	}

	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i], b[i+2:]
		}
	}

	return b, nil
}

func trimText(s string) string {
	return strings.Trim(s, " \t\r\n\x00")
}
