package report

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// toUTF8 converts OS wide text to UTF-8. Unpaired surrogates become U+FFFD; if the
// conversion fails outright the field is reported empty.
func toUTF8(s []uint16) string {
	if len(s) == 0 {
		return ""
	}

	b := make([]byte, 2*len(s))
	for i, c := range s {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}

	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}
