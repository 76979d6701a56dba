package textenc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Decode converts raw file bytes to a string using a best-effort policy:
// valid UTF-8 is returned as-is, otherwise the bytes are reinterpreted as
// ISO-8859-1 (Latin-1). Decode never fails; in the unreachable case where
// the Latin-1 transform errors, invalid sequences are replaced with the
// Unicode replacement character.
func Decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return string(bytes.ToValidUTF8(data, []byte("�")))
	}
	return string(decoded)
}
