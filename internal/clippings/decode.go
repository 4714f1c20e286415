package clippings

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is returned when the export bytes decode cleanly under
// none of the supported encodings.
var ErrUndecodable = errors.New("clippings: undecodable input")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw export bytes to a string, attempting UTF-8 with BOM,
// plain UTF-8, Windows-1251, and Latin-1 in that order. Kindle firmware and
// intermediate tooling disagree on the encoding, so the reader cannot
// assume one.
func Decode(raw []byte) (string, error) {
	if bytes.HasPrefix(raw, utf8BOM) {
		body := raw[len(utf8BOM):]
		if utf8.Valid(body) {
			return string(body), nil
		}
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	for _, cm := range []*charmap.Charmap{charmap.Windows1251, charmap.ISO8859_1} {
		decoded, err := cm.NewDecoder().Bytes(raw)
		if err == nil {
			return string(decoded), nil
		}
	}

	return "", fmt.Errorf("%w: tried utf-8-sig, utf-8, cp1251, latin1", ErrUndecodable)
}
