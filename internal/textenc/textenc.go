// Package textenc maps between Go strings and the UTF-8 text persisted in
// PREMIS documents.
package textenc

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"

	premiserrors "github.com/jacoelho/premis/errors"
)

// Text returns s unchanged when it is valid UTF-8 made only of characters
// XML 1.0 allows in a document.
func Text(op, s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", premiserrors.Newf(premiserrors.ErrEncoding, op, "invalid UTF-8 in %q", truncate(s))
	}
	for i, r := range s {
		if !IsXMLChar(r) {
			return "", premiserrors.Newf(premiserrors.ErrEncoding, op, "character %U at byte %d is not allowed in XML", r, i)
		}
	}
	return s, nil
}

// IsXMLChar reports whether r matches the XML 1.0 Char production.
func IsXMLChar(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}

// CharsetReader returns a reader converting input from the named IANA
// charset to UTF-8. It has the signature expected by xml.Decoder.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	if isUTF8(label) {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, premiserrors.Wrap(premiserrors.ErrEncoding, "charset "+label, err)
	}
	if enc == nil {
		return nil, premiserrors.Newf(premiserrors.ErrEncoding, "charset "+label, "unsupported charset")
	}
	return enc.NewDecoder().Reader(input), nil
}

func isUTF8(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}

func truncate(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
