package id3

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the text encoding byte that precedes encodable text
// fields in a frame.
type Encoding byte

const (
	// ISO88591 is the default, single byte encoding. id3 documents
	// call it "ASCII" even though it covers all of Latin-1.
	ISO88591 Encoding = iota
	// UTF16 is UTF-16 with a leading byte order mark.
	UTF16
	// UTF16BE is big endian UTF-16 without a byte order mark (v2.4).
	UTF16BE
	// UTF8 is UTF-8 (v2.4).
	UTF8
)

var (
	bomBE = []byte{0xFE, 0xFF}
	bomLE = []byte{0xFF, 0xFE}
)

var (
	utf16BE = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

func (e Encoding) String() string {
	switch e {
	case ISO88591:
		return "ISO-8859-1"
	case UTF16:
		return "UTF-16"
	case UTF16BE:
		return "UTF-16BE"
	case UTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("Encoding(%d)", byte(e))
	}
}

// Valid reports whether e is a known encoding.
func (e Encoding) Valid() bool {
	return e <= UTF8
}

// ValidFor reports whether e may be written in a tag of version v.
func (e Encoding) ValidFor(v Version) bool {
	switch e {
	case ISO88591, UTF16:
		return true
	case UTF16BE, UTF8:
		return v >= V24
	}
	return false
}

// width is the size in bytes of one code unit, which is also the size
// of the string terminator.
func (e Encoding) width() int {
	switch e {
	case UTF16, UTF16BE:
		return 2
	default:
		return 1
	}
}

// encodeText renders s, which is UTF-8, in encoding e. UTF-16 text
// always starts with a big endian byte order mark. Runes that
// ISO-8859-1 cannot represent are rendered as '?'.
func encodeText(s string, e Encoding) []byte {
	switch e {
	case UTF16, UTF16BE:
		b, err := utf16BE.NewEncoder().Bytes([]byte(s))
		if err != nil {
			b = nil
		}
		if e == UTF16 {
			return concat(bomBE, b)
		}
		return b
	case UTF8:
		return []byte(s)
	default:
		latin := strings.Map(func(r rune) rune {
			if r > 0xff {
				return '?'
			}
			return r
		}, s)
		b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(latin))
		if err != nil {
			return []byte(latin)
		}
		return b
	}
}

// decodeText converts b from encoding e to UTF-8. For UTF-16 a little
// endian byte order mark swaps the byte order; text without a byte
// order mark is read as big endian.
func decodeText(b []byte, e Encoding) string {
	switch e {
	case UTF16, UTF16BE:
		dec := utf16BE
		switch {
		case hasPrefix(b, bomLE):
			dec = utf16LE
			b = b[2:]
		case hasPrefix(b, bomBE):
			b = b[2:]
		}
		out, err := dec.NewDecoder().Bytes(b)
		if err != nil {
			return ""
		}
		return string(out)
	case UTF8:
		return string(b)
	default:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
		if err != nil {
			return string(b)
		}
		return string(out)
	}
}

func hasPrefix(b, prefix []byte) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == string(prefix)
}
