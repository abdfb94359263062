// Package unicode converts window titles between Go strings and the
// encodings native window systems expect: NUL-terminated UTF-16 for Win32
// and ISO-8859-1 for the legacy ICCCM WM_NAME property.
package unicode

import (
	"encoding/binary"
	"errors"
	"strings"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
)

// ErrEmbeddedNUL is returned when a string cannot be NUL-terminated
// without truncation.
var ErrEmbeddedNUL = errors.New("unicode: string contains NUL")

var utf16le = xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM)

// ToUTF16 encodes s as UTF-16 with a trailing NUL.
func ToUTF16(s string) ([]uint16, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	raw, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	out := make([]uint16, len(raw)/2+1)
	for i := 0; i+1 < len(raw); i += 2 {
		out[i/2] = binary.LittleEndian.Uint16(raw[i:])
	}
	return out, nil
}

// FromUTF16 decodes u up to its first NUL. Unpaired surrogates become
// U+FFFD.
func FromUTF16(u []uint16) string {
	n := 0
	for n < len(u) && u[n] != 0 {
		n++
	}
	raw := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(raw[2*i:], u[i])
	}
	out, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return string(out)
}

// ToLatin1 encodes s as ISO-8859-1. Runes outside Latin-1 become '?'.
func ToLatin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		c, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// FromLatin1 decodes an ISO-8859-1 byte string.
func FromLatin1(s string) string {
	out, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return out
}
