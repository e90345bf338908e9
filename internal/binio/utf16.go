package binio

import (
	"unicode/utf16"

	"github.com/pkg/errors"
)

// NulTerminatedUTF16LE reads a UTF-16LE code unit sequence starting at off
// until a zero code unit, decoding it to a string. Grounded on pdfcpu's
// types/utf16.go, which favors unicode/utf16 plus explicit error wrapping
// over a third-party text-encoding package for this exact narrow concern.
func (r *Reader) NulTerminatedUTF16LE(off int) (string, error) {
	var units []uint16
	for {
		u, err := r.U16At(off)
		if err != nil {
			return "", err
		}
		off += 2
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units)), nil
}

// DecodeUTF16LE decodes a fixed byte slice as UTF-16LE text, trimming all
// trailing NUL code units. Spec §7 DecodeText: on failure the Txt1 decoder
// substitutes a sentinel string and continues rather than aborting; it
// does not log.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		b = append(append([]byte{}, b...), 0)
	}
	units := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u := uint16(b[i]) | uint16(b[i+1])<<8
		units = append(units, u)
	}
	for len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) && units[i+1] >= 0xDC00 && units[i+1] <= 0xDFFF {
			i++ // well-formed surrogate pair
			continue
		}
		if u >= 0xD800 && u <= 0xDFFF {
			// Lone or mismatched surrogate half; unicode/utf16.Decode
			// silently substitutes U+FFFD, but the spec wants this to be
			// a reported, recoverable condition.
			return string(utf16.Decode(units)), errors.New("binio: invalid UTF-16LE surrogate sequence")
		}
	}
	return string(utf16.Decode(units)), nil
}

// EncodeUTF16LE encodes s as UTF-16LE code units followed by a single NUL
// terminator code unit, matching the wire layout Txt1 and DARC names use.
func EncodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units)*2+2)
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	out = append(out, 0, 0)
	return out
}
