// Package rle implements the reversible hex-RLE codec used to embed
// texture bytes as text inside the editable BCMA document (spec §4.3,
// component B). Grounded on original_source/internal/my_rle.py.
package rle

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	hexAlphabet   = "0123456789abcdef"
	alphaAlphabet = "ABCDEFGHIJKLMNOP"
)

var toAlpha [256]byte
var toHex [256]byte

func init() {
	for i := 0; i < len(hexAlphabet); i++ {
		toAlpha[hexAlphabet[i]] = alphaAlphabet[i]
		toHex[alphaAlphabet[i]] = hexAlphabet[i]
	}
}

// Encode maps lowercase hex digits onto A-P and run-length encodes: a
// maximal run of length n>=2 of character c becomes "<n>c"; a run of
// length 1 is just "c". s must be lowercase hex of even length (it is
// texture bytes rendered as hex.EncodeToString).
func Encode(s string) string {
	if len(s) == 0 {
		return ""
	}
	mapped := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		mapped[i] = toAlpha[s[i]]
	}

	var out strings.Builder
	run := 1
	prev := mapped[0]
	for i := 1; i < len(mapped); i++ {
		c := mapped[i]
		if c != prev {
			writeRun(&out, prev, run)
			run = 1
			prev = c
		} else {
			run++
		}
	}
	writeRun(&out, prev, run)
	return out.String()
}

func writeRun(out *strings.Builder, c byte, run int) {
	if run != 1 {
		out.WriteString(strconv.Itoa(run))
	}
	out.WriteByte(c)
}

// Decode is the inverse of Encode: consume decimal digits into a run
// length (default 1), then on the next alphabetic character emit that many
// copies, finally mapping A-P back to lowercase hex.
func Decode(s string) (string, error) {
	var out strings.Builder
	num := 0
	haveNum := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			num = num*10 + int(c-'0')
			haveNum = true
			continue
		}
		hexChar := toHex[c]
		if hexChar == 0 {
			return "", errors.Errorf("rle: unexpected character %q at position %d", c, i)
		}
		run := 1
		if haveNum {
			run = num
		}
		for j := 0; j < run; j++ {
			out.WriteByte(hexChar)
		}
		num = 0
		haveNum = false
	}
	return out.String(), nil
}
