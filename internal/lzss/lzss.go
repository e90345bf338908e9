// Package lzss implements the Nintendo LZSS-10 decompressor used by BCMA's
// inner archives (spec §4.2, component A). Grounded on the original
// implementation at original_source/internal/lzss3_dec.py
// (decompress_raw_lzss10): there is no third-party Go library for this
// exact Nintendo-specific bitstream anywhere in the retrieval pack, so it
// is hand-written against the bit-for-bit algorithm description rather
// than adapted from a general-purpose LZ77/LZSS package.
package lzss

import "github.com/pkg/errors"

// ErrBadHeader is returned when the first byte is not the LZSS-10 marker.
var ErrBadHeader = errors.New("lzss: bad header, expected 0x10 marker")

// ErrSizeMismatch is returned when decompression does not produce exactly
// the declared decompressed length.
var ErrSizeMismatch = errors.New("lzss: decompressed size does not match header")

// ErrInvalidToken is a defensive check: a flag bit can only ever be 0 or 1
// since it comes from a single bit of a byte, but the spec calls for the
// check to exist explicitly (§4.2).
var ErrInvalidToken = errors.New("lzss: invalid flag token")

// Decompress decompresses an LZSS-10 stream: a 4-byte header (0x10 marker
// plus a little-endian 24-bit decompressed size) followed by the token
// stream.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, errors.Wrap(ErrBadHeader, "input shorter than header")
	}
	if data[0] != 0x10 {
		return nil, errors.Wrapf(ErrBadHeader, "got 0x%02x", data[0])
	}
	size := uint32(data[1]) | uint32(data[2])<<8 | uint32(data[3])<<16
	return decompressRaw(data[4:], int(size))
}

// decompressRaw implements decompress_raw_lzss10 with disp_extra=1 (the
// non-overlay variant the BCMA toolchain uses).
func decompressRaw(payload []byte, decompressedSize int) ([]byte, error) {
	out := make([]byte, 0, decompressedSize)
	pos := 0

	readByte := func() (byte, bool) {
		if pos >= len(payload) {
			return 0, false
		}
		b := payload[pos]
		pos++
		return b, true
	}

	for len(out) < decompressedSize {
		flagByte, ok := readByte()
		if !ok {
			return nil, errors.Wrap(ErrSizeMismatch, "ran out of input reading control byte")
		}
		for bit := 7; bit >= 0; bit-- {
			flag := (flagByte >> uint(bit)) & 1
			switch flag {
			case 0:
				b, ok := readByte()
				if !ok {
					return nil, errors.Wrap(ErrSizeMismatch, "ran out of input copying literal")
				}
				out = append(out, b)
			case 1:
				hi, ok1 := readByte()
				lo, ok2 := readByte()
				if !ok1 || !ok2 {
					return nil, errors.Wrap(ErrSizeMismatch, "ran out of input reading back-reference token")
				}
				sh := uint16(hi)<<8 | uint16(lo)
				count := int((sh>>12)&0xf) + 3
				disp := int(sh&0xfff) + 1
				if disp > len(out) {
					return nil, errors.Wrapf(ErrSizeMismatch, "back-reference displacement %d exceeds output so far (%d)", disp, len(out))
				}
				for i := 0; i < count; i++ {
					out = append(out, out[len(out)-disp])
				}
			default:
				return nil, ErrInvalidToken
			}
			if len(out) >= decompressedSize {
				break
			}
		}
	}

	if len(out) != decompressedSize {
		return nil, errors.Wrapf(ErrSizeMismatch, "got %d bytes, wanted %d", len(out), decompressedSize)
	}
	return out, nil
}

// Compressor compresses bytes into an LZSS-10 stream. The spec (§9) treats
// the encoder as an external, pluggable capability rather than something
// specified here; callers inject a concrete implementation (a native
// LZSS-10 encoder, or a call out to one) via this function type.
type Compressor func(data []byte) ([]byte, error)
