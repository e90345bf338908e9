package bcma

import "github.com/pkg/errors"

// PixelFormat names a CLIM image's storage format (spec §4.5-adjacent
// supplement — pixel bytes are never interpreted, only the format name is
// surfaced). Grounded on original_source's usefulenums.ImageFormats.
type PixelFormat uint32

const (
	PixelFormatL8     PixelFormat = 0x00
	PixelFormatA8     PixelFormat = 0x01
	PixelFormatLA4    PixelFormat = 0x02
	PixelFormatLA8    PixelFormat = 0x03
	PixelFormatHILO8  PixelFormat = 0x04
	PixelFormatRGB565 PixelFormat = 0x05
	PixelFormatRGB8   PixelFormat = 0x06
	PixelFormatRGB5A1 PixelFormat = 0x07
	PixelFormatRGBA4  PixelFormat = 0x08
	PixelFormatRGBA8  PixelFormat = 0x09
	PixelFormatETC1   PixelFormat = 0x0A
	PixelFormatETC1A4 PixelFormat = 0x0B
	PixelFormatL4     PixelFormat = 0x0C
	PixelFormatA4     PixelFormat = 0x0D
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatL8:
		return "L8"
	case PixelFormatA8:
		return "A8"
	case PixelFormatLA4:
		return "LA4"
	case PixelFormatLA8:
		return "LA8"
	case PixelFormatHILO8:
		return "HILO8"
	case PixelFormatRGB565:
		return "RGB565"
	case PixelFormatRGB8:
		return "RGB8"
	case PixelFormatRGB5A1:
		return "RGB5A1"
	case PixelFormatRGBA4:
		return "RGBA4"
	case PixelFormatRGBA8:
		return "RGBA8"
	case PixelFormatETC1:
		return "ETC1"
	case PixelFormatETC1A4:
		return "ETC1A4"
	case PixelFormatL4:
		return "L4"
	case PixelFormatA4:
		return "A4"
	default:
		return "unknown"
	}
}

// CLIMInfo is the opaque-validation summary of a .bclim blob: its fixed
// trailer, read without ever touching the pixel bytes that precede it
// (spec's non-goal: "no pixel decoding").
type CLIMInfo struct {
	Width, Height uint16
	Format        PixelFormat
}

const climTrailerSize = 0x28

// SniffCLIMHeader validates a .bclim blob's fixed trailer and reports its
// declared dimensions and pixel format, mirroring BCLIM.validate's
// read-from-the-end approach (original_source reads from `end - 0x28`,
// never from the front, since the image data itself is of unknown and
// irrelevant length to this codec).
func SniffCLIMHeader(data []byte) (CLIMInfo, error) {
	if len(data) < climTrailerSize {
		return CLIMInfo{}, errors.Wrap(ErrSizeMismatch, "bclim: blob shorter than trailer")
	}
	t := data[len(data)-climTrailerSize:]

	if string(t[0:4]) != "CLIM" {
		return CLIMInfo{}, errors.Wrapf(ErrBadMagic, "bclim: got %q", t[0:4])
	}
	bom := uint16(t[4]) | uint16(t[5])<<8
	big := bom != 0xfeff
	u16 := func(b []byte) uint16 {
		if big {
			return uint16(b[0])<<8 | uint16(b[1])
		}
		return uint16(b[0]) | uint16(b[1])<<8
	}
	u32 := func(b []byte) uint32 {
		if big {
			return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		}
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}

	if u16(t[6:8]) != 0x14 {
		return CLIMInfo{}, errors.Wrap(ErrBadHeaderField, "bclim: header size")
	}
	// t[8:12] revision, t[12:16] filesize, t[16:18] datablocks, t[18:20] pad — not independently validated.
	if string(t[20:24]) != "imag" {
		return CLIMInfo{}, errors.Wrapf(ErrBadMagic, "bclim: imag block got %q", t[20:24])
	}
	// t[24:28] parseinfo, unused here.
	w := u16(t[28:30])
	h := u16(t[30:32])
	format := u32(t[32:36])

	return CLIMInfo{Width: w, Height: h, Format: PixelFormat(format)}, nil
}
