// Package binio provides the endian-aware, bounded-buffer byte reader and
// writer shared by every binary format in this module. It follows the
// teacher's sync.Pool-backed buffer helpers (internal/utils/bufferpool.go,
// internal/utils/endian.go) generalized into a cursor-based reader/writer
// pair, since the source formats (DARC, BCLYT) read fields in a long
// straight-line sequence rather than one field at a time from a ReaderAt.
package binio

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrOutOfRange is wrapped whenever a read or write would fall outside the
// reader's bounded buffer.
var ErrOutOfRange = errors.New("binio: offset out of range")

// Reader wraps an in-memory buffer with an absolute-offset API and a
// cursor-relative API on top of it. There is no streaming mode: every
// format handled by this module fits comfortably in memory (spec §5).
type Reader struct {
	buf   []byte
	index int
}

// NewReader wraps buf for reading. The cursor starts at 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total buffer length.
func (r *Reader) Len() int { return len(r.buf) }

// Bytes returns the underlying buffer. Callers must not mutate it.
func (r *Reader) Bytes() []byte { return r.buf }

// Index returns the current cursor position.
func (r *Reader) Index() int { return r.index }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(off int) { r.index = off }

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) { r.index += n }

func (r *Reader) bounds(off, n int) error {
	if off < 0 || n < 0 || off+n > len(r.buf) {
		return errors.Wrapf(ErrOutOfRange, "offset %d length %d buffer size %d", off, n, len(r.buf))
	}
	return nil
}

// ReadAt reads n bytes at an absolute offset without moving the cursor.
func (r *Reader) ReadAt(off, n int) ([]byte, error) {
	if err := r.bounds(off, n); err != nil {
		return nil, err
	}
	return r.buf[off : off+n], nil
}

// Read reads n bytes at the cursor and advances it.
func (r *Reader) Read(n int) ([]byte, error) {
	b, err := r.ReadAt(r.index, n)
	if err != nil {
		return nil, err
	}
	r.index += n
	return b, nil
}

// U8At / U16At / U32At read little-endian unsigned integers at an absolute
// offset without moving the cursor.
func (r *Reader) U8At(off int) (uint8, error) {
	b, err := r.ReadAt(off, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) U16At(off int) (uint16, error) {
	b, err := r.ReadAt(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) U16BEAt(off int) (uint16, error) {
	b, err := r.ReadAt(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) U32At(off int) (uint32, error) {
	b, err := r.ReadAt(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) F32At(off int) (float32, error) {
	v, err := r.U32At(off)
	if err != nil {
		return 0, err
	}
	return math32frombits(v), nil
}

// U8 / U16 / U32 / F32 read at the cursor and advance it.
func (r *Reader) U8() (uint8, error) {
	v, err := r.U8At(r.index)
	if err == nil {
		r.index++
	}
	return v, err
}

func (r *Reader) U16() (uint16, error) {
	v, err := r.U16At(r.index)
	if err == nil {
		r.index += 2
	}
	return v, err
}

func (r *Reader) U32() (uint32, error) {
	v, err := r.U32At(r.index)
	if err == nil {
		r.index += 4
	}
	return v, err
}

func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return math32frombits(v), nil
}

// NulTerminatedASCII reads bytes starting at off until a NUL, returning the
// decoded string and not including the terminator.
func (r *Reader) NulTerminatedASCII(off int) (string, error) {
	end := off
	for {
		b, err := r.U8At(end)
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		end++
	}
	return string(r.buf[off:end]), nil
}

// FixedString reads n bytes at off and trims trailing NUL padding.
func (r *Reader) FixedString(off, n int) (string, error) {
	b, err := r.ReadAt(off, n)
	if err != nil {
		return "", err
	}
	i := 0
	for i < len(b) && b[i] != 0 {
		i++
	}
	return string(b[:i]), nil
}
