package darc

import (
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/n3dsbcma/bcma/internal/binio"
)

type tableEntry struct {
	nameOff uint32
	dataOff uint32
	size    uint32
}

func (e tableEntry) isFolder() bool { return e.nameOff&folderNameOffsetFlag != 0 }
func (e tableEntry) nameOffset() uint32 {
	return e.nameOff &^ folderNameOffsetFlag
}

// Decode parses a complete DARC buffer into a Tree.
func Decode(data []byte) (*Tree, error) {
	r := binio.NewReader(data)

	magic, err := r.ReadAt(0, 4)
	if err != nil {
		return nil, errors.Wrap(err, "darc: reading header magic")
	}
	if string(magic) != headerMagic {
		return nil, errors.Errorf("darc: bad magic %q", magic)
	}
	bom, err := r.U16At(4)
	if err != nil || bom != headerBOM {
		return nil, errors.Errorf("darc: bad byte-order-mark 0x%04x", bom)
	}
	hsize, err := r.U16At(6)
	if err != nil || hsize != headerSize {
		return nil, errors.Errorf("darc: bad header size 0x%04x", hsize)
	}
	version, err := r.U32At(8)
	if err != nil || version != headerVersion {
		return nil, errors.Errorf("darc: bad version 0x%08x", version)
	}
	fileLen, err := r.U32At(12)
	if err != nil {
		return nil, err
	}
	if int(fileLen) != len(data) {
		return nil, errors.Errorf("darc: declared file length %d does not match buffer size %d", fileLen, len(data))
	}
	tableOff, err := r.U32At(16)
	if err != nil || tableOff != headerSize {
		return nil, errors.Errorf("darc: bad table offset 0x%08x", tableOff)
	}
	// filetablelen (20) and filedataoff (24) are not independently needed
	// to reconstruct the tree: entry count comes from the first entry, and
	// file data offsets are stored directly in each entry.

	firstEntry, err := readEntry(r, int(tableOff))
	if err != nil {
		return nil, err
	}
	entryCount := int(firstEntry.size)
	if entryCount < 2 {
		return nil, errors.Errorf("darc: implausible entry count %d", entryCount)
	}

	entries := make([]tableEntry, entryCount)
	entries[0] = firstEntry
	for i := 1; i < entryCount; i++ {
		e, err := readEntry(r, int(tableOff)+i*12)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	namePoolStart := int(tableOff) + entryCount*12

	tree := &Tree{}
	d := &decoder{r: r, entries: entries, namePoolStart: namePoolStart, fileLen: int(fileLen)}
	if err := d.walk(2, entryCount, "", tree); err != nil {
		return nil, err
	}
	return tree, nil
}

type decoder struct {
	r             *binio.Reader
	entries       []tableEntry
	namePoolStart int
	fileLen       int
}

func (d *decoder) readName(e tableEntry) (string, error) {
	off := d.namePoolStart + int(e.nameOffset())
	return d.r.NulTerminatedUTF16LE(off)
}

func (d *decoder) walk(lo, hi int, pathRoot string, tree *Tree) error {
	idx := lo
	for idx < hi {
		e := d.entries[idx]
		name, err := d.readName(e)
		if err != nil {
			return errors.Wrapf(err, "darc: reading name for entry %d", idx)
		}
		if e.isFolder() {
			if int(e.size) > len(d.entries) {
				return errors.Wrap(ErrTreeShape, "folder descendant-end index beyond table")
			}
			if pathRoot != "" {
				// A second nested folder would mean more than one
				// directory level, which this codec does not support.
				return ErrTreeShape
			}
			if err := d.walk(idx+1, int(e.size), path.Join(pathRoot, name), tree); err != nil {
				return err
			}
			idx = int(e.size) - 1
		} else {
			start := int(e.dataOff)
			end := start + int(e.size)
			if start < 0 || end > d.fileLen || end < start {
				return errors.Errorf("darc: file entry %d data range [%d,%d) exceeds file length %d", idx, start, end, d.fileLen)
			}
			data, err := d.r.ReadAt(start, end-start)
			if err != nil {
				return err
			}
			full := name
			if pathRoot != "" {
				full = path.Join(pathRoot, name)
			}
			full = strings.ReplaceAll(full, `\`, "/")
			tree.Add(full, append([]byte(nil), data...))
		}
		idx++
	}
	return nil
}

func readEntry(r *binio.Reader, off int) (tableEntry, error) {
	nameOff, err := r.U32At(off)
	if err != nil {
		return tableEntry{}, err
	}
	dataOff, err := r.U32At(off + 4)
	if err != nil {
		return tableEntry{}, err
	}
	size, err := r.U32At(off + 8)
	if err != nil {
		return tableEntry{}, err
	}
	return tableEntry{nameOff: nameOff, dataOff: dataOff, size: size}, nil
}
