// Package darc implements Nintendo's "Directory ARChive" container (spec
// §3.3 and §4.4, component D): a flat table plus a UTF-16LE name pool plus
// a data blob, encoding a filesystem at most one directory level deep.
// Grounded on original_source/internal/extraction/darc.py and
// internal/creation/darc.py, and structurally on the teacher's own
// group/symbol-table handling (internal/structures/symboltable.go,
// internal/structures/localheap.go) which face the same problem: a flat
// on-disk table plus a separate name heap describing a shallow directory.
package darc

import "github.com/pkg/errors"

const (
	headerMagic   = "darc"
	headerBOM     = 0xfeff
	headerSize    = 0x1c
	headerVersion = 0x01000000

	folderNameOffsetFlag = 0x01000000
	rootNamePoolPrefix   = "\x00\x00\x2e\x00\x00\x00" // NUL, NUL, '.', NUL, NUL, NUL
)

// ErrTreeShape is returned when a tree being encoded has more than one
// subdirectory level, which this codec never needs to support (spec §3.3
// invariant: BCMA inner trees are always "blyt/" or "timg/" plus files).
var ErrTreeShape = errors.New("darc: tree has more than one directory level")

// File is a single named file and its bytes, in the order files should be
// emitted (encode) or were found (decode).
type File struct {
	Path string // forward-slash-joined path, e.g. "blyt/A.bclyt"
	Data []byte
}

// Tree is the in-memory representation of a DARC's contents: at most one
// flat subdirectory of files, addressed by their full path.
type Tree struct {
	Files []File
}

// Get returns the bytes for path, or nil, false if absent.
func (t *Tree) Get(path string) ([]byte, bool) {
	for _, f := range t.Files {
		if f.Path == path {
			return f.Data, true
		}
	}
	return nil, false
}

// Add appends a file, preserving insertion order (spec §5: "table-entry
// order within a DARC must match insertion order of files from the
// document").
func (t *Tree) Add(path string, data []byte) {
	t.Files = append(t.Files, File{Path: path, Data: data})
}
