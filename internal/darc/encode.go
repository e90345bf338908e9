package darc

import (
	"path"
	"strings"

	"github.com/n3dsbcma/bcma/internal/binio"
)

// HeaderLengthMode selects how the "table+names length" and "data section
// offset" header fields are computed when the name pool required padding
// (spec §4.4 step 9, §9 Open Question 1).
type HeaderLengthMode int

const (
	// AsymmetricHeaderLength reproduces the reference encoder's console-
	// accepted byte layout exactly: the two fields are each adjusted by a
	// different padding-derived delta.
	AsymmetricHeaderLength HeaderLengthMode = iota
	// InclusiveHeaderLength reports both fields inclusive of the name-pool
	// padding, a simpler and equally valid convention when bit-identical
	// output against the original reference encoder is not required.
	InclusiveHeaderLength
)

// Options configures Encode's alignment and header-field conventions.
type Options struct {
	NamesPadding int              // default 4
	FilePadding  int              // default 0x10
	HeaderMode   HeaderLengthMode // default AsymmetricHeaderLength
}

// DefaultOptions returns the conventions used when the BCMA orchestrator
// does not override them (spec §4.4 defaults).
func DefaultOptions() Options {
	return Options{NamesPadding: 4, FilePadding: 0x10, HeaderMode: AsymmetricHeaderLength}
}

type folder struct {
	name string
}

// Encode serializes tree into the on-disk DARC byte layout. tree must
// contain at most one directory level (spec §3.3 invariant); a deeper tree
// returns ErrTreeShape.
func Encode(tree *Tree, opts Options) ([]byte, error) {
	if opts.NamesPadding == 0 {
		opts.NamesPadding = 4
	}
	if opts.FilePadding == 0 {
		opts.FilePadding = 0x10
	}

	folders, err := foldersOf(tree)
	if err != nil {
		return nil, err
	}

	entryCount := len(folders) + len(tree.Files) + 2
	names := []byte(rootNamePoolPrefix)

	type pendingEntry struct {
		nameOff uint32
		dataOff uint32
		size    uint32
	}
	entries := make([]pendingEntry, 0, entryCount)
	entries = append(entries, pendingEntry{nameOff: folderNameOffsetFlag | 0, dataOff: 0, size: uint32(entryCount)})
	entries = append(entries, pendingEntry{nameOff: folderNameOffsetFlag | 2, dataOff: 0, size: uint32(entryCount)})

	for _, f := range folders {
		nameOff := uint32(len(names))
		names = append(names, binio.EncodeUTF16LE(f.name)...)
		entries = append(entries, pendingEntry{nameOff: folderNameOffsetFlag | nameOff, dataOff: 1, size: uint32(entryCount)})
	}

	fileEntryStart := len(entries)
	for _, f := range tree.Files {
		base := path.Base(f.Path)
		nameOff := uint32(len(names))
		names = append(names, binio.EncodeUTF16LE(base)...)
		entries = append(entries, pendingEntry{nameOff: nameOff, dataOff: 0, size: uint32(len(f.Data))})
	}

	tableEntriesSize := entryCount * 12
	namesLenRaw := headerSize + tableEntriesSize + len(names)
	pad := namesLenRaw % opts.NamesPadding
	extraPadding := 0
	if pad != 0 {
		extraPadding = opts.NamesPadding - pad
		names = append(names, make([]byte, extraPadding)...)
	}
	dataStart := headerSize + tableEntriesSize + len(names)

	fileData := make([]byte, 0)
	for i := fileEntryStart; i < len(entries); i++ {
		off := dataStart + len(fileData)
		entries[i].dataOff = uint32(off)
		fdata := tree.Files[i-fileEntryStart].Data
		fileData = append(fileData, fdata...)
		if i != len(entries)-1 {
			if diff := len(fileData) % opts.FilePadding; diff != 0 {
				fileData = append(fileData, make([]byte, opts.FilePadding-diff)...)
			}
		}
	}

	entriesData := binio.NewWriter()
	for _, e := range entries {
		entriesData.U32(e.nameOff)
		entriesData.U32(e.dataOff)
		entriesData.U32(e.size)
	}

	fileLen := headerSize + entriesData.Len() + len(names) + len(fileData)

	var tableNamesLen, dataSectionOff uint32
	switch opts.HeaderMode {
	case InclusiveHeaderLength:
		tableNamesLen = uint32(entriesData.Len() + len(names))
		dataSectionOff = uint32(dataStart)
	default: // AsymmetricHeaderLength
		namesPad4 := namesLenRaw & 3
		tableNamesLen = uint32(entriesData.Len() + len(names) - extraPadding)
		dataSectionOff = uint32(dataStart - extraPadding + namesPad4)
	}

	out := binio.NewWriter()
	out.Raw([]byte(headerMagic))
	out.U16(headerBOM)
	out.U16(headerSize)
	out.U32(headerVersion)
	out.U32(uint32(fileLen))
	out.U32(uint32(headerSize))
	out.U32(tableNamesLen)
	out.U32(dataSectionOff)
	out.Raw(entriesData.Bytes())
	out.Raw(names)
	out.Raw(fileData)

	return out.Bytes(), nil
}

func foldersOf(tree *Tree) ([]folder, error) {
	seen := map[string]bool{}
	var order []string
	for _, f := range tree.Files {
		dir := path.Dir(f.Path)
		if dir == "." {
			continue
		}
		if strings.Contains(dir, "/") {
			return nil, ErrTreeShape
		}
		if !seen[dir] {
			seen[dir] = true
			order = append(order, dir)
		}
	}
	if len(order) > 1 {
		return nil, ErrTreeShape
	}
	out := make([]folder, len(order))
	for i, n := range order {
		out[i] = folder{name: n}
	}
	return out, nil
}
