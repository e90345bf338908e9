package bclyt

import (
	"github.com/pkg/errors"

	"github.com/n3dsbcma/bcma/internal/binio"
)

// UserDataOverride selects how a UserData entry's name string is placed
// relative to its payload (spec §4.9, the "only observable asymmetry in
// UserData layout"). The reference implementation holds this as a
// process-wide global; here it is an explicit argument to Encode so
// concurrent layouts never share it (spec §5).
type UserDataOverride int

const (
	// OverrideAdjacent stores every entry's name immediately after its own
	// payload (override = 1, the reference default).
	OverrideAdjacent UserDataOverride = 1
	// OverrideTrailing collects every entry's name into a block appended
	// after all payloads (override = 2).
	OverrideTrailing UserDataOverride = 2
	// OverrideAuto decides per-entry: entries named "IsAreaRect" or
	// "LayoutIndex" use OverrideTrailing, everything else uses
	// OverrideAdjacent (override = -1, enabled only for "info" sub-pages —
	// spec §4.8).
	OverrideAuto UserDataOverride = -1
)

func (o UserDataOverride) resolve(entryName string) UserDataOverride {
	if o != OverrideAuto {
		return o
	}
	if entryName == "IsAreaRect" || entryName == "LayoutIndex" {
		return OverrideTrailing
	}
	return OverrideAdjacent
}

// UserDataEntry is one named payload attached to a panel (spec §3.2).
// Exactly one of Str/Ints/Floats is populated, selected by Type.
type UserDataEntry struct {
	Name   string
	Type   UsdEntryDataType
	Str    string
	Ints   []int32
	Floats []float32
}

func (e *UserDataEntry) setting() int {
	switch e.Type {
	case UsdString:
		return len(e.Str)
	case UsdInts:
		return len(e.Ints)
	case UsdFloats:
		return len(e.Floats)
	default:
		return 0
	}
}

// EncodeUserData serializes entries into a usd1 section payload (everything
// after the 8-byte section header), reproducing the reference encoder's
// row-relative offset arithmetic (spec §4.9, verified against scenario S6):
// each entry's nameOff/dataOff are measured relative to that entry's own
// 12-byte table row, with "deltaoff" — the distance from that row to the
// end of the table — folded in so the reader can add it straight onto the
// row's own start address.
func EncodeUserData(entries []UserDataEntry, override UserDataOverride) []byte {
	n := len(entries)
	type row struct {
		name         string
		internalType int
		nameOff      int
		dataOff      int
		setting      int
		typ          UsdEntryDataType
	}
	rows := make([]row, n)
	data := binio.NewWriter()

	deltaoff := 12 * n
	for i, e := range entries {
		mode := override.resolve(e.Name)
		internalType := 1
		if mode == OverrideTrailing {
			internalType = 2
		}

		var dataOff, nameOff int
		switch e.Type {
		case UsdString:
			dataOff = data.Len()
			data.NulString(e.Str)
		case UsdInts:
			data.PadTo(4)
			dataOff = data.Len()
			for _, v := range e.Ints {
				data.I32(v)
			}
		case UsdFloats:
			data.PadTo(4)
			dataOff = data.Len()
			for _, v := range e.Floats {
				data.F32(v)
			}
		}

		if internalType == 1 {
			nameOff = data.Len() + deltaoff
			data.NulString(e.Name)
		}

		rows[i] = row{name: e.Name, internalType: internalType, nameOff: nameOff, dataOff: dataOff + deltaoff, setting: e.setting(), typ: e.Type}
		deltaoff -= 12
	}

	deltaoff = 12 * n
	for i := range rows {
		if rows[i].internalType == 2 {
			rows[i].nameOff = data.Len() + deltaoff
			data.NulString(rows[i].name)
		}
		deltaoff -= 12
	}
	data.PadTo(4)

	out := binio.NewWriter()
	out.U32(uint32(n))
	for _, r := range rows {
		out.U32(uint32(r.nameOff))
		out.U32(uint32(r.dataOff))
		out.U16(uint16(r.setting))
		out.U8(uint8(r.typ))
		out.U8(0)
	}
	out.Raw(data.Bytes())
	return out.Bytes()
}

// DecodeUserData reads a usd1 section's entries. r must be positioned at
// the start of the section's payload (immediately after the 8-byte section
// header, at the entry count field).
func DecodeUserData(r *binio.Reader) ([]UserDataEntry, error) {
	tableStart := r.Index()
	count, err := r.U32()
	if err != nil {
		return nil, errors.Wrap(err, "bclyt: usd1 entry count")
	}

	entries := make([]UserDataEntry, count)
	for i := 0; i < int(count); i++ {
		rowStart := tableStart + 4 + i*12
		nameOff, err := r.U32At(rowStart)
		if err != nil {
			return nil, err
		}
		dataOff, err := r.U32At(rowStart + 4)
		if err != nil {
			return nil, err
		}
		setting, err := r.U16At(rowStart + 8)
		if err != nil {
			return nil, err
		}
		typByte, err := r.U8At(rowStart + 10)
		if err != nil {
			return nil, err
		}
		typ, err := ParseUsdEntryDataType(typByte)
		if err != nil {
			return nil, errors.Wrapf(err, "bclyt: usd1 entry %d", i)
		}

		name, err := r.NulTerminatedASCII(rowStart + int(nameOff))
		if err != nil {
			return nil, errors.Wrapf(err, "bclyt: usd1 entry %d name", i)
		}

		e := UserDataEntry{Name: name, Type: typ}
		dataAddr := rowStart + int(dataOff)
		switch typ {
		case UsdString:
			s, err := r.NulTerminatedASCII(dataAddr)
			if err != nil {
				return nil, errors.Wrapf(err, "bclyt: usd1 entry %d string", i)
			}
			e.Str = s
		case UsdInts:
			e.Ints = make([]int32, setting)
			for j := 0; j < int(setting); j++ {
				v, err := r.U32At(dataAddr + j*4)
				if err != nil {
					return nil, err
				}
				e.Ints[j] = int32(v)
			}
		case UsdFloats:
			e.Floats = make([]float32, setting)
			for j := 0; j < int(setting); j++ {
				v, err := r.F32At(dataAddr + j*4)
				if err != nil {
					return nil, err
				}
				e.Floats[j] = v
			}
		}
		entries[i] = e
	}
	return entries, nil
}
