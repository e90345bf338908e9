// Package bclyt implements Nintendo's "CLYT" layout format (spec §3.2,
// §4.5-4.7, components E/F/G): the panel/group tree, material sub-records,
// colour table and the section-oriented wire format that holds them.
// Grounded on original_source/internal/extraction/bclyt.py,
// original_source/internal/creation/bclyt.py and
// original_source/internal/usefulenums.py, structurally following the
// teacher's own closed, value-stable enum types (internal/filters/enums.go)
// and its tagged-union message dispatch (internal/structures/message.go).
package bclyt

import "github.com/pkg/errors"

// ErrUnknownEnum is returned when a decoded field's raw value has no
// matching closed-enum member (spec §7 kind UnknownEnum).
var ErrUnknownEnum = errors.New("bclyt: value out of range for enum")

// WrapMode selects how texture coordinates outside [0,1] are resolved.
type WrapMode uint8

const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirror
)

func ParseWrapMode(v uint8) (WrapMode, error) {
	if v > uint8(WrapMirror) {
		return 0, errors.Wrapf(ErrUnknownEnum, "WrapMode %d", v)
	}
	return WrapMode(v), nil
}

// FilterMode selects texture minification/magnification filtering.
type FilterMode uint8

const (
	FilterNear FilterMode = iota
	FilterLinear
)

func ParseFilterMode(v uint8) (FilterMode, error) {
	if v > uint8(FilterLinear) {
		return 0, errors.Wrapf(ErrUnknownEnum, "FilterMode %d", v)
	}
	return FilterMode(v), nil
}

// MatrixType selects a texture matrix's shape. Only one kind is defined by
// the wire format; it exists as a closed enum purely for wire fidelity.
type MatrixType uint8

const (
	MatrixType2x4 MatrixType = iota
)

func ParseMatrixType(v uint8) (MatrixType, error) {
	if v != uint8(MatrixType2x4) {
		return 0, errors.Wrapf(ErrUnknownEnum, "MatrixType %d", v)
	}
	return MatrixType(v), nil
}

// TextureGenerationType selects how a TexCoordGen sub-record's texture
// coordinates are produced.
type TextureGenerationType uint8

const (
	TexGenTex0 TextureGenerationType = iota
	TexGenTex1
	TexGenTex2
	TexGenOrtho
	TexGenPaneBased
	TexGenPerspectiveProj
)

func ParseTextureGenerationType(v uint8) (TextureGenerationType, error) {
	if v > uint8(TexGenPerspectiveProj) {
		return 0, errors.Wrapf(ErrUnknownEnum, "TextureGenerationType %d", v)
	}
	return TextureGenerationType(v), nil
}

// BlendFactor is the set of source/destination factors usable in a
// BlendMode record.
type BlendFactor uint8

const (
	BlendFactor0 BlendFactor = iota
	BlendFactor1
	BlendFactorDestColor
	BlendFactorDestInvColor
	BlendFactorSourceAlpha
	BlendFactorSourceInvAlpha
	BlendFactorDestAlpha
	BlendFactorDestInvAlpha
	BlendFactorSourceColor
	BlendFactorSourceInvColor
)

func ParseBlendFactor(v uint8) (BlendFactor, error) {
	if v > uint8(BlendFactorSourceInvColor) {
		return 0, errors.Wrapf(ErrUnknownEnum, "BlendFactor %d", v)
	}
	return BlendFactor(v), nil
}

// BlendOp is the arithmetic operator combining source and destination in a
// BlendMode record.
type BlendOp uint8

const (
	BlendOpDisable BlendOp = iota
	BlendOpAdd
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpSelectMin
	BlendOpSelectMax
)

func ParseBlendOp(v uint8) (BlendOp, error) {
	if v > uint8(BlendOpSelectMax) {
		return 0, errors.Wrapf(ErrUnknownEnum, "BlendOp %d", v)
	}
	return BlendOp(v), nil
}

// LogicOp is the bitwise operator a BlendMode record may select instead of
// arithmetic blending.
type LogicOp uint8

const (
	LogicOpDisable LogicOp = iota
	LogicOpNoOp
	LogicOpClear
	LogicOpSet
	LogicOpCopy
	LogicOpInvCopy
	LogicOpInv
	LogicOpAnd
	LogicOpNand
	LogicOpOr
	LogicOpNor
	LogicOpXor
	LogicOpEquiv
	LogicOpRevAnd
	LogicOpInvAd
	LogicOpRevOr
	LogicOpInvOr
)

func ParseLogicOp(v uint8) (LogicOp, error) {
	if v > uint8(LogicOpInvOr) {
		return 0, errors.Wrapf(ErrUnknownEnum, "LogicOp %d", v)
	}
	return LogicOp(v), nil
}

// OriginType selects the coordinate-system convention for a layout's canvas.
type OriginType uint8

const (
	OriginClassic OriginType = iota
	OriginNormal
)

func ParseOriginType(v uint8) (OriginType, error) {
	if v > uint8(OriginNormal) {
		return 0, errors.Wrapf(ErrUnknownEnum, "OriginType %d", v)
	}
	return OriginType(v), nil
}

// UsdEntryDataType discriminates a UserData entry's payload shape.
type UsdEntryDataType uint8

const (
	UsdString UsdEntryDataType = iota
	UsdInts
	UsdFloats
)

func ParseUsdEntryDataType(v uint8) (UsdEntryDataType, error) {
	if v > uint8(UsdFloats) {
		return 0, errors.Wrapf(ErrUnknownEnum, "UsdEntryDataType %d", v)
	}
	return UsdEntryDataType(v), nil
}

// OriginHorizontal is one axis of a panel's packed 2-bit origin code.
type OriginHorizontal uint8

const (
	OriginHCenter OriginHorizontal = iota
	OriginHLeft
	OriginHRight
)

func ParseOriginHorizontal(v uint8) (OriginHorizontal, error) {
	if v > uint8(OriginHRight) {
		return 0, errors.Wrapf(ErrUnknownEnum, "OriginHorizontal %d", v)
	}
	return OriginHorizontal(v), nil
}

// OriginVertical is the other axis of a panel's packed 2-bit origin code.
type OriginVertical uint8

const (
	OriginVMiddle OriginVertical = iota
	OriginVTop
	OriginVBottom
)

func ParseOriginVertical(v uint8) (OriginVertical, error) {
	if v > uint8(OriginVBottom) {
		return 0, errors.Wrapf(ErrUnknownEnum, "OriginVertical %d", v)
	}
	return OriginVertical(v), nil
}

// LineAlignment selects a text panel's paragraph alignment.
type LineAlignment uint8

const (
	LineAlignNoAlign LineAlignment = iota
	LineAlignLeft
	LineAlignCenter
	LineAlignRight
)

func ParseLineAlignment(v uint8) (LineAlignment, error) {
	if v > uint8(LineAlignRight) {
		return 0, errors.Wrapf(ErrUnknownEnum, "LineAlignment %d", v)
	}
	return LineAlignment(v), nil
}

// PanelFlag is a single bit position in a panel's 8-bit flag byte.
type PanelFlag uint

const (
	PanelFlagVisible PanelFlag = iota
	PanelFlagInfluencedAlpha
	PanelFlagLocationAdjust
)

// PanelMagnificationFlag is a single bit position in a panel's 8-bit
// magnification-flag byte.
type PanelMagnificationFlag uint

const (
	PanelMagIgnorePartsMagnify PanelMagnificationFlag = iota
	PanelMagAdjustToPartsBounds
)
