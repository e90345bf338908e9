package bcma

import (
	"github.com/pkg/errors"

	"github.com/n3dsbcma/bcma/internal/bclyt"
)

// This file names every closed BCLYT enum for the document format (spec
// §6.4: "enumerations are referenced by name"). bclyt itself only parses
// and validates numeric wire values (spec §4.5) — the string form is a
// document-layer-only concern, so the name tables live here rather than
// in the bclyt package.

func wrapModeName(m bclyt.WrapMode) string {
	switch m {
	case bclyt.WrapRepeat:
		return "Repeat"
	case bclyt.WrapMirror:
		return "Mirror"
	default:
		return "Clamp"
	}
}

func parseWrapModeName(s string) (bclyt.WrapMode, error) {
	switch s {
	case "Clamp", "":
		return bclyt.WrapClamp, nil
	case "Repeat":
		return bclyt.WrapRepeat, nil
	case "Mirror":
		return bclyt.WrapMirror, nil
	default:
		return 0, errors.Wrapf(ErrUnknownTag, "WrapMode %q", s)
	}
}

func matrixTypeName(bclyt.MatrixType) string { return "Matrix_2x4" }

func parseMatrixTypeName(s string) (bclyt.MatrixType, error) {
	if s == "Matrix_2x4" || s == "" {
		return bclyt.MatrixType2x4, nil
	}
	return 0, errors.Wrapf(ErrUnknownTag, "MatrixType %q", s)
}

func filterModeName(m bclyt.FilterMode) string {
	if m == bclyt.FilterLinear {
		return "Linear"
	}
	return "Near"
}

func parseFilterModeName(s string) (bclyt.FilterMode, error) {
	switch s {
	case "Near", "":
		return bclyt.FilterNear, nil
	case "Linear":
		return bclyt.FilterLinear, nil
	default:
		return 0, errors.Wrapf(ErrUnknownTag, "FilterMode %q", s)
	}
}

var texGenNames = []string{"Tex0", "Tex1", "Tex2", "Ortho", "PaneBased", "PerspectiveProj"}

func texGenName(t bclyt.TextureGenerationType) string {
	if int(t) < len(texGenNames) {
		return texGenNames[t]
	}
	return texGenNames[0]
}

func parseTexGenName(s string) (bclyt.TextureGenerationType, error) {
	for i, n := range texGenNames {
		if n == s {
			return bclyt.TextureGenerationType(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTag, "TextureGenerationType %q", s)
}

var blendFactorNames = []string{"Zero", "One", "DestColor", "DestInvColor", "SourceAlpha", "SourceInvAlpha", "DestAlpha", "DestInvAlpha", "SourceColor", "SourceInvColor"}

func blendFactorName(b bclyt.BlendFactor) string {
	if int(b) < len(blendFactorNames) {
		return blendFactorNames[b]
	}
	return blendFactorNames[0]
}

func parseBlendFactorName(s string) (bclyt.BlendFactor, error) {
	for i, n := range blendFactorNames {
		if n == s {
			return bclyt.BlendFactor(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTag, "BlendFactor %q", s)
}

var blendOpNames = []string{"Disable", "Add", "Subtract", "ReverseSubtract", "SelectMin", "SelectMax"}

func blendOpName(b bclyt.BlendOp) string {
	if int(b) < len(blendOpNames) {
		return blendOpNames[b]
	}
	return blendOpNames[0]
}

func parseBlendOpName(s string) (bclyt.BlendOp, error) {
	for i, n := range blendOpNames {
		if n == s {
			return bclyt.BlendOp(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTag, "BlendOp %q", s)
}

var logicOpNames = []string{"Disable", "NoOp", "Clear", "Set", "Copy", "InvCopy", "Inv", "And", "Nand", "Or", "Nor", "Xor", "Equiv", "RevAnd", "InvAd", "RevOr", "InvOr"}

func logicOpName(l bclyt.LogicOp) string {
	if int(l) < len(logicOpNames) {
		return logicOpNames[l]
	}
	return logicOpNames[0]
}

func parseLogicOpName(s string) (bclyt.LogicOp, error) {
	for i, n := range logicOpNames {
		if n == s {
			return bclyt.LogicOp(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTag, "LogicOp %q", s)
}

func originTypeName(o bclyt.OriginType) string {
	if o == bclyt.OriginNormal {
		return "Normal"
	}
	return "Classic"
}

func parseOriginTypeName(s string) (bclyt.OriginType, error) {
	switch s {
	case "Classic", "":
		return bclyt.OriginClassic, nil
	case "Normal":
		return bclyt.OriginNormal, nil
	default:
		return 0, errors.Wrapf(ErrUnknownTag, "OriginType %q", s)
	}
}

var originHNames = []string{"Center", "Left", "Right"}

func originHName(o bclyt.OriginHorizontal) string {
	if int(o) < len(originHNames) {
		return originHNames[o]
	}
	return originHNames[0]
}

func parseOriginHName(s string) (bclyt.OriginHorizontal, error) {
	for i, n := range originHNames {
		if n == s {
			return bclyt.OriginHorizontal(i), nil
		}
	}
	if s == "" {
		return bclyt.OriginHCenter, nil
	}
	return 0, errors.Wrapf(ErrUnknownTag, "OriginHorizontal %q", s)
}

var originVNames = []string{"Middle", "Top", "Bottom"}

func originVName(o bclyt.OriginVertical) string {
	if int(o) < len(originVNames) {
		return originVNames[o]
	}
	return originVNames[0]
}

func parseOriginVName(s string) (bclyt.OriginVertical, error) {
	for i, n := range originVNames {
		if n == s {
			return bclyt.OriginVertical(i), nil
		}
	}
	if s == "" {
		return bclyt.OriginVMiddle, nil
	}
	return 0, errors.Wrapf(ErrUnknownTag, "OriginVertical %q", s)
}

var lineAlignNames = []string{"NoAlign", "Left", "Center", "Right"}

func lineAlignName(l bclyt.LineAlignment) string {
	if int(l) < len(lineAlignNames) {
		return lineAlignNames[l]
	}
	return lineAlignNames[0]
}

func parseLineAlignName(s string) (bclyt.LineAlignment, error) {
	for i, n := range lineAlignNames {
		if n == s {
			return bclyt.LineAlignment(i), nil
		}
	}
	if s == "" {
		return bclyt.LineAlignNoAlign, nil
	}
	return 0, errors.Wrapf(ErrUnknownTag, "LineAlignment %q", s)
}

func usdTypeName(t bclyt.UsdEntryDataType) string {
	switch t {
	case bclyt.UsdInts:
		return "Ints"
	case bclyt.UsdFloats:
		return "Floats"
	default:
		return "String"
	}
}

func parseUsdTypeName(s string) (bclyt.UsdEntryDataType, error) {
	switch s {
	case "String", "":
		return bclyt.UsdString, nil
	case "Ints":
		return bclyt.UsdInts, nil
	case "Floats":
		return bclyt.UsdFloats, nil
	default:
		return 0, errors.Wrapf(ErrUnknownTag, "UsdEntryDataType %q", s)
	}
}
