package bclyt

// Material sub-records (spec §3.2, §4.5), grounded on the field order and
// sizes read by original_source/internal/extraction/bclyt.py's
// TexMapEntry/TexMatrixEntry/TexCoordGen/TevStage/AlphaCompare/BlendMode/
// IndirectParam/ProjTexGenParam/FontShadowParam and written back by
// internal/creation/bclyt.py's counterparts.

// TexMapEntry references one texture by symbol-table index plus its
// wrap/filter mode byte pair.
type TexMapEntry struct {
	TextureIndex  int
	WrapS         WrapMode
	MinFilter     FilterMode
	WrapT         WrapMode
	MaxFilter     FilterMode
}

func packTexMapModes(wrapS WrapMode, minFilter FilterMode) uint8 {
	return uint8(wrapS&0x3) | uint8(minFilter&0x3)<<2
}

// TexMatrixEntry is a 2D affine texture-coordinate transform.
type TexMatrixEntry struct {
	Translation Vec2
	Rotation    float32
	Scale       Vec2
}

// TexCoordGen selects how a TexMapEntry's coordinates are produced.
type TexCoordGen struct {
	GenType MatrixType
	Source  TextureGenerationType
}

// TevStage selects RGB and alpha combiner modes for one texture stage.
type TevStage struct {
	RGBMode   uint8
	AlphaMode uint8
}

// AlphaCompare is the alpha-test comparison mode and reference value.
type AlphaCompare struct {
	CompareMode uint32
	Reference   float32
}

// BlendMode is shared by the optional colour- and alpha-blend sub-records.
type BlendMode struct {
	BlendOperation BlendFactor
	SourceFactor   BlendOp
	DestFactor     BlendOp
	LogicOperation LogicOp
}

// IndirectParam is the indirect-texturing rotation/scale pair.
type IndirectParam struct {
	Rotation float32
	Scale    Vec2
}

// ProjTexGenParam is a projected-texture-coordinate generator.
type ProjTexGenParam struct {
	Pos              Vec2
	Scale            Vec2
	FitsLayout       bool
	FitsPanel        bool
	AdjustProjectionSR bool
}

// projTexGenFlagsMask preserves the reference decoder's 0b11 mask on
// AdjustProjectionSR, which a literal reading of the bit layout would
// expect to be 0b100 (spec §9 Open Question 2). Kept bit-for-bit
// compatible pending verification against a broader corpus of files.
const projTexGenFlagsMask = 0b11

func unpackProjTexGenFlags(b uint8) (fitsLayout, fitsPanel, adjustSR bool) {
	return b&0x1 != 0, b&0x2 != 0, b&projTexGenFlagsMask != 0
}

func packProjTexGenFlags(fitsLayout, fitsPanel, adjustSR bool) uint8 {
	var b uint8
	if fitsLayout {
		b |= 0x1
	}
	if fitsPanel {
		b |= 0x2
	}
	if adjustSR {
		b |= projTexGenFlagsMask
	}
	return b
}

// FontShadowParam is the drop-shadow black/white colour triple plus the
// white channel's alpha.
type FontShadowParam struct {
	BlackR, BlackG, BlackB uint8
	WhiteR, WhiteG, WhiteB, WhiteA uint8
}

// Material is one entry of a layout's material table (spec §3.2). Its wire
// form packs sub-record counts and optional-presence flags into a single
// 32-bit word; UseTextureOnly occupies a bit in that word but, per spec §9
// Open Question 3, has no backing sub-record and is preserved only as a
// bare bool.
type Material struct {
	Name                string
	TevColor            int // colour-table index
	TevConstantColors    [6]int // colour-table indices

	TexMaps        []TexMapEntry
	TexMatrices    []TexMatrixEntry
	TexCoordGens   []TexCoordGen
	TevStages      []TevStage

	AlphaCompare    *AlphaCompare
	ColorBlendMode  *BlendMode
	UseTextureOnly  bool
	AlphaBlendMode  *BlendMode
	IndirectParam   *IndirectParam
	ProjTexGenParams []ProjTexGenParam
	FontShadowParam *FontShadowParam
}

// materialFlags is the Material record's packed 32-bit flag word, unpacked
// with the exact bit layout read by the reference decoder (spec §3.2):
// tex-map count (bits 0-1), tex-matrix count (2-3), tex-coordgen count
// (4-5), tev-stage count (6-8), alpha-compare (9), colour-blend-mode (10),
// use-texture-only (11), separate alpha-blend-mode (12), indirect-param
// (13), proj-tex-gen-param count (14-15), font-shadow-param (16).
type materialFlags struct {
	texMapCount        uint32
	texMatrixCount     uint32
	texCoordGenCount   uint32
	tevStageCount      uint32
	hasAlphaCompare    bool
	hasColorBlendMode  bool
	hasUseTextureOnly  bool
	hasAlphaBlendMode  bool
	hasIndirectParam   bool
	projTexGenCount    uint32
	hasFontShadowParam bool
}

func unpackMaterialFlags(v uint32) materialFlags {
	return materialFlags{
		texMapCount:        v & 0b11,
		texMatrixCount:     (v >> 2) & 0b11,
		texCoordGenCount:   (v >> 4) & 0b11,
		tevStageCount:      (v >> 6) & 0b111,
		hasAlphaCompare:    (v>>9)&1 != 0,
		hasColorBlendMode:  (v>>10)&1 != 0,
		hasUseTextureOnly:  (v>>11)&1 != 0,
		hasAlphaBlendMode:  (v>>12)&1 != 0,
		hasIndirectParam:   (v>>13)&1 != 0,
		projTexGenCount:    (v >> 14) & 0b11,
		hasFontShadowParam: (v>>16)&1 != 0,
	}
}

func (m *Material) flagWord() uint32 {
	var v uint32
	v |= uint32(len(m.TexMaps)) & 0b11
	v |= (uint32(len(m.TexMatrices)) & 0b11) << 2
	v |= (uint32(len(m.TexCoordGens)) & 0b11) << 4
	v |= (uint32(len(m.TevStages)) & 0b111) << 6
	if m.AlphaCompare != nil {
		v |= 1 << 9
	}
	if m.ColorBlendMode != nil {
		v |= 1 << 10
	}
	if m.UseTextureOnly {
		v |= 1 << 11
	}
	if m.AlphaBlendMode != nil {
		v |= 1 << 12
	}
	if m.IndirectParam != nil {
		v |= 1 << 13
	}
	v |= (uint32(len(m.ProjTexGenParams)) & 0b11) << 14
	if m.FontShadowParam != nil {
		v |= 1 << 16
	}
	return v
}
