package bclyt

// PanelKind tags which of the four wire variants a Panel carries (spec
// §3.2: "pan (plain), pic (picture), txt (text), wnd (window)").
type PanelKind uint8

const (
	PanelPlain PanelKind = iota
	PanelPicture
	PanelText
	PanelWindow
)

func (k PanelKind) magic() string {
	switch k {
	case PanelPicture:
		return "pic1"
	case PanelText:
		return "txt1"
	case PanelWindow:
		return "wnd1"
	default:
		return "pan1"
	}
}

// PanelCommon is the attribute block shared by every panel kind (spec
// §3.2 "Panel common attributes"), grounded on Pan1.validate in
// original_source/internal/extraction/bclyt.py.
type PanelCommon struct {
	Visible          bool
	InfluencedAlpha  bool
	LocationAdjust   bool

	OwnHorizontal    OriginHorizontal
	OwnVertical      OriginVertical
	ParentHorizontal OriginHorizontal
	ParentVertical   OriginVertical

	Alpha uint8

	IgnorePartsMagnify  bool
	AdjustToPartsBounds bool

	Name string // NUL-padded to 24 bytes on the wire

	Translation Vec3
	Rotation    Vec3
	Scale       Vec2
	Size        Vec2
}

const panelNameSize = 0x18

func (c *PanelCommon) flagsByte() uint8 {
	var b uint8
	if c.Visible {
		b |= 1 << PanelFlagVisible
	}
	if c.InfluencedAlpha {
		b |= 1 << PanelFlagInfluencedAlpha
	}
	if c.LocationAdjust {
		b |= 1 << PanelFlagLocationAdjust
	}
	return b
}

func unpackPanelFlags(b uint8) (visible, influencedAlpha, locationAdjust bool) {
	return b&(1<<PanelFlagVisible) != 0, b&(1<<PanelFlagInfluencedAlpha) != 0, b&(1<<PanelFlagLocationAdjust) != 0
}

// packOriginByte matches Pan1.validate's bit layout: own-horizontal in bits
// 6-7, own-vertical in 4-5, parent-horizontal in 2-3, parent-vertical in 0-1.
func packOriginByte(ownH OriginHorizontal, ownV OriginVertical, parentH OriginHorizontal, parentV OriginVertical) uint8 {
	return uint8(ownH)<<6 | uint8(ownV)<<4 | uint8(parentH)<<2 | uint8(parentV)
}

func unpackOriginByte(b uint8) (ownH OriginHorizontal, ownV OriginVertical, parentH OriginHorizontal, parentV OriginVertical) {
	ownH = OriginHorizontal((b >> 6) & 0b11)
	ownV = OriginVertical((b >> 4) & 0b11)
	parentH = OriginHorizontal((b >> 2) & 0b11)
	parentV = OriginVertical(b & 0b11)
	return
}

func (c *PanelCommon) magnificationByte() uint8 {
	var b uint8
	if c.IgnorePartsMagnify {
		b |= 1 << PanelMagIgnorePartsMagnify
	}
	if c.AdjustToPartsBounds {
		b |= 1 << PanelMagAdjustToPartsBounds
	}
	return b
}

// TextureCoordSet is one pic1 panel's set of four corner UV pairs (spec
// §4.6 "for each coord set four Vec2s (tl, tr, bl, br)").
type TextureCoordSet struct {
	TopLeft, TopRight, BottomLeft, BottomRight Vec2
}

// PicData is the pic1 variant's payload (spec §4.6). Colours are
// colour-table indices, resolved through the owning Layout's ColorTable —
// the reference decoder runs every RGBA field, panel or material, through
// the same dedup registry (spec §4.5).
type PicData struct {
	TopLeftColor, TopRightColor, BottomLeftColor, BottomRightColor int
	MaterialIndex int
	CoordSets     []TextureCoordSet
}

// TxtData is the txt1 variant's payload (spec §4.6).
type TxtData struct {
	MaterialIndex int
	FontIndex     int
	AdditionalChars int // (max_size - current_size) / 2, re-derived on encode
	AnotherHorizontal OriginHorizontal
	AnotherVertical   OriginVertical
	LineAlignment LineAlignment
	TopColor, BottomColor int // colour-table indices
	TextSize      Vec2
	CharacterSize float32
	LineSize      float32
	Text          string
}

// WindowFrame is one wnd1 panel's per-frame material/flip reference (spec
// §4.6: "<material index:u16><flip:u8><pad:u8>").
type WindowFrame struct {
	MaterialIndex int
	FlipType      uint8
}

// UVCoordSet is one wnd1 panel's eight-float UV quad (spec §4.6).
type UVCoordSet struct {
	TopLeft, TopRight, BottomLeft, BottomRight Vec2
}

// WndData is the wnd1 variant's payload (spec §4.6).
type WndData struct {
	ContentOverflowL, ContentOverflowR, ContentOverflowT, ContentOverflowB float32
	Flag          uint8
	TopLeftColor, TopRightColor, BottomLeftColor, BottomRightColor int // colour-table indices
	MaterialIndex int
	UVSets        []UVCoordSet
	Frames        []WindowFrame
}

// Panel is one node of a layout's panel tree (spec §3.2). Exactly one kind
// field among Pic/Txt/Wnd is populated when Kind says so; a plain panel
// has none. Children and UserData mirror original_source's PanelWrapper,
// but with the parent back-reference dropped: the decoder builds the tree
// top-down and tracks the current parents on a stack local to decoding
// (spec §9
// "back-references should be modelled as ... explicit parent-during-build
// that is discarded at finalisation").
type Panel struct {
	Kind   PanelKind
	Common PanelCommon

	Pic *PicData
	Txt *TxtData
	Wnd *WndData

	UserData []UserDataEntry
	Children []*Panel
}
