package bclyt

import (
	"github.com/n3dsbcma/bcma/internal/binio"
)

// EncodeOptions carries the per-operation context that the reference
// encoder keeps as process-wide state (spec §5, §9): here, the UserData
// internal-type override to apply to every usd1 section this call emits.
// Scoping it to one call, rather than a package global, is what lets two
// layouts encode concurrently without cross-talk.
type EncodeOptions struct {
	UserDataOverride UserDataOverride
}

// EncodeOption configures an Encode call.
type EncodeOption func(*EncodeOptions)

// WithUserDataOverride sets the UserData internal-type override for every
// usd1 section this Encode call emits (spec §4.8/§4.9: 1 for ordinary
// layouts, 2 for Index layouts, -1/auto for "info" sub-pages).
func WithUserDataOverride(o UserDataOverride) EncodeOption {
	return func(opt *EncodeOptions) { opt.UserDataOverride = o }
}

// Encode serializes a Layout into a complete BCLYT buffer. The font,
// texture and material tables are written exactly as they stand in l;
// they are not rebuilt by scanning the panel tree. Sections are emitted
// in the fixed order: layout, fonts, textures, materials, panel tree,
// group tree. The colour table is purely in-memory
// and never becomes its own section (spec §4.7).
func Encode(l *Layout, opts ...EncodeOption) ([]byte, error) {
	options := EncodeOptions{UserDataOverride: OverrideAdjacent}
	for _, opt := range opts {
		opt(&options)
	}

	out := binio.NewWriter()

	sections := [][]byte{
		encodeLyt1(l),
		encodeFnl1(l.Fonts),
		encodeTxl1(l.Textures),
		encodeMat1(l.Materials, l.Colors),
	}
	if l.RootPanel != nil {
		sections = append(sections, encodePanelTree(l.RootPanel, l.Colors, options.UserDataOverride)...)
	}
	if l.RootGroup != nil {
		sections = append(sections, encodeGroupTree(l.RootGroup)...)
	}

	out.Raw([]byte(clytMagic))
	out.U16(clytBOM)
	out.U16(clytHdrSize)
	out.U32(clytRevision)
	fileSizeOff := out.Len()
	out.U32(0) // file size, patched below
	out.U32(uint32(len(sections)))

	for _, s := range sections {
		out.Raw(s)
	}
	out.PutU32At(fileSizeOff, uint32(out.Len()))
	return out.Bytes(), nil
}

func wrapSection(magic string, payload []byte) []byte {
	w := binio.NewWriter()
	w.Raw([]byte(magic))
	w.U32(uint32(8 + len(payload)))
	w.Raw(payload)
	w.PadTo(4)
	return w.Bytes()
}

func encodeLyt1(l *Layout) []byte {
	p := binio.NewWriter()
	p.U32(uint32(l.Origin))
	p.F32(l.Size.X)
	p.F32(l.Size.Y)
	return wrapSection("lyt1", p.Bytes())
}

func encodeNameTable(magic string, names []string) []byte {
	p := binio.NewWriter()
	p.U32(uint32(len(names)))
	offsetStart := len(names) * 4
	nameBlob := binio.NewWriter()
	for _, n := range names {
		p.U32(uint32(offsetStart + nameBlob.Len()))
		nameBlob.NulString(n)
	}
	nameBlob.PadTo(4)
	p.Raw(nameBlob.Bytes())
	return wrapSection(magic, p.Bytes())
}

func encodeFnl1(fonts []string) []byte { return encodeNameTable("fnl1", fonts) }
func encodeTxl1(textures []string) []byte { return encodeNameTable("txl1", textures) }

func encodeMat1(materials []*Material, colors *ColorTable) []byte {
	p := binio.NewWriter()
	p.U32(uint32(len(materials)))
	startOff := 8 + 4 + len(materials)*4
	matData := binio.NewWriter()
	offsets := make([]int, len(materials))
	for i, m := range materials {
		offsets[i] = startOff + matData.Len()
		encodeMaterial(matData, m, colors)
	}
	for _, off := range offsets {
		p.U32(uint32(off))
	}
	p.Raw(matData.Bytes())
	return wrapSection("mat1", p.Bytes())
}

func resolveColor(colors *ColorTable, idx int) uint32 {
	c, _ := colors.At(idx)
	return rgbaToU32(c)
}

func encodeMaterial(w *binio.Writer, m *Material, colors *ColorTable) {
	w.FixedString(m.Name, 0x14)
	w.U32(resolveColor(colors, m.TevColor))
	for _, idx := range m.TevConstantColors {
		w.U32(resolveColor(colors, idx))
	}
	w.U32(m.flagWord())

	for _, e := range m.TexMaps {
		w.U16(uint16(e.TextureIndex))
		w.U8(packTexMapModes(e.WrapS, e.MinFilter))
		w.U8(packTexMapModes(e.WrapT, e.MaxFilter))
	}
	for _, e := range m.TexMatrices {
		w.F32(e.Translation.X)
		w.F32(e.Translation.Y)
		w.F32(e.Rotation)
		w.F32(e.Scale.X)
		w.F32(e.Scale.Y)
	}
	for _, e := range m.TexCoordGens {
		w.U8(uint8(e.GenType))
		w.U8(uint8(e.Source))
		w.Pad(2)
	}
	for _, e := range m.TevStages {
		w.U8(e.RGBMode)
		w.U8(e.AlphaMode)
		w.Pad(2)
	}
	if m.AlphaCompare != nil {
		w.U32(m.AlphaCompare.CompareMode)
		w.F32(m.AlphaCompare.Reference)
	}
	if m.ColorBlendMode != nil {
		encodeBlendMode(w, m.ColorBlendMode)
	}
	if m.AlphaBlendMode != nil {
		encodeBlendMode(w, m.AlphaBlendMode)
	}
	if m.IndirectParam != nil {
		w.F32(m.IndirectParam.Rotation)
		w.F32(m.IndirectParam.Scale.X)
		w.F32(m.IndirectParam.Scale.Y)
	}
	for _, e := range m.ProjTexGenParams {
		w.F32(e.Pos.X)
		w.F32(e.Pos.Y)
		w.F32(e.Scale.X)
		w.F32(e.Scale.Y)
		w.U8(packProjTexGenFlags(e.FitsLayout, e.FitsPanel, e.AdjustProjectionSR))
		w.Pad(3)
	}
	if m.FontShadowParam != nil {
		f := m.FontShadowParam
		w.U8(f.BlackR)
		w.U8(f.BlackG)
		w.U8(f.BlackB)
		w.U8(f.WhiteR)
		w.U8(f.WhiteG)
		w.U8(f.WhiteB)
		w.U8(f.WhiteA)
		w.Pad(1)
	}
}

func encodeBlendMode(w *binio.Writer, b *BlendMode) {
	w.U8(uint8(b.BlendOperation))
	w.U8(uint8(b.SourceFactor))
	w.U8(uint8(b.DestFactor))
	w.U8(uint8(b.LogicOperation))
}

func encodePanelCommon(w *binio.Writer, c *PanelCommon) {
	w.U8(c.flagsByte())
	w.U8(packOriginByte(c.OwnHorizontal, c.OwnVertical, c.ParentHorizontal, c.ParentVertical))
	w.U8(c.Alpha)
	w.U8(c.magnificationByte())
	w.FixedString(c.Name, panelNameSize)
	w.F32(c.Translation.X)
	w.F32(c.Translation.Y)
	w.F32(c.Translation.Z)
	w.F32(c.Rotation.X)
	w.F32(c.Rotation.Y)
	w.F32(c.Rotation.Z)
	w.F32(c.Scale.X)
	w.F32(c.Scale.Y)
	w.F32(c.Size.X)
	w.F32(c.Size.Y)
}

func encodePanel(p *Panel, colors *ColorTable) []byte {
	w := binio.NewWriter()
	encodePanelCommon(w, &p.Common)

	switch p.Kind {
	case PanelPicture:
		d := p.Pic
		w.U32(resolveColor(colors, d.TopLeftColor))
		w.U32(resolveColor(colors, d.TopRightColor))
		w.U32(resolveColor(colors, d.BottomLeftColor))
		w.U32(resolveColor(colors, d.BottomRightColor))
		w.U16(uint16(d.MaterialIndex))
		w.U16(uint16(len(d.CoordSets)))
		for _, s := range d.CoordSets {
			w.F32(s.TopLeft.X)
			w.F32(s.TopLeft.Y)
			w.F32(s.TopRight.X)
			w.F32(s.TopRight.Y)
			w.F32(s.BottomLeft.X)
			w.F32(s.BottomLeft.Y)
			w.F32(s.BottomRight.X)
			w.F32(s.BottomRight.Y)
		}
	case PanelText:
		d := p.Txt
		textBytes := binio.EncodeUTF16LE(d.Text)
		curSize := len(textBytes)
		maxSize := curSize + d.AdditionalChars*2
		w.U16(uint16(maxSize))
		w.U16(uint16(curSize))
		w.U16(uint16(d.MaterialIndex))
		w.U16(uint16(d.FontIndex))
		w.U8(uint8(d.AnotherHorizontal)<<2 | uint8(d.AnotherVertical))
		w.U8(uint8(d.LineAlignment))
		w.Pad(2)
		// text offset is patched below once the surrounding section
		// header's 8-byte base is known to the caller.
		textOffsetAt := w.Len()
		w.U32(0)
		w.U32(resolveColor(colors, d.TopColor))
		w.U32(resolveColor(colors, d.BottomColor))
		w.F32(d.TextSize.X)
		w.F32(d.TextSize.Y)
		w.F32(d.CharacterSize)
		w.F32(d.LineSize)
		textOffset := w.Len() + 8 // section-relative, including the 8-byte header
		w.PutU32At(textOffsetAt, uint32(textOffset))
		w.Raw(textBytes)
		w.PadTo(2)
	case PanelWindow:
		d := p.Wnd
		w.F32(d.ContentOverflowL)
		w.F32(d.ContentOverflowR)
		w.F32(d.ContentOverflowT)
		w.F32(d.ContentOverflowB)
		w.U8(uint8(len(d.Frames)))
		w.U8(d.Flag)
		w.Pad(2)
		contentOffsetAt := w.Len()
		w.U32(0)
		frameOffsetsAt := w.Len()
		w.U32(0)
		w.PutU32At(contentOffsetAt, uint32(w.Len()+8))
		w.U32(resolveColor(colors, d.TopLeftColor))
		w.U32(resolveColor(colors, d.TopRightColor))
		w.U32(resolveColor(colors, d.BottomLeftColor))
		w.U32(resolveColor(colors, d.BottomRightColor))
		w.U16(uint16(d.MaterialIndex))
		w.U16(uint16(len(d.UVSets)))
		for _, s := range d.UVSets {
			w.F32(s.TopLeft.X)
			w.F32(s.TopLeft.Y)
			w.F32(s.TopRight.X)
			w.F32(s.TopRight.Y)
			w.F32(s.BottomLeft.X)
			w.F32(s.BottomLeft.Y)
			w.F32(s.BottomRight.X)
			w.F32(s.BottomRight.Y)
		}
		w.PutU32At(frameOffsetsAt, uint32(w.Len()+8))
		frameOffOffsets := make([]int, len(d.Frames))
		for i := range d.Frames {
			frameOffOffsets[i] = w.Len()
			w.U32(0)
		}
		for i, f := range d.Frames {
			w.PutU32At(frameOffOffsets[i], uint32(w.Len()+8))
			w.U16(uint16(f.MaterialIndex))
			w.U8(f.FlipType)
			w.Pad(1)
		}
	}
	return wrapSection(p.Kind.magic(), w.Bytes())
}

func marker(magic string) []byte { return wrapSection(magic, nil) }

// encodePanelTree flattens a panel and its subtree into the section
// sequence [magic]...[pas1 ... pae1] matching spec §4.7's emission order:
// "pan1 root, then recursively pas1 … children … pae1 around any non-empty
// child group; UserData of a panel appears after the pas1…pae1 pair, not
// inside it." Mirrors creation/bclyt.py's Panel.__init__, which appends
// UserData after Pae1 — the decoder (decode.go) and the reference
// extractor both attach a usd1 section to the panel most recently closed,
// so emitting it before pae1 would hand a container's UserData to its own
// last child instead.
func encodePanelTree(root *Panel, colors *ColorTable, override UserDataOverride) [][]byte {
	var out [][]byte
	var walk func(p *Panel)
	walk = func(p *Panel) {
		out = append(out, encodePanel(p, colors))
		if len(p.Children) > 0 {
			out = append(out, marker("pas1"))
			for _, c := range p.Children {
				walk(c)
			}
			out = append(out, marker("pae1"))
		}
		if len(p.UserData) > 0 {
			out = append(out, encodeUsd1Section(p.UserData, override))
		}
	}
	walk(root)
	return out
}

func encodeUsd1Section(entries []UserDataEntry, override UserDataOverride) []byte {
	return wrapSection("usd1", EncodeUserData(entries, override))
}

func encodeGroupTree(root *Group) [][]byte {
	var out [][]byte
	var walk func(g *Group)
	walk = func(g *Group) {
		p := binio.NewWriter()
		p.FixedString(g.Name, groupNameSize)
		p.U32(uint32(len(g.PanelRefs)))
		for _, ref := range g.PanelRefs {
			p.FixedString(ref, groupNameSize)
		}
		out = append(out, wrapSection("grp1", p.Bytes()))
		if len(g.Children) > 0 {
			out = append(out, marker("grs1"))
			for _, c := range g.Children {
				walk(c)
			}
			out = append(out, marker("gre1"))
		}
	}
	walk(root)
	return out
}
