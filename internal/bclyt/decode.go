package bclyt

import (
	"github.com/pkg/errors"

	"github.com/n3dsbcma/bcma/internal/binio"
)

const (
	clytMagic    = "CLYT"
	clytBOM      = 0xfeff
	clytHdrSize  = 0x14
	clytRevision = 0x02020000
)

// ErrUnknownSection is returned when a section's 4-byte magic has no entry
// in the decode dispatch table (spec §7 kind UnknownSection).
var ErrUnknownSection = errors.New("bclyt: unknown section magic")

// Decode parses a complete BCLYT buffer into a Layout, dispatching each
// section by its 4-byte magic exactly as described in spec §4.6. Grounded
// on original_source/internal/extraction/bclyt.py's BCLYT.validate /
// read_section.
func Decode(data []byte) (*Layout, error) {
	r := binio.NewReader(data)

	magic, err := r.Read(4)
	if err != nil {
		return nil, errors.Wrap(err, "bclyt: reading magic")
	}
	if string(magic) != clytMagic {
		return nil, errors.Errorf("bclyt: bad magic %q", magic)
	}
	bom, err := r.U16()
	if err != nil || bom != clytBOM {
		return nil, errors.Errorf("bclyt: bad byte-order-mark 0x%04x", bom)
	}
	hdrSize, err := r.U16()
	if err != nil || hdrSize != clytHdrSize {
		return nil, errors.Errorf("bclyt: bad header size 0x%04x", hdrSize)
	}
	if _, err := r.U32(); err != nil { // revision, not independently validated
		return nil, err
	}
	if _, err := r.U32(); err != nil { // file size, not independently validated
		return nil, err
	}
	sectionCount, err := r.U32()
	if err != nil {
		return nil, err
	}

	d := &decoder{r: r, layout: NewLayout()}
	for i := 0; i < int(sectionCount); i++ {
		if err := d.readSection(); err != nil {
			return nil, errors.Wrapf(err, "bclyt: section %d", i)
		}
	}
	return d.layout, nil
}

type decoder struct {
	r      *binio.Reader
	layout *Layout

	haveLayout          bool
	currentSectionStart int

	currentPanel *Panel
	panelStack   []*Panel

	currentGroup *Group
	groupStack   []*Group
}

func (d *decoder) readSection() error {
	magic, err := d.r.Read(4)
	if err != nil {
		return err
	}
	size, err := d.r.U32()
	if err != nil {
		return err
	}
	payloadLen := int(size) - 8
	payloadStart := d.r.Index()
	d.currentSectionStart = payloadStart

	switch string(magic) {
	case "lyt1":
		err = d.readLyt1()
	case "fnl1":
		err = d.readFnl1()
	case "txl1":
		err = d.readTxl1()
	case "mat1":
		err = d.readMat1()
	case "pan1":
		err = d.readPanel(PanelPlain)
	case "pic1":
		err = d.readPanel(PanelPicture)
	case "txt1":
		err = d.readPanel(PanelText)
	case "wnd1":
		err = d.readPanel(PanelWindow)
	case "pas1":
		d.panelDescend()
	case "pae1":
		err = d.panelAscend()
	case "usd1":
		err = d.readUserData()
	case "grp1":
		err = d.readGroup()
	case "grs1":
		d.groupDescend()
	case "gre1":
		err = d.groupAscend()
	default:
		return errors.Wrapf(ErrUnknownSection, "%q", magic)
	}
	if err != nil {
		return err
	}
	d.r.Seek(payloadStart + payloadLen)
	return nil
}

func (d *decoder) readLyt1() error {
	if d.haveLayout {
		return errors.New("bclyt: duplicate lyt1 section")
	}
	d.haveLayout = true
	origin, err := d.r.U32()
	if err != nil {
		return err
	}
	w, err := d.r.F32()
	if err != nil {
		return err
	}
	h, err := d.r.F32()
	if err != nil {
		return err
	}
	ot, err := ParseOriginType(uint8(origin))
	if err != nil {
		return err
	}
	d.layout.Origin = ot
	d.layout.Size = Vec2{X: w, Y: h}
	return nil
}

func readNameTable(r *binio.Reader, count int, tableStart int) ([]string, error) {
	offsets := make([]uint32, count)
	for i := 0; i < count; i++ {
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		offsets[i] = v
	}
	names := make([]string, count)
	for i, off := range offsets {
		name, err := r.NulTerminatedASCII(tableStart + int(off))
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

func (d *decoder) readFnl1() error {
	count, err := d.r.U32()
	if err != nil {
		return err
	}
	tableStart := d.r.Index()
	names, err := readNameTable(d.r, int(count), tableStart)
	if err != nil {
		return err
	}
	d.layout.Fonts = names
	return nil
}

func (d *decoder) readTxl1() error {
	count, err := d.r.U32()
	if err != nil {
		return err
	}
	tableStart := d.r.Index()
	names, err := readNameTable(d.r, int(count), tableStart)
	if err != nil {
		return err
	}
	d.layout.Textures = names
	return nil
}

func (d *decoder) readMat1() error {
	count, err := d.r.U32()
	if err != nil {
		return err
	}
	offsets := make([]uint32, count)
	for i := range offsets {
		v, err := d.r.U32()
		if err != nil {
			return err
		}
		offsets[i] = v
	}
	// Material offsets are stored relative to the section body including
	// the 8-byte section header (spec §4.6), so each is seeked to
	// directly rather than read at the table cursor.
	materials := make([]*Material, count)
	for i, off := range offsets {
		d.r.Seek(d.currentSectionStart + int(off) - 8)
		m, err := d.readMaterial()
		if err != nil {
			return errors.Wrapf(err, "material %d", i)
		}
		materials[i] = m
	}
	d.layout.Materials = materials
	return nil
}

func (d *decoder) readMaterial() (*Material, error) {
	name, err := d.r.Read(0x14)
	if err != nil {
		return nil, err
	}
	m := &Material{Name: trimNul(name)}

	tevColor, err := d.r.U32()
	if err != nil {
		return nil, err
	}
	m.TevColor = d.layout.Colors.Insert(rgbaFromU32(tevColor))

	for i := 0; i < 6; i++ {
		v, err := d.r.U32()
		if err != nil {
			return nil, err
		}
		m.TevConstantColors[i] = d.layout.Colors.Insert(rgbaFromU32(v))
	}

	flagWord, err := d.r.U32()
	if err != nil {
		return nil, err
	}
	flags := unpackMaterialFlags(flagWord)
	m.UseTextureOnly = flags.hasUseTextureOnly

	for i := uint32(0); i < flags.texMapCount; i++ {
		idx, err := d.r.U16()
		if err != nil {
			return nil, err
		}
		v1, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		v2, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		wrapS, err := ParseWrapMode(v1 & 0x3)
		if err != nil {
			return nil, err
		}
		minF, err := ParseFilterMode((v1 >> 2) & 0x3)
		if err != nil {
			return nil, err
		}
		wrapT, err := ParseWrapMode(v2 & 0x3)
		if err != nil {
			return nil, err
		}
		maxF, err := ParseFilterMode((v2 >> 2) & 0x3)
		if err != nil {
			return nil, err
		}
		m.TexMaps = append(m.TexMaps, TexMapEntry{TextureIndex: int(idx), WrapS: wrapS, MinFilter: minF, WrapT: wrapT, MaxFilter: maxF})
	}

	for i := uint32(0); i < flags.texMatrixCount; i++ {
		tx, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		ty, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		rot, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		sx, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		sy, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		m.TexMatrices = append(m.TexMatrices, TexMatrixEntry{Translation: Vec2{X: tx, Y: ty}, Rotation: rot, Scale: Vec2{X: sx, Y: sy}})
	}

	for i := uint32(0); i < flags.texCoordGenCount; i++ {
		genRaw, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		srcRaw, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		d.r.Skip(2)
		gen, err := ParseMatrixType(genRaw)
		if err != nil {
			return nil, err
		}
		src, err := ParseTextureGenerationType(srcRaw)
		if err != nil {
			return nil, err
		}
		m.TexCoordGens = append(m.TexCoordGens, TexCoordGen{GenType: gen, Source: src})
	}

	for i := uint32(0); i < flags.tevStageCount; i++ {
		rgb, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		alpha, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		d.r.Skip(2)
		m.TevStages = append(m.TevStages, TevStage{RGBMode: rgb, AlphaMode: alpha})
	}

	if flags.hasAlphaCompare {
		mode, err := d.r.U32()
		if err != nil {
			return nil, err
		}
		ref, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		m.AlphaCompare = &AlphaCompare{CompareMode: mode, Reference: ref}
	}
	if flags.hasColorBlendMode {
		bm, err := d.readBlendMode()
		if err != nil {
			return nil, err
		}
		m.ColorBlendMode = bm
	}
	if flags.hasAlphaBlendMode {
		bm, err := d.readBlendMode()
		if err != nil {
			return nil, err
		}
		m.AlphaBlendMode = bm
	}
	if flags.hasIndirectParam {
		rot, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		sx, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		sy, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		m.IndirectParam = &IndirectParam{Rotation: rot, Scale: Vec2{X: sx, Y: sy}}
	}

	for i := uint32(0); i < flags.projTexGenCount; i++ {
		px, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		py, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		sx, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		sy, err := d.r.F32()
		if err != nil {
			return nil, err
		}
		flagByte, err := d.r.U8()
		if err != nil {
			return nil, err
		}
		d.r.Skip(3)
		fitsLayout, fitsPanel, adjustSR := unpackProjTexGenFlags(flagByte)
		m.ProjTexGenParams = append(m.ProjTexGenParams, ProjTexGenParam{
			Pos: Vec2{X: px, Y: py}, Scale: Vec2{X: sx, Y: sy},
			FitsLayout: fitsLayout, FitsPanel: fitsPanel, AdjustProjectionSR: adjustSR,
		})
	}

	if flags.hasFontShadowParam {
		var b [7]uint8
		for i := range b {
			v, err := d.r.U8()
			if err != nil {
				return nil, err
			}
			b[i] = v
		}
		d.r.Skip(1)
		m.FontShadowParam = &FontShadowParam{
			BlackR: b[0], BlackG: b[1], BlackB: b[2],
			WhiteR: b[3], WhiteG: b[4], WhiteB: b[5], WhiteA: b[6],
		}
	}

	return m, nil
}

func (d *decoder) readBlendMode() (*BlendMode, error) {
	op, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	src, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	dst, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	logic, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	blendOp, err := ParseBlendFactor(op)
	if err != nil {
		return nil, err
	}
	sourceFactor, err := ParseBlendOp(src)
	if err != nil {
		return nil, err
	}
	destFactor, err := ParseBlendOp(dst)
	if err != nil {
		return nil, err
	}
	logicOp, err := ParseLogicOp(logic)
	if err != nil {
		return nil, err
	}
	return &BlendMode{BlendOperation: blendOp, SourceFactor: sourceFactor, DestFactor: destFactor, LogicOperation: logicOp}, nil
}

func (d *decoder) readPanelCommon() (*PanelCommon, error) {
	flagsByte, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	originByte, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	alpha, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	magByte, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	nameBytes, err := d.r.Read(panelNameSize)
	if err != nil {
		return nil, err
	}
	tx, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	ty, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	tz, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	rx, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	ry, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	rz, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	sx, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	sy, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	szx, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	szy, err := d.r.F32()
	if err != nil {
		return nil, err
	}

	visible, influenced, locationAdjust := unpackPanelFlags(flagsByte)
	ownH, ownV, parentH, parentV := unpackOriginByte(originByte)

	return &PanelCommon{
		Visible: visible, InfluencedAlpha: influenced, LocationAdjust: locationAdjust,
		OwnHorizontal: ownH, OwnVertical: ownV, ParentHorizontal: parentH, ParentVertical: parentV,
		Alpha:               alpha,
		IgnorePartsMagnify:  magByte&(1<<PanelMagIgnorePartsMagnify) != 0,
		AdjustToPartsBounds: magByte&(1<<PanelMagAdjustToPartsBounds) != 0,
		Name:                trimNul(nameBytes),
		Translation:         Vec3{X: tx, Y: ty, Z: tz},
		Rotation:            Vec3{X: rx, Y: ry, Z: rz},
		Scale:               Vec2{X: sx, Y: sy},
		Size:                Vec2{X: szx, Y: szy},
	}, nil
}

func (d *decoder) readPanel(kind PanelKind) error {
	common, err := d.readPanelCommon()
	if err != nil {
		return err
	}
	p := &Panel{Kind: kind, Common: *common}

	switch kind {
	case PanelPicture:
		data, err := d.readPicData()
		if err != nil {
			return err
		}
		p.Pic = data
	case PanelText:
		data, err := d.readTxtData()
		if err != nil {
			return err
		}
		p.Txt = data
	case PanelWindow:
		data, err := d.readWndData()
		if err != nil {
			return err
		}
		p.Wnd = data
	}

	if d.currentPanel == nil {
		d.layout.RootPanel = p
	} else {
		d.currentPanel.Children = append(d.currentPanel.Children, p)
	}
	return nil
}

func (d *decoder) readPicData() (*PicData, error) {
	colors := make([]int, 4)
	for i := range colors {
		v, err := d.r.U32()
		if err != nil {
			return nil, err
		}
		colors[i] = d.layout.Colors.Insert(rgbaFromU32(v))
	}
	matIdx, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	coordCount, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	sets := make([]TextureCoordSet, coordCount)
	for i := range sets {
		vs := make([]float32, 8)
		for j := range vs {
			v, err := d.r.F32()
			if err != nil {
				return nil, err
			}
			vs[j] = v
		}
		sets[i] = TextureCoordSet{
			TopLeft: Vec2{X: vs[0], Y: vs[1]}, TopRight: Vec2{X: vs[2], Y: vs[3]},
			BottomLeft: Vec2{X: vs[4], Y: vs[5]}, BottomRight: Vec2{X: vs[6], Y: vs[7]},
		}
	}
	return &PicData{
		TopLeftColor: colors[0], TopRightColor: colors[1], BottomLeftColor: colors[2], BottomRightColor: colors[3],
		MaterialIndex: int(matIdx), CoordSets: sets,
	}, nil
}

func (d *decoder) readTxtData() (*TxtData, error) {
	maxSize, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	curSize, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	matIdx, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	fontIdx, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	anotherOrigin, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	lineAlign, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	d.r.Skip(2)
	textOffsetRaw, err := d.r.U32()
	if err != nil {
		return nil, err
	}
	topColorRaw, err := d.r.U32()
	if err != nil {
		return nil, err
	}
	bottomColorRaw, err := d.r.U32()
	if err != nil {
		return nil, err
	}
	topColorIdx := d.layout.Colors.Insert(rgbaFromU32(topColorRaw))
	bottomColorIdx := d.layout.Colors.Insert(rgbaFromU32(bottomColorRaw))
	tsx, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	tsy, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	charSize, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	lineSize, err := d.r.F32()
	if err != nil {
		return nil, err
	}

	lineAlignment, err := ParseLineAlignment(lineAlign)
	if err != nil {
		return nil, err
	}

	// text_offset is measured from the start of the txt1 section header
	// (spec §4.6). currentSectionStart points at the panel-common block,
	// 8 bytes past that header, hence the -8.
	sectionStart := d.currentSectionStart
	textBytes, err := d.r.ReadAt(sectionStart+int(textOffsetRaw)-8, int(curSize))
	if err != nil {
		return nil, err
	}
	text, terr := binio.DecodeUTF16LE(textBytes)
	if terr != nil {
		text = "!!!DECODE ERROR!!!"
	}

	anotherH := OriginHorizontal((anotherOrigin >> 2) & 0b11)
	anotherV := OriginVertical(anotherOrigin & 0b11)

	return &TxtData{
		MaterialIndex: int(matIdx), FontIndex: int(fontIdx),
		AdditionalChars:   int(maxSize-curSize) >> 1,
		AnotherHorizontal: anotherH, AnotherVertical: anotherV,
		LineAlignment: lineAlignment,
		TopColor:      topColorIdx, BottomColor: bottomColorIdx,
		TextSize: Vec2{X: tsx, Y: tsy}, CharacterSize: charSize, LineSize: lineSize,
		Text: text,
	}, nil
}

func (d *decoder) readWndData() (*WndData, error) {
	l, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	rr, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	t, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	b, err := d.r.F32()
	if err != nil {
		return nil, err
	}
	frameCount, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	flag, err := d.r.U8()
	if err != nil {
		return nil, err
	}
	d.r.Skip(2)
	if _, err := d.r.U32(); err != nil { // content offset, not independently needed
		return nil, err
	}
	frameOffsetsOff, err := d.r.U32()
	if err != nil {
		return nil, err
	}
	colors := make([]int, 4)
	for i := range colors {
		v, err := d.r.U32()
		if err != nil {
			return nil, err
		}
		colors[i] = d.layout.Colors.Insert(rgbaFromU32(v))
	}
	matIdx, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	uvSetCount, err := d.r.U16()
	if err != nil {
		return nil, err
	}
	uvSets := make([]UVCoordSet, uvSetCount)
	for i := range uvSets {
		vs := make([]float32, 8)
		for j := range vs {
			v, err := d.r.F32()
			if err != nil {
				return nil, err
			}
			vs[j] = v
		}
		uvSets[i] = UVCoordSet{
			TopLeft: Vec2{X: vs[0], Y: vs[1]}, TopRight: Vec2{X: vs[2], Y: vs[3]},
			BottomLeft: Vec2{X: vs[4], Y: vs[5]}, BottomRight: Vec2{X: vs[6], Y: vs[7]},
		}
	}

	sectionStart := d.currentSectionStart
	frames := make([]WindowFrame, frameCount)
	for i := range frames {
		off, err := d.r.U32At(sectionStart + int(frameOffsetsOff) - 8 + i*4)
		if err != nil {
			return nil, err
		}
		frameAddr := sectionStart + int(off) - 8
		matIdx, err := d.r.U16At(frameAddr)
		if err != nil {
			return nil, err
		}
		flip, err := d.r.U8At(frameAddr + 2)
		if err != nil {
			return nil, err
		}
		frames[i] = WindowFrame{MaterialIndex: int(matIdx), FlipType: flip}
	}

	return &WndData{
		ContentOverflowL: l, ContentOverflowR: rr, ContentOverflowT: t, ContentOverflowB: b,
		Flag:          flag,
		TopLeftColor:  colors[0], TopRightColor: colors[1], BottomLeftColor: colors[2], BottomRightColor: colors[3],
		MaterialIndex: int(matIdx), UVSets: uvSets, Frames: frames,
	}, nil
}

func (d *decoder) panelDescend() {
	d.panelStack = append(d.panelStack, d.currentPanel)
	if d.currentPanel == nil {
		d.currentPanel = d.layout.RootPanel
	} else if n := len(d.currentPanel.Children); n > 0 {
		d.currentPanel = d.currentPanel.Children[n-1]
	}
}

func (d *decoder) panelAscend() error {
	if len(d.panelStack) == 0 {
		return errors.New("bclyt: pae1 with no matching pas1")
	}
	d.currentPanel = d.panelStack[len(d.panelStack)-1]
	d.panelStack = d.panelStack[:len(d.panelStack)-1]
	return nil
}

func (d *decoder) readUserData() error {
	entries, err := DecodeUserData(d.r)
	if err != nil {
		return err
	}
	if d.currentPanel == nil || len(d.currentPanel.Children) == 0 {
		return errors.New("bclyt: usd1 with no owning panel")
	}
	target := d.currentPanel.Children[len(d.currentPanel.Children)-1]
	target.UserData = append(target.UserData, entries...)
	return nil
}

func (d *decoder) readGroup() error {
	name, err := d.r.Read(groupNameSize)
	if err != nil {
		return err
	}
	count, err := d.r.U32()
	if err != nil {
		return err
	}
	refs := make([]string, count)
	for i := range refs {
		b, err := d.r.Read(groupNameSize)
		if err != nil {
			return err
		}
		refs[i] = trimNul(b)
	}
	g := &Group{Name: trimNul(name), PanelRefs: refs}
	if d.currentGroup == nil {
		d.layout.RootGroup = g
	} else {
		d.currentGroup.Children = append(d.currentGroup.Children, g)
	}
	return nil
}

func (d *decoder) groupDescend() {
	d.groupStack = append(d.groupStack, d.currentGroup)
	if d.currentGroup == nil {
		d.currentGroup = d.layout.RootGroup
	} else if n := len(d.currentGroup.Children); n > 0 {
		d.currentGroup = d.currentGroup.Children[n-1]
	}
}

func (d *decoder) groupAscend() error {
	if len(d.groupStack) == 0 {
		return errors.New("bclyt: gre1 with no matching grs1")
	}
	d.currentGroup = d.groupStack[len(d.groupStack)-1]
	d.groupStack = d.groupStack[:len(d.groupStack)-1]
	return nil
}

func trimNul(b []byte) string {
	i := 0
	for i < len(b) && b[i] != 0 {
		i++
	}
	return string(b[:i])
}

func rgbaFromU32(v uint32) RGBA {
	return RGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: uint8(v >> 24)}
}

func rgbaToU32(c RGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}
