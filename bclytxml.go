package bcma

import "github.com/n3dsbcma/bcma/internal/bclyt"

// layoutToDoc and docToLayout translate between the in-memory bclyt
// model and its document-layer XML shape (spec §6.4). Every field is a
// direct rename, not a reinterpretation — the binary codec already owns
// all wire-format semantics (bit packing, offsets, ordering); this layer
// only has to be a faithful, total mapping.

func layoutToDoc(l *bclyt.Layout) DocBCLYT {
	doc := DocBCLYT{
		Layout: DocLayout{Origin: originTypeName(l.Origin), Width: l.Size.X, Height: l.Size.Y},
	}
	for i, c := range l.Colors.All() {
		doc.Colors.Colors = append(doc.Colors.Colors, DocColor{Index: i, R: c.R, G: c.G, B: c.B, A: c.A})
	}
	doc.Textures.Names = append([]string(nil), l.Textures...)
	doc.Fonts.Names = append([]string(nil), l.Fonts...)
	for _, m := range l.Materials {
		doc.Materials.Materials = append(doc.Materials.Materials, materialToDoc(m))
	}
	if l.RootPanel != nil {
		doc.Panel = panelToDoc(l.RootPanel)
	}
	if l.RootGroup != nil {
		doc.Group = groupToDoc(l.RootGroup)
	}
	return doc
}

func docToLayout(doc DocBCLYT) (*bclyt.Layout, error) {
	origin, err := parseOriginTypeName(doc.Layout.Origin)
	if err != nil {
		return nil, err
	}
	l := bclyt.NewLayout()
	l.Origin = origin
	l.Size = bclyt.Vec2{X: doc.Layout.Width, Y: doc.Layout.Height}
	for _, c := range doc.Colors.Colors {
		l.Colors.Insert(bclyt.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	}
	l.Textures = append([]string(nil), doc.Textures.Names...)
	l.Fonts = append([]string(nil), doc.Fonts.Names...)
	for _, dm := range doc.Materials.Materials {
		m, err := docToMaterial(dm)
		if err != nil {
			return nil, err
		}
		l.Materials = append(l.Materials, m)
	}
	if doc.Panel.Type != "" {
		p, err := docToPanel(doc.Panel)
		if err != nil {
			return nil, err
		}
		l.RootPanel = p
	}
	if doc.Group.Name != "" || len(doc.Group.PanelRefs) > 0 || len(doc.Group.Children) > 0 {
		l.RootGroup = docToGroup(doc.Group)
	}
	return l, nil
}

func materialToDoc(m *bclyt.Material) DocMaterial {
	dm := DocMaterial{Name: m.Name, TevColor: m.TevColor, TevConstantColors: m.TevConstantColors, UseTextureOnly: m.UseTextureOnly}
	for _, t := range m.TexMaps {
		dm.TexMaps = append(dm.TexMaps, DocTexMap{
			TextureIndex: t.TextureIndex,
			WrapS:        wrapModeName(t.WrapS), WrapT: wrapModeName(t.WrapT),
			MinFilter: filterModeName(t.MinFilter), MagFilter: filterModeName(t.MaxFilter),
		})
	}
	for _, t := range m.TexMatrices {
		dm.TexMatrices = append(dm.TexMatrices, DocTexMatrix{
			TranslationX: t.Translation.X, TranslationY: t.Translation.Y,
			Rotation: t.Rotation, ScaleX: t.Scale.X, ScaleY: t.Scale.Y,
		})
	}
	for _, t := range m.TexCoordGens {
		dm.TexCoordGens = append(dm.TexCoordGens, DocTexCoordGen{Matrix: matrixTypeName(t.GenType), Source: texGenName(t.Source)})
	}
	for _, t := range m.TevStages {
		dm.TevStages = append(dm.TevStages, DocTevStage{RGBMode: t.RGBMode, AlphaMode: t.AlphaMode})
	}
	if m.AlphaCompare != nil {
		dm.AlphaCompare = &DocAlphaCompare{Mode: m.AlphaCompare.CompareMode, Reference: m.AlphaCompare.Reference}
	}
	if m.ColorBlendMode != nil {
		dm.ColorBlendMode = blendModeToDoc(m.ColorBlendMode)
	}
	if m.AlphaBlendMode != nil {
		dm.AlphaBlendMode = blendModeToDoc(m.AlphaBlendMode)
	}
	if m.IndirectParam != nil {
		dm.IndirectParam = &DocIndirectParam{Rotation: m.IndirectParam.Rotation, ScaleX: m.IndirectParam.Scale.X, ScaleY: m.IndirectParam.Scale.Y}
	}
	for _, p := range m.ProjTexGenParams {
		dm.ProjTexGenParams = append(dm.ProjTexGenParams, DocProjTexGen{
			PosX: p.Pos.X, PosY: p.Pos.Y, ScaleX: p.Scale.X, ScaleY: p.Scale.Y,
			FitsLayout: p.FitsLayout, FitsPanel: p.FitsPanel, AdjustProjSR: p.AdjustProjectionSR,
		})
	}
	if m.FontShadowParam != nil {
		s := m.FontShadowParam
		dm.FontShadowParam = &DocFontShadow{BlackR: s.BlackR, BlackG: s.BlackG, BlackB: s.BlackB, WhiteR: s.WhiteR, WhiteG: s.WhiteG, WhiteB: s.WhiteB, WhiteA: s.WhiteA}
	}
	return dm
}

func blendModeToDoc(b *bclyt.BlendMode) *DocBlendMode {
	return &DocBlendMode{
		BlendOp:   blendFactorName(b.BlendOperation),
		SrcFactor: blendOpName(b.SourceFactor),
		DstFactor: blendOpName(b.DestFactor),
		LogicOp:   logicOpName(b.LogicOperation),
	}
}

func docToBlendMode(d *DocBlendMode) (*bclyt.BlendMode, error) {
	op, err := parseBlendFactorName(d.BlendOp)
	if err != nil {
		return nil, err
	}
	src, err := parseBlendOpName(d.SrcFactor)
	if err != nil {
		return nil, err
	}
	dst, err := parseBlendOpName(d.DstFactor)
	if err != nil {
		return nil, err
	}
	logic, err := parseLogicOpName(d.LogicOp)
	if err != nil {
		return nil, err
	}
	return &bclyt.BlendMode{BlendOperation: op, SourceFactor: src, DestFactor: dst, LogicOperation: logic}, nil
}

func docToMaterial(dm DocMaterial) (*bclyt.Material, error) {
	m := &bclyt.Material{Name: dm.Name, TevColor: dm.TevColor, TevConstantColors: dm.TevConstantColors, UseTextureOnly: dm.UseTextureOnly}
	for _, t := range dm.TexMaps {
		wrapS, err := parseWrapModeName(t.WrapS)
		if err != nil {
			return nil, err
		}
		wrapT, err := parseWrapModeName(t.WrapT)
		if err != nil {
			return nil, err
		}
		minF, err := parseFilterModeName(t.MinFilter)
		if err != nil {
			return nil, err
		}
		magF, err := parseFilterModeName(t.MagFilter)
		if err != nil {
			return nil, err
		}
		m.TexMaps = append(m.TexMaps, bclyt.TexMapEntry{TextureIndex: t.TextureIndex, WrapS: wrapS, WrapT: wrapT, MinFilter: minF, MaxFilter: magF})
	}
	for _, t := range dm.TexMatrices {
		m.TexMatrices = append(m.TexMatrices, bclyt.TexMatrixEntry{
			Translation: bclyt.Vec2{X: t.TranslationX, Y: t.TranslationY},
			Rotation:    t.Rotation,
			Scale:       bclyt.Vec2{X: t.ScaleX, Y: t.ScaleY},
		})
	}
	for _, t := range dm.TexCoordGens {
		genType, err := parseMatrixTypeName(t.Matrix)
		if err != nil {
			return nil, err
		}
		src, err := parseTexGenName(t.Source)
		if err != nil {
			return nil, err
		}
		m.TexCoordGens = append(m.TexCoordGens, bclyt.TexCoordGen{GenType: genType, Source: src})
	}
	for _, t := range dm.TevStages {
		m.TevStages = append(m.TevStages, bclyt.TevStage{RGBMode: t.RGBMode, AlphaMode: t.AlphaMode})
	}
	if dm.AlphaCompare != nil {
		m.AlphaCompare = &bclyt.AlphaCompare{CompareMode: dm.AlphaCompare.Mode, Reference: dm.AlphaCompare.Reference}
	}
	if dm.ColorBlendMode != nil {
		b, err := docToBlendMode(dm.ColorBlendMode)
		if err != nil {
			return nil, err
		}
		m.ColorBlendMode = b
	}
	if dm.AlphaBlendMode != nil {
		b, err := docToBlendMode(dm.AlphaBlendMode)
		if err != nil {
			return nil, err
		}
		m.AlphaBlendMode = b
	}
	if dm.IndirectParam != nil {
		m.IndirectParam = &bclyt.IndirectParam{Rotation: dm.IndirectParam.Rotation, Scale: bclyt.Vec2{X: dm.IndirectParam.ScaleX, Y: dm.IndirectParam.ScaleY}}
	}
	for _, p := range dm.ProjTexGenParams {
		m.ProjTexGenParams = append(m.ProjTexGenParams, bclyt.ProjTexGenParam{
			Pos: bclyt.Vec2{X: p.PosX, Y: p.PosY}, Scale: bclyt.Vec2{X: p.ScaleX, Y: p.ScaleY},
			FitsLayout: p.FitsLayout, FitsPanel: p.FitsPanel, AdjustProjectionSR: p.AdjustProjSR,
		})
	}
	if dm.FontShadowParam != nil {
		s := dm.FontShadowParam
		m.FontShadowParam = &bclyt.FontShadowParam{BlackR: s.BlackR, BlackG: s.BlackG, BlackB: s.BlackB, WhiteR: s.WhiteR, WhiteG: s.WhiteG, WhiteB: s.WhiteB, WhiteA: s.WhiteA}
	}
	return m, nil
}

func panelCommonToDoc(c bclyt.PanelCommon) DocPanelData {
	return DocPanelData{
		Visible: c.Visible, InfluencedAlpha: c.InfluencedAlpha, LocationAdjust: c.LocationAdjust,
		OwnHorizontal: originHName(c.OwnHorizontal), OwnVertical: originVName(c.OwnVertical),
		ParentHorizontal: originHName(c.ParentHorizontal), ParentVertical: originVName(c.ParentVertical),
		Alpha: c.Alpha, IgnorePartsMagnify: c.IgnorePartsMagnify, AdjustToPartsBounds: c.AdjustToPartsBounds,
		Name:         c.Name,
		TranslationX: c.Translation.X, TranslationY: c.Translation.Y, TranslationZ: c.Translation.Z,
		RotationX: c.Rotation.X, RotationY: c.Rotation.Y, RotationZ: c.Rotation.Z,
		ScaleX: c.Scale.X, ScaleY: c.Scale.Y,
		SizeX: c.Size.X, SizeY: c.Size.Y,
	}
}

func docToPanelCommon(d DocPanelData) (bclyt.PanelCommon, error) {
	ownH, err := parseOriginHName(d.OwnHorizontal)
	if err != nil {
		return bclyt.PanelCommon{}, err
	}
	ownV, err := parseOriginVName(d.OwnVertical)
	if err != nil {
		return bclyt.PanelCommon{}, err
	}
	parentH, err := parseOriginHName(d.ParentHorizontal)
	if err != nil {
		return bclyt.PanelCommon{}, err
	}
	parentV, err := parseOriginVName(d.ParentVertical)
	if err != nil {
		return bclyt.PanelCommon{}, err
	}
	return bclyt.PanelCommon{
		Visible: d.Visible, InfluencedAlpha: d.InfluencedAlpha, LocationAdjust: d.LocationAdjust,
		OwnHorizontal: ownH, OwnVertical: ownV, ParentHorizontal: parentH, ParentVertical: parentV,
		Alpha: d.Alpha, IgnorePartsMagnify: d.IgnorePartsMagnify, AdjustToPartsBounds: d.AdjustToPartsBounds,
		Name:        d.Name,
		Translation: bclyt.Vec3{X: d.TranslationX, Y: d.TranslationY, Z: d.TranslationZ},
		Rotation:    bclyt.Vec3{X: d.RotationX, Y: d.RotationY, Z: d.RotationZ},
		Scale:       bclyt.Vec2{X: d.ScaleX, Y: d.ScaleY},
		Size:        bclyt.Vec2{X: d.SizeX, Y: d.SizeY},
	}, nil
}

func panelKindName(k bclyt.PanelKind) string {
	switch k {
	case bclyt.PanelPicture:
		return "pic1"
	case bclyt.PanelText:
		return "txt1"
	case bclyt.PanelWindow:
		return "wnd1"
	default:
		return "pan1"
	}
}

func panelToDoc(p *bclyt.Panel) DocPanel {
	dp := DocPanel{Type: panelKindName(p.Kind)}
	dp.Data = panelCommonToDoc(p.Common)
	if p.Pic != nil {
		d := &DocPicData{TopLeftColor: p.Pic.TopLeftColor, TopRightColor: p.Pic.TopRightColor, BottomLeftColor: p.Pic.BottomLeftColor, BottomRightColor: p.Pic.BottomRightColor, MaterialIndex: p.Pic.MaterialIndex}
		for _, c := range p.Pic.CoordSets {
			d.CoordSets = append(d.CoordSets, DocTextureCoords{TLX: c.TopLeft.X, TLY: c.TopLeft.Y, TRX: c.TopRight.X, TRY: c.TopRight.Y, BLX: c.BottomLeft.X, BLY: c.BottomLeft.Y, BRX: c.BottomRight.X, BRY: c.BottomRight.Y})
		}
		dp.Data.Pic = d
	}
	if p.Txt != nil {
		t := p.Txt
		dp.Data.Txt = &DocTxtData{
			MaterialIndex: t.MaterialIndex, FontIndex: t.FontIndex, AdditionalChars: t.AdditionalChars,
			AnotherHorizontal: originHName(t.AnotherHorizontal), AnotherVertical: originVName(t.AnotherVertical),
			LineAlignment: lineAlignName(t.LineAlignment),
			TopColor:      t.TopColor, BottomColor: t.BottomColor,
			TextSizeX: t.TextSize.X, TextSizeY: t.TextSize.Y,
			CharacterSize: t.CharacterSize, LineSize: t.LineSize, Text: t.Text,
		}
	}
	if p.Wnd != nil {
		w := p.Wnd
		d := &DocWndData{
			ContentOverflowL: w.ContentOverflowL, ContentOverflowR: w.ContentOverflowR, ContentOverflowT: w.ContentOverflowT, ContentOverflowB: w.ContentOverflowB,
			Flag: w.Flag, TopLeftColor: w.TopLeftColor, TopRightColor: w.TopRightColor, BottomLeftColor: w.BottomLeftColor, BottomRightColor: w.BottomRightColor,
			MaterialIndex: w.MaterialIndex,
		}
		for _, u := range w.UVSets {
			d.UVSets = append(d.UVSets, DocUVSet{TLX: u.TopLeft.X, TLY: u.TopLeft.Y, TRX: u.TopRight.X, TRY: u.TopRight.Y, BLX: u.BottomLeft.X, BLY: u.BottomLeft.Y, BRX: u.BottomRight.X, BRY: u.BottomRight.Y})
		}
		for _, f := range w.Frames {
			d.Frames = append(d.Frames, DocWindowFrame{MaterialIndex: f.MaterialIndex, FlipType: f.FlipType})
		}
		dp.Data.Wnd = d
	}
	if len(p.UserData) > 0 {
		ud := &DocUserData{}
		for _, e := range p.UserData {
			ud.Entries = append(ud.Entries, userDataToDoc(e))
		}
		dp.UserData = ud
	}
	for _, c := range p.Children {
		dp.Children = append(dp.Children, panelToDoc(c))
	}
	return dp
}

func userDataToDoc(e bclyt.UserDataEntry) DocUserDataEntry {
	return DocUserDataEntry{Name: e.Name, Type: usdTypeName(e.Type), Str: e.Str, Ints: e.Ints, Floats: e.Floats}
}

func docToUserData(d DocUserDataEntry) (bclyt.UserDataEntry, error) {
	typ, err := parseUsdTypeName(d.Type)
	if err != nil {
		return bclyt.UserDataEntry{}, err
	}
	return bclyt.UserDataEntry{Name: d.Name, Type: typ, Str: d.Str, Ints: d.Ints, Floats: d.Floats}, nil
}

func parsePanelKindName(s string) bclyt.PanelKind {
	switch s {
	case "pic1":
		return bclyt.PanelPicture
	case "txt1":
		return bclyt.PanelText
	case "wnd1":
		return bclyt.PanelWindow
	default:
		return bclyt.PanelPlain
	}
}

func docToPanel(d DocPanel) (*bclyt.Panel, error) {
	common, err := docToPanelCommon(d.Data)
	if err != nil {
		return nil, err
	}
	p := &bclyt.Panel{Kind: parsePanelKindName(d.Type), Common: common}
	if d.Data.Pic != nil {
		pic := &bclyt.PicData{TopLeftColor: d.Data.Pic.TopLeftColor, TopRightColor: d.Data.Pic.TopRightColor, BottomLeftColor: d.Data.Pic.BottomLeftColor, BottomRightColor: d.Data.Pic.BottomRightColor, MaterialIndex: d.Data.Pic.MaterialIndex}
		for _, c := range d.Data.Pic.CoordSets {
			pic.CoordSets = append(pic.CoordSets, bclyt.TextureCoordSet{
				TopLeft: bclyt.Vec2{X: c.TLX, Y: c.TLY}, TopRight: bclyt.Vec2{X: c.TRX, Y: c.TRY},
				BottomLeft: bclyt.Vec2{X: c.BLX, Y: c.BLY}, BottomRight: bclyt.Vec2{X: c.BRX, Y: c.BRY},
			})
		}
		p.Pic = pic
	}
	if d.Data.Txt != nil {
		t := d.Data.Txt
		anotherH, err := parseOriginHName(t.AnotherHorizontal)
		if err != nil {
			return nil, err
		}
		anotherV, err := parseOriginVName(t.AnotherVertical)
		if err != nil {
			return nil, err
		}
		lineAlign, err := parseLineAlignName(t.LineAlignment)
		if err != nil {
			return nil, err
		}
		p.Txt = &bclyt.TxtData{
			MaterialIndex: t.MaterialIndex, FontIndex: t.FontIndex, AdditionalChars: t.AdditionalChars,
			AnotherHorizontal: anotherH, AnotherVertical: anotherV, LineAlignment: lineAlign,
			TopColor: t.TopColor, BottomColor: t.BottomColor,
			TextSize: bclyt.Vec2{X: t.TextSizeX, Y: t.TextSizeY}, CharacterSize: t.CharacterSize, LineSize: t.LineSize, Text: t.Text,
		}
	}
	if d.Data.Wnd != nil {
		w := d.Data.Wnd
		wd := &bclyt.WndData{
			ContentOverflowL: w.ContentOverflowL, ContentOverflowR: w.ContentOverflowR, ContentOverflowT: w.ContentOverflowT, ContentOverflowB: w.ContentOverflowB,
			Flag: w.Flag, TopLeftColor: w.TopLeftColor, TopRightColor: w.TopRightColor, BottomLeftColor: w.BottomLeftColor, BottomRightColor: w.BottomRightColor,
			MaterialIndex: w.MaterialIndex,
		}
		for _, u := range w.UVSets {
			wd.UVSets = append(wd.UVSets, bclyt.UVCoordSet{
				TopLeft: bclyt.Vec2{X: u.TLX, Y: u.TLY}, TopRight: bclyt.Vec2{X: u.TRX, Y: u.TRY},
				BottomLeft: bclyt.Vec2{X: u.BLX, Y: u.BLY}, BottomRight: bclyt.Vec2{X: u.BRX, Y: u.BRY},
			})
		}
		for _, f := range w.Frames {
			wd.Frames = append(wd.Frames, bclyt.WindowFrame{MaterialIndex: f.MaterialIndex, FlipType: f.FlipType})
		}
		p.Wnd = wd
	}
	if d.UserData != nil {
		for _, e := range d.UserData.Entries {
			ue, err := docToUserData(e)
			if err != nil {
				return nil, err
			}
			p.UserData = append(p.UserData, ue)
		}
	}
	for _, c := range d.Children {
		child, err := docToPanel(c)
		if err != nil {
			return nil, err
		}
		p.Children = append(p.Children, child)
	}
	return p, nil
}

func groupToDoc(g *bclyt.Group) DocGroup {
	dg := DocGroup{Name: g.Name, PanelRefs: append([]string(nil), g.PanelRefs...)}
	for _, c := range g.Children {
		dg.Children = append(dg.Children, groupToDoc(c))
	}
	return dg
}

func docToGroup(d DocGroup) *bclyt.Group {
	g := &bclyt.Group{Name: d.Name, PanelRefs: append([]string(nil), d.PanelRefs...)}
	for _, c := range d.Children {
		g.Children = append(g.Children, docToGroup(c))
	}
	return g
}
