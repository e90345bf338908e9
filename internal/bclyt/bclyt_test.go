package bclyt

import (
	"testing"

	"github.com/n3dsbcma/bcma/internal/binio"
)

func TestScenarioS4MinimalLayout(t *testing.T) {
	l := NewLayout()
	l.Origin = OriginNormal
	l.Size = Vec2{X: 320, Y: 240}
	l.RootPanel = &Panel{Kind: PanelPlain, Common: PanelCommon{Name: "root", Size: Vec2{X: 320, Y: 240}}}
	l.RootGroup = &Group{Name: "RootGroup"}

	out, err := Encode(l)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(out[0:4]) != clytMagic {
		t.Fatalf("bad magic %q", out[0:4])
	}

	got, err := Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Origin != OriginNormal {
		t.Fatalf("origin mismatch: %v", got.Origin)
	}
	if got.Size != (Vec2{X: 320, Y: 240}) {
		t.Fatalf("size mismatch: %+v", got.Size)
	}
	if got.RootPanel == nil || got.RootPanel.Common.Name != "root" {
		t.Fatalf("root panel mismatch: %+v", got.RootPanel)
	}
	if got.RootGroup == nil || got.RootGroup.Name != "RootGroup" {
		t.Fatalf("root group mismatch: %+v", got.RootGroup)
	}
}

func TestScenarioS5MaterialFlagWord(t *testing.T) {
	m := &Material{
		TexMaps:          []TexMapEntry{{}},
		TexCoordGens:     []TexCoordGen{{}},
		TevStages:        []TevStage{{}},
		ColorBlendMode:   &BlendMode{},
		ProjTexGenParams: []ProjTexGenParam{{}},
	}
	got := m.flagWord()
	want := uint32((1 << 14) | (1 << 10) | (1 << 6) | (1 << 4) | 1)
	if got != want {
		t.Fatalf("flag word = 0x%x, want 0x%x", got, want)
	}
}

func TestMaterialFlagWordRoundTrip(t *testing.T) {
	m := &Material{
		TexMaps:          []TexMapEntry{{}, {}},
		TexMatrices:      []TexMatrixEntry{{}},
		TexCoordGens:     []TexCoordGen{{}},
		TevStages:        []TevStage{{}, {}, {}},
		AlphaCompare:     &AlphaCompare{},
		ColorBlendMode:   &BlendMode{},
		UseTextureOnly:   true,
		AlphaBlendMode:   &BlendMode{},
		IndirectParam:    &IndirectParam{},
		ProjTexGenParams: []ProjTexGenParam{{}, {}},
		FontShadowParam:  &FontShadowParam{},
	}
	flags := unpackMaterialFlags(m.flagWord())
	if flags.texMapCount != 2 || flags.texMatrixCount != 1 || flags.texCoordGenCount != 1 ||
		flags.tevStageCount != 3 || !flags.hasAlphaCompare || !flags.hasColorBlendMode ||
		!flags.hasUseTextureOnly || !flags.hasAlphaBlendMode || !flags.hasIndirectParam ||
		flags.projTexGenCount != 2 || !flags.hasFontShadowParam {
		t.Fatalf("unpacked flags do not match source material: %+v", flags)
	}
}

func TestColorTableDedup(t *testing.T) {
	ct := NewColorTable()
	a := ct.Insert(RGBA{R: 1, G: 2, B: 3, A: 4})
	b := ct.Insert(RGBA{R: 5, G: 6, B: 7, A: 8})
	c := ct.Insert(RGBA{R: 1, G: 2, B: 3, A: 4})
	if a != c {
		t.Fatalf("expected identical colour to reuse index %d, got %d", a, c)
	}
	if a == b {
		t.Fatalf("expected distinct colours to get distinct indices")
	}
	if ct.Len() != 2 {
		t.Fatalf("expected 2 distinct colours, got %d", ct.Len())
	}
}

func TestScenarioS6UserDataAdjacentOverride(t *testing.T) {
	entries := []UserDataEntry{{Name: "Hello", Type: UsdString, Str: "World"}}
	payload := EncodeUserData(entries, OverrideAdjacent)

	r := binio.NewReader(payload)
	got, err := DecodeUserData(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Hello" || got[0].Str != "World" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestScenarioS6UserDataTrailingOverride(t *testing.T) {
	entries := []UserDataEntry{{Name: "Hello", Type: UsdString, Str: "World"}}
	payload := EncodeUserData(entries, OverrideTrailing)

	r := binio.NewReader(payload)
	got, err := DecodeUserData(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Hello" || got[0].Str != "World" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

// TestPanelTreeUserDataOnNonLeafPanel exercises the one asymmetry spec
// §4.9 calls out: a non-leaf panel's UserData must be attached to that
// panel itself after round-tripping, not to its last child. Regression
// test for a bug where encodePanelTree emitted usd1 inside the pas1…pae1
// pair instead of after it, which made the decoder (whose readUserData
// always targets "the panel that just closed") attach a container's
// UserData to its own last child.
func TestPanelTreeUserDataOnNonLeafPanel(t *testing.T) {
	grandchild := &Panel{Kind: PanelPlain, Common: PanelCommon{Name: "grandchild", Size: Vec2{X: 10, Y: 10}}}
	child := &Panel{
		Kind:     PanelPlain,
		Common:   PanelCommon{Name: "child", Size: Vec2{X: 20, Y: 20}},
		Children: []*Panel{grandchild},
		UserData: []UserDataEntry{{Name: "IsAreaRect", Type: UsdInts, Ints: []int32{1}}},
	}
	root := &Panel{
		Kind:     PanelPlain,
		Common:   PanelCommon{Name: "root", Size: Vec2{X: 320, Y: 240}},
		Children: []*Panel{child},
	}

	l := NewLayout()
	l.Origin = OriginNormal
	l.Size = Vec2{X: 320, Y: 240}
	l.RootPanel = root
	l.RootGroup = &Group{Name: "RootGroup"}

	out, err := Encode(l)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	gotRoot := got.RootPanel
	if gotRoot == nil || len(gotRoot.Children) != 1 {
		t.Fatalf("expected root with one child, got %+v", gotRoot)
	}
	gotChild := gotRoot.Children[0]
	if gotChild.Common.Name != "child" {
		t.Fatalf("expected child panel %q, got %q", "child", gotChild.Common.Name)
	}
	if len(gotChild.UserData) != 1 || gotChild.UserData[0].Name != "IsAreaRect" {
		t.Fatalf("expected UserData on the non-leaf child panel, got %+v", gotChild.UserData)
	}
	if len(gotChild.Children) != 1 || gotChild.Children[0].Common.Name != "grandchild" {
		t.Fatalf("expected grandchild panel preserved, got %+v", gotChild.Children)
	}
	if len(gotChild.Children[0].UserData) != 0 {
		t.Fatalf("grandchild must not receive the child's UserData, got %+v", gotChild.Children[0].UserData)
	}
}

func TestUserDataAutoOverrideMatrix(t *testing.T) {
	entries := []UserDataEntry{
		{Name: "IsAreaRect", Type: UsdInts, Ints: []int32{1}},
		{Name: "LayoutIndex", Type: UsdInts, Ints: []int32{2}},
		{Name: "Comment", Type: UsdString, Str: "hi"},
	}
	payload := EncodeUserData(entries, OverrideAuto)
	r := binio.NewReader(payload)
	got, err := DecodeUserData(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range entries {
		if got[i].Name != want.Name {
			t.Fatalf("entry %d name = %q, want %q", i, got[i].Name, want.Name)
		}
	}
}
