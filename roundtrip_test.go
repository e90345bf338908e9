package bcma

import (
	"bytes"
	"testing"

	"github.com/n3dsbcma/bcma/internal/bclyt"
)

// infoLayoutWithNonLeafUserData builds a layout whose root panel has a
// non-leaf child carrying both a grandchild and a UserData block — the
// "IsAreaRect"/"LayoutIndex" shape spec §4.9's OverrideAuto rule actually
// keys on, and the case that previously mis-serialized in encodePanelTree.
func infoLayoutWithNonLeafUserData() *bclyt.Layout {
	l := minimalLayoutForTest()
	grandchild := &bclyt.Panel{Kind: bclyt.PanelPlain, Common: bclyt.PanelCommon{Name: "grandchild", Size: bclyt.Vec2{X: 10, Y: 10}}}
	child := &bclyt.Panel{
		Kind:     bclyt.PanelPlain,
		Common:   bclyt.PanelCommon{Name: "child", Size: bclyt.Vec2{X: 20, Y: 20}},
		Children: []*bclyt.Panel{grandchild},
		UserData: []bclyt.UserDataEntry{{Name: "IsAreaRect", Type: bclyt.UsdInts, Ints: []int32{1}}},
	}
	l.RootPanel.Children = []*bclyt.Panel{child}
	return l
}

// literalLZSS10 is a trivial LZSS-10 encoder used only by this test: every
// byte is emitted as a literal (flag bit 0), so internal/lzss.Decompress can
// always parse it back even though it compresses nothing. A real encoder is
// an injected capability per Codec's design, not part of this package.
func literalLZSS10(data []byte) ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte(0x10)
	out.WriteByte(byte(len(data)))
	out.WriteByte(byte(len(data) >> 8))
	out.WriteByte(byte(len(data) >> 16))

	for i := 0; i < len(data); i += 8 {
		end := i + 8
		if end > len(data) {
			end = len(data)
		}
		chunk := data[i:end]
		out.WriteByte(0x00)
		out.Write(chunk)
	}
	return out.Bytes(), nil
}

func buildTestManual(t *testing.T) *Manual {
	t.Helper()
	m := NewManual()
	m.CommonTexture.Images.Put("bg", []byte{0x01, 0x02, 0x03, 0x04})
	arc := m.AddImageArc("Icons")
	arc.Images.Put("star", []byte{0xAA, 0xBB})

	m.BcmaInfo = minimalLayoutForTest()

	bundle, err := m.PagesBundle(RegionEUR, "en")
	if err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	bundle.Index = minimalLayoutForTest()
	page := bundle.AddSmallPage("001")
	page.SubPages = append(page.SubPages, SubPage{Tag: "top", Layout: minimalLayoutForTest()})
	largePage := bundle.AddLargePage("001")
	largePage.SubPages = append(largePage.SubPages, SubPage{Tag: "info", Layout: infoLayoutWithNonLeafUserData()})

	return m
}

func TestGenerateThenExtractThenLoadRoundTrip(t *testing.T) {
	m := buildTestManual(t)

	codec, err := NewCodec(literalLZSS10)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	var buf bytes.Buffer
	if err := m.Generate(&buf, codec); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	doc, err := Extract(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	got, err := LoadManual(doc)
	if err != nil {
		t.Fatalf("LoadManual: %v", err)
	}

	if data, ok := got.CommonTexture.Images.Get("bg"); !ok || !bytes.Equal(data, []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Fatalf("common texture round-trip mismatch: %v %v", data, ok)
	}
	if len(got.ImageArcs) != 1 || got.ImageArcs[0].Name != "Icons" {
		t.Fatalf("image arc round-trip mismatch: %+v", got.ImageArcs)
	}
	if data, ok := got.ImageArcs[0].Images.Get("star"); !ok || !bytes.Equal(data, []byte{0xAA, 0xBB}) {
		t.Fatalf("image arc texture round-trip mismatch: %v %v", data, ok)
	}

	if got.BcmaInfo == nil || got.BcmaInfo.RootPanel == nil || got.BcmaInfo.RootPanel.Common.Name != "root" {
		t.Fatalf("BcmaInfo round-trip mismatch: %+v", got.BcmaInfo)
	}

	bundle, err := got.PagesBundle(RegionEUR, "en")
	if err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	if bundle.Index == nil {
		t.Fatal("expected a non-nil index layout after round-trip")
	}
	if len(bundle.SmallPages) != 1 || bundle.SmallPages[0].Number != "001" {
		t.Fatalf("small pages round-trip mismatch: %+v", bundle.SmallPages)
	}
	if sub := bundle.SmallPages[0].SubPage("top"); sub == nil || sub.Layout == nil {
		t.Fatalf("small page sub-page round-trip mismatch: %+v", bundle.SmallPages[0])
	}
	if len(bundle.LargePages) != 1 || bundle.LargePages[0].Number != "001" {
		t.Fatalf("large pages round-trip mismatch: %+v", bundle.LargePages)
	}
	sub := bundle.LargePages[0].SubPage("info")
	if sub == nil || sub.Layout == nil {
		t.Fatalf("large page sub-page round-trip mismatch: %+v", bundle.LargePages[0])
	}
	if len(sub.Layout.RootPanel.Children) != 1 || sub.Layout.RootPanel.Children[0].Common.Name != "child" {
		t.Fatalf("expected the info page's non-leaf child panel to survive, got %+v", sub.Layout.RootPanel.Children)
	}
	infoChild := sub.Layout.RootPanel.Children[0]
	if len(infoChild.UserData) != 1 || infoChild.UserData[0].Name != "IsAreaRect" {
		t.Fatalf("expected the non-leaf child's UserData to survive the full pipeline, got %+v", infoChild.UserData)
	}
	if len(infoChild.Children) != 1 || len(infoChild.Children[0].UserData) != 0 {
		t.Fatalf("grandchild must not have received the child's UserData after a full round-trip, got %+v", infoChild.Children)
	}
}

func TestGenerateRejectsInvalidManual(t *testing.T) {
	m := NewManual()
	if _, err := m.PagesBundle(RegionEUR, "en"); err != nil {
		t.Fatalf("PagesBundle: %v", err)
	}
	// no Index set: Validate (and therefore Generate) must reject this.
	codec, err := NewCodec(literalLZSS10)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	var buf bytes.Buffer
	if err := m.Generate(&buf, codec); err == nil {
		t.Fatal("expected Generate to fail for a Manual missing an Index layout")
	}
}
