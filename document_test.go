package bcma

import (
	"testing"

	"github.com/n3dsbcma/bcma/internal/bclyt"
)

func minimalLayoutForTest() *bclyt.Layout {
	l := bclyt.NewLayout()
	l.Origin = bclyt.OriginNormal
	l.Size = bclyt.Vec2{X: 320, Y: 240}
	l.RootPanel = &bclyt.Panel{Kind: bclyt.PanelPlain, Common: bclyt.PanelCommon{Name: "root", Size: bclyt.Vec2{X: 320, Y: 240}}}
	l.RootGroup = &bclyt.Group{Name: "RootGroup"}
	return l
}

func TestDocumentMarshalUnmarshalRoundTrip(t *testing.T) {
	doc := &Document{
		ImageArcs: DocImageArcs{
			Common: DocImageSet{Images: []DocImage{{Name: "bg", Hex: encodeImageHex([]byte{0x01, 0x02, 0x03})}}},
			Arcs:   []DocImageArc{{Name: "Icons", Images: []DocImage{{Name: "star", Hex: encodeImageHex([]byte{0xff})}}}},
		},
		BcmaInfo: DocBCLYTHolder{BCLYT: layoutToDoc(minimalLayoutForTest())},
		Regions: []DocRegion{
			{
				Region: string(RegionEUR),
				Pages: []DocPages{
					{
						Lang:  "en",
						Index: DocBCLYTHolder{BCLYT: layoutToDoc(minimalLayoutForTest())},
						Pages: []DocPage{
							{Page: "001", SubPages: []DocSubPage{
								{PageSize: "small", SubPage: "top", BCLYT: layoutToDoc(minimalLayoutForTest())},
							}},
						},
					},
				},
			},
		},
	}

	out, err := MarshalDocument(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := UnmarshalDocument(out)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got.ImageArcs.Common.Images) != 1 || got.ImageArcs.Common.Images[0].Name != "bg" {
		t.Fatalf("common texture mismatch: %+v", got.ImageArcs.Common)
	}
	if len(got.ImageArcs.Arcs) != 1 || got.ImageArcs.Arcs[0].Name != "Icons" {
		t.Fatalf("image arc mismatch: %+v", got.ImageArcs.Arcs)
	}
	if len(got.Regions) != 1 || got.Regions[0].Region != string(RegionEUR) {
		t.Fatalf("region mismatch: %+v", got.Regions)
	}
	if len(got.Regions[0].Pages) != 1 || got.Regions[0].Pages[0].Lang != "en" {
		t.Fatalf("pages mismatch: %+v", got.Regions[0].Pages)
	}
	page := got.Regions[0].Pages[0]
	if len(page.Pages) != 1 || page.Pages[0].Page != "001" {
		t.Fatalf("page mismatch: %+v", page.Pages)
	}
	if len(page.Pages[0].SubPages) != 1 || page.Pages[0].SubPages[0].SubPage != "top" {
		t.Fatalf("subpage mismatch: %+v", page.Pages[0].SubPages)
	}
}

// TestLayoutToDocPreservesUserDataOnNonLeafPanel guards the translation
// layer's half of the non-leaf-UserData case: DocPanel carries UserData as
// a plain field alongside Children, so layoutToDoc/docToLayout never had
// the binary encoder's pas1/pae1 ordering hazard, but nothing previously
// exercised a panel tree this shape through the Document layer either.
func TestLayoutToDocPreservesUserDataOnNonLeafPanel(t *testing.T) {
	grandchild := &bclyt.Panel{Kind: bclyt.PanelPlain, Common: bclyt.PanelCommon{Name: "grandchild", Size: bclyt.Vec2{X: 10, Y: 10}}}
	child := &bclyt.Panel{
		Kind:     bclyt.PanelPlain,
		Common:   bclyt.PanelCommon{Name: "child", Size: bclyt.Vec2{X: 20, Y: 20}},
		Children: []*bclyt.Panel{grandchild},
		UserData: []bclyt.UserDataEntry{{Name: "IsAreaRect", Type: bclyt.UsdInts, Ints: []int32{1}}},
	}
	l := minimalLayoutForTest()
	l.RootPanel.Children = []*bclyt.Panel{child}

	doc := layoutToDoc(l)
	back, err := docToLayout(doc)
	if err != nil {
		t.Fatalf("docToLayout: %v", err)
	}

	if len(back.RootPanel.Children) != 1 || back.RootPanel.Children[0].Common.Name != "child" {
		t.Fatalf("expected one child panel named %q, got %+v", "child", back.RootPanel.Children)
	}
	gotChild := back.RootPanel.Children[0]
	if len(gotChild.UserData) != 1 || gotChild.UserData[0].Name != "IsAreaRect" {
		t.Fatalf("expected UserData on the non-leaf child, got %+v", gotChild.UserData)
	}
	if len(gotChild.Children) != 1 || gotChild.Children[0].Common.Name != "grandchild" {
		t.Fatalf("expected grandchild panel preserved, got %+v", gotChild.Children)
	}
	if len(gotChild.Children[0].UserData) != 0 {
		t.Fatalf("grandchild must not receive the child's UserData, got %+v", gotChild.Children[0].UserData)
	}
}

func TestAlphaCompareModeSurvivesAsRawInteger(t *testing.T) {
	m := &bclyt.Material{
		Name:         "m",
		AlphaCompare: &bclyt.AlphaCompare{CompareMode: 7, Reference: 128},
	}
	doc := materialToDoc(m)
	if doc.AlphaCompare == nil || doc.AlphaCompare.Mode != 7 || doc.AlphaCompare.Reference != 128 {
		t.Fatalf("alpha compare not preserved as raw integer: %+v", doc.AlphaCompare)
	}

	back, err := docToMaterial(doc)
	if err != nil {
		t.Fatalf("docToMaterial: %v", err)
	}
	if back.AlphaCompare == nil || back.AlphaCompare.CompareMode != 7 || back.AlphaCompare.Reference != 128 {
		t.Fatalf("round trip mismatch: %+v", back.AlphaCompare)
	}
}
