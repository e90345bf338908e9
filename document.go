package bcma

import "encoding/xml"

// Document is the editable, hierarchical tagged-tree artefact (spec
// §6.4, component I): the result of extraction and the input to
// generation. Its shape mirrors the schema in §6.4 directly — one struct
// per tag, `xml:"...,attr"` for attributes, nested structs for children —
// grounded on the idmllib designmap.xml Document model in the retrieval
// pack, which faces the identical problem of a deep, attribute-heavy
// tagged tree standing in for a binary container format.
type Document struct {
	XMLName    xml.Name         `xml:"Manual"`
	ImageArcs  DocImageArcs     `xml:"ImageArcs"`
	BcmaInfo   DocBCLYTHolder   `xml:"BcmaInfo"`
	Regions    []DocRegion      `xml:"Region"`
}

// DocImageArcs holds the common texture set and every named image arc.
type DocImageArcs struct {
	Common DocImageSet   `xml:"Common_texture"`
	Arcs   []DocImageArc `xml:"Arc"`
}

// DocImageArc is one named image-arc (spec §6.2 "<ArcName>.arc").
type DocImageArc struct {
	Name   string `xml:"name,attr"`
	Images []DocImage `xml:"Image"`
}

// DocImageSet is the Common_texture image collection.
type DocImageSet struct {
	Images []DocImage `xml:"Image"`
}

// DocImage is one opaque CLIM texture, embedded as hex-RLE text (spec
// §4.3).
type DocImage struct {
	Name string `xml:"name,attr"`
	Hex  string `xml:",chardata"`
}

// DocBCLYTHolder wraps one embedded BCLYT sub-document, used for
// BcmaInfo, Index, and every Page/SubPage layout.
type DocBCLYTHolder struct {
	BCLYT DocBCLYT `xml:"BCLYT"`
}

// DocRegion is one <Region region="EUR"> element (spec §3.1). The
// attribute is named "region", not "name", following extractor.py's
// GenXML.Region(..., region=r) — spec §6.4 leaves the exact attribute
// name unstated.
type DocRegion struct {
	Region string     `xml:"region,attr"`
	Pages  []DocPages `xml:"Pages"`
}

// DocPages is one <Pages lang="en"> bundle: an Index plus ordered pages
// (spec §3.1 PagesBundle).
type DocPages struct {
	Lang  string    `xml:"lang,attr"`
	Index DocBCLYTHolder `xml:"Index"`
	Pages []DocPage `xml:"Page"`
}

// DocPage is one <Page page="001"> element; its sub-pages are ordered as
// encountered (spec §3.1).
type DocPage struct {
	Page     string       `xml:"page,attr"`
	SubPages []DocSubPage `xml:"SubPage"`
}

// DocSubPage is one <SubPage pagesize="small|large" subpage="tag">
// element.
type DocSubPage struct {
	PageSize string         `xml:"pagesize,attr"`
	SubPage  string         `xml:"subpage,attr"`
	BCLYT    DocBCLYT       `xml:"BCLYT"`
}

// DocBCLYT is the XML shape of one decoded BCLYT tree (spec §6.4's
// "<BCLYT>" element): canvas metadata, the three symbol/colour tables,
// the material table, and the panel/group trees.
type DocBCLYT struct {
	Layout    DocLayout     `xml:"Layout"`
	Colors    DocColors     `xml:"Colors"`
	Textures  DocTextures   `xml:"Textures"`
	Fonts     DocFonts      `xml:"Fonts"`
	Materials DocMaterials  `xml:"Materials"`
	Panel     DocPanel      `xml:"Panel"`
	Group     DocGroup      `xml:"Group"`
}

// DocLayout mirrors bclyt.Layout's canvas metadata.
type DocLayout struct {
	Origin string  `xml:"origin,attr"`
	Width  float32 `xml:"width,attr"`
	Height float32 `xml:"height,attr"`
}

// DocColors is the indexed colour table (spec §6.4: "<Color r g b a
// index>").
type DocColors struct {
	Colors []DocColor `xml:"Color"`
}

type DocColor struct {
	Index int   `xml:"index,attr"`
	R     uint8 `xml:"r,attr"`
	G     uint8 `xml:"g,attr"`
	B     uint8 `xml:"b,attr"`
	A     uint8 `xml:"a,attr"`
}

type DocTextures struct {
	Names []string `xml:"Texture"`
}

type DocFonts struct {
	Names []string `xml:"Font"`
}

type DocMaterials struct {
	Materials []DocMaterial `xml:"Material"`
}

// DocMaterial mirrors bclyt.Material field-for-field; optional
// sub-records are nil-pointer-omitted rather than flag-gated here — the
// flag word itself is derived from the sub-records present and is not
// stored in the document, except for its use-texture-only bit, which is
// kept as the useTextureOnly attribute.
type DocMaterial struct {
	Name              string             `xml:"name,attr"`
	TevColor          int                `xml:"tevColor,attr"`
	TevConstantColors [6]int             `xml:"TevConstantColor"`
	TexMaps           []DocTexMap        `xml:"TexMap"`
	TexMatrices       []DocTexMatrix     `xml:"TexMatrix"`
	TexCoordGens      []DocTexCoordGen   `xml:"TexCoordGen"`
	TevStages         []DocTevStage      `xml:"TevStage"`
	AlphaCompare      *DocAlphaCompare   `xml:"AlphaCompare"`
	ColorBlendMode    *DocBlendMode      `xml:"ColorBlendMode"`
	UseTextureOnly    bool               `xml:"useTextureOnly,attr"`
	AlphaBlendMode    *DocBlendMode      `xml:"AlphaBlendMode"`
	IndirectParam     *DocIndirectParam  `xml:"IndirectParam"`
	ProjTexGenParams  []DocProjTexGen    `xml:"ProjTexGenParam"`
	FontShadowParam   *DocFontShadow     `xml:"FontShadowParam"`
}

type DocTexMap struct {
	TextureIndex int    `xml:"textureIndex,attr"`
	WrapS        string `xml:"wrapS,attr"`
	WrapT        string `xml:"wrapT,attr"`
	MinFilter    string `xml:"minFilter,attr"`
	MagFilter    string `xml:"magFilter,attr"`
}

type DocTexMatrix struct {
	TranslationX float32 `xml:"translationX,attr"`
	TranslationY float32 `xml:"translationY,attr"`
	Rotation     float32 `xml:"rotation,attr"`
	ScaleX       float32 `xml:"scaleX,attr"`
	ScaleY       float32 `xml:"scaleY,attr"`
}

type DocTexCoordGen struct {
	Matrix string `xml:"matrix,attr"`
	Source string `xml:"source,attr"`
}

type DocTevStage struct {
	RGBMode   uint8 `xml:"rgbMode,attr"`
	AlphaMode uint8 `xml:"alphaMode,attr"`
}

// DocAlphaCompare's Mode is a raw comparison-function value, not a named
// enum: bclyt.AlphaCompare.CompareMode has no corresponding closed Go enum
// type (original_source's attr_control serializes it as a bare integer
// too, via its str(v) fallback — there is no name table for this field).
type DocAlphaCompare struct {
	Mode      uint32  `xml:"mode,attr"`
	Reference float32 `xml:"reference,attr"`
}

type DocBlendMode struct {
	BlendOp    string `xml:"blendOp,attr"`
	SrcFactor  string `xml:"srcFactor,attr"`
	DstFactor  string `xml:"dstFactor,attr"`
	LogicOp    string `xml:"logicOp,attr"`
}

type DocIndirectParam struct {
	Rotation float32 `xml:"rotation,attr"`
	ScaleX   float32 `xml:"scaleX,attr"`
	ScaleY   float32 `xml:"scaleY,attr"`
}

type DocProjTexGen struct {
	PosX   float32 `xml:"posX,attr"`
	PosY   float32 `xml:"posY,attr"`
	ScaleX float32 `xml:"scaleX,attr"`
	ScaleY float32 `xml:"scaleY,attr"`
	FitsLayout   bool `xml:"fitsLayout,attr"`
	FitsPanel    bool `xml:"fitsPanel,attr"`
	AdjustProjSR bool `xml:"adjustProjectionSR,attr"`
}

type DocFontShadow struct {
	BlackR uint8 `xml:"blackR,attr"`
	BlackG uint8 `xml:"blackG,attr"`
	BlackB uint8 `xml:"blackB,attr"`
	WhiteR uint8 `xml:"whiteR,attr"`
	WhiteG uint8 `xml:"whiteG,attr"`
	WhiteB uint8 `xml:"whiteB,attr"`
	WhiteA uint8 `xml:"whiteA,attr"`
}

// DocPanel mirrors one bclyt.Panel: common attributes, the kind-specific
// payload, optional user data, and child panels (spec §6.4: root
// "<Panel>" with nested "<Panel>" children).
type DocPanel struct {
	Type     string         `xml:"type,attr"`
	Data     DocPanelData   `xml:"PanelData"`
	UserData *DocUserData   `xml:"UserData"`
	Children []DocPanel     `xml:"Panel"`
}

// DocPanelData carries PanelCommon plus whichever of Pic/Txt/Wnd applies,
// selected by the enclosing DocPanel.Type.
type DocPanelData struct {
	Visible          bool    `xml:"visible,attr"`
	InfluencedAlpha  bool    `xml:"influencedAlpha,attr"`
	LocationAdjust   bool    `xml:"locationAdjust,attr"`
	OwnHorizontal    string  `xml:"ownHorizontal,attr"`
	OwnVertical      string  `xml:"ownVertical,attr"`
	ParentHorizontal string  `xml:"parentHorizontal,attr"`
	ParentVertical   string  `xml:"parentVertical,attr"`
	Alpha            uint8   `xml:"alpha,attr"`
	IgnorePartsMagnify  bool `xml:"ignorePartsMagnify,attr"`
	AdjustToPartsBounds bool `xml:"adjustToPartsBounds,attr"`
	Name             string  `xml:"name,attr"`
	TranslationX float32 `xml:"translationX,attr"`
	TranslationY float32 `xml:"translationY,attr"`
	TranslationZ float32 `xml:"translationZ,attr"`
	RotationX    float32 `xml:"rotationX,attr"`
	RotationY    float32 `xml:"rotationY,attr"`
	RotationZ    float32 `xml:"rotationZ,attr"`
	ScaleX       float32 `xml:"scaleX,attr"`
	ScaleY       float32 `xml:"scaleY,attr"`
	SizeX        float32 `xml:"sizeX,attr"`
	SizeY        float32 `xml:"sizeY,attr"`

	Pic *DocPicData `xml:"Pic"`
	Txt *DocTxtData `xml:"Txt"`
	Wnd *DocWndData `xml:"Wnd"`
}

type DocPicData struct {
	TopLeftColor     int `xml:"topLeftColor,attr"`
	TopRightColor    int `xml:"topRightColor,attr"`
	BottomLeftColor  int `xml:"bottomLeftColor,attr"`
	BottomRightColor int `xml:"bottomRightColor,attr"`
	MaterialIndex int                `xml:"materialIndex,attr"`
	CoordSets     []DocTextureCoords `xml:"CoordSet"`
}

type DocTextureCoords struct {
	TLX float32 `xml:"tlx,attr"`
	TLY float32 `xml:"tly,attr"`
	TRX float32 `xml:"trx,attr"`
	TRY float32 `xml:"try,attr"`
	BLX float32 `xml:"blx,attr"`
	BLY float32 `xml:"bly,attr"`
	BRX float32 `xml:"brx,attr"`
	BRY float32 `xml:"bry,attr"`
}

type DocTxtData struct {
	MaterialIndex     int     `xml:"materialIndex,attr"`
	FontIndex         int     `xml:"fontIndex,attr"`
	AdditionalChars   int     `xml:"additionalChars,attr"`
	AnotherHorizontal string  `xml:"anotherHorizontal,attr"`
	AnotherVertical   string  `xml:"anotherVertical,attr"`
	LineAlignment     string  `xml:"lineAlignment,attr"`
	TopColor          int     `xml:"topColor,attr"`
	BottomColor       int     `xml:"bottomColor,attr"`
	TextSizeX         float32 `xml:"textSizeX,attr"`
	TextSizeY         float32 `xml:"textSizeY,attr"`
	CharacterSize     float32 `xml:"characterSize,attr"`
	LineSize          float32 `xml:"lineSize,attr"`
	Text              string  `xml:",chardata"`
}

type DocWndData struct {
	ContentOverflowL float32 `xml:"contentOverflowL,attr"`
	ContentOverflowR float32 `xml:"contentOverflowR,attr"`
	ContentOverflowT float32 `xml:"contentOverflowT,attr"`
	ContentOverflowB float32 `xml:"contentOverflowB,attr"`
	Flag             uint8   `xml:"flag,attr"`
	TopLeftColor     int `xml:"topLeftColor,attr"`
	TopRightColor    int `xml:"topRightColor,attr"`
	BottomLeftColor  int `xml:"bottomLeftColor,attr"`
	BottomRightColor int `xml:"bottomRightColor,attr"`
	MaterialIndex int              `xml:"materialIndex,attr"`
	UVSets        []DocUVSet       `xml:"UVSet"`
	Frames        []DocWindowFrame `xml:"Frame"`
}

type DocUVSet struct {
	TLX float32 `xml:"tlx,attr"`
	TLY float32 `xml:"tly,attr"`
	TRX float32 `xml:"trx,attr"`
	TRY float32 `xml:"try,attr"`
	BLX float32 `xml:"blx,attr"`
	BLY float32 `xml:"bly,attr"`
	BRX float32 `xml:"brx,attr"`
	BRY float32 `xml:"bry,attr"`
}

type DocWindowFrame struct {
	MaterialIndex int   `xml:"materialIndex,attr"`
	FlipType      uint8 `xml:"flipType,attr"`
}

// DocUserData is one panel's UserData block (spec §3.2, §4.9).
type DocUserData struct {
	Entries []DocUserDataEntry `xml:"Entry"`
}

type DocUserDataEntry struct {
	Name   string    `xml:"name,attr"`
	Type   string    `xml:"type,attr"`
	Str    string    `xml:"str,attr,omitempty"`
	Ints   []int32   `xml:"int"`
	Floats []float32 `xml:"float"`
}

// DocGroup mirrors one bclyt.Group.
type DocGroup struct {
	Name      string     `xml:"name,attr"`
	PanelRefs []string   `xml:"PanelRef"`
	Children  []DocGroup `xml:"Group"`
}

// MarshalDocument serializes doc as indented XML, the on-disk form of the
// editable artefact (spec §6.4).
func MarshalDocument(doc *Document) ([]byte, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// UnmarshalDocument parses an editable-artefact XML document.
func UnmarshalDocument(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
