package bcma

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/n3dsbcma/bcma/internal/bclyt"
	"github.com/n3dsbcma/bcma/internal/darc"
	"github.com/n3dsbcma/bcma/internal/lzss"
)

// Extract reads a raw BCMA file and reconstructs its editable Document
// form (spec §4.8's "load" direction in reverse): outer DARC, then each
// inner `<name>.arc` member LZSS-10 decompressed and parsed as an inner
// DARC, then every .bclim embedded as hex-RLE text and every .bclyt
// binary-decoded and translated to its XML shape. Grounded on
// extractor.py's do_arc/do_bclyt pipeline, collapsed into one in-memory
// pass since this codec never stages intermediate files on disk (spec §5).
func Extract(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	outer, err := darc.Decode(raw)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	regionIdx := map[Region]int{}

	for _, f := range outer.Files {
		name := strings.TrimSuffix(f.Path, ".arc")
		if name == f.Path {
			return nil, errors.Wrapf(ErrUnknownSymbol, "bcma: outer entry %q is not a .arc member", f.Path)
		}

		innerRaw, err := lzss.Decompress(f.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "bcma: decompressing %q", f.Path)
		}
		inner, err := darc.Decode(innerRaw)
		if err != nil {
			return nil, errors.Wrapf(err, "bcma: parsing inner arc %q", name)
		}

		switch {
		case name == "BcmaInfo":
			data, ok := inner.Get("blyt/BcmaInfo.bclyt")
			if !ok {
				return nil, errors.Wrap(ErrUnknownSymbol, "bcma: BcmaInfo.arc missing blyt/BcmaInfo.bclyt")
			}
			l, err := bclyt.Decode(data)
			if err != nil {
				return nil, errors.Wrap(err, "bcma: decoding BcmaInfo")
			}
			doc.BcmaInfo = DocBCLYTHolder{BCLYT: layoutToDoc(l)}

		case name == "Common_texture":
			set, err := extractImageSet(inner)
			if err != nil {
				return nil, err
			}
			doc.ImageArcs.Common = set

		case strings.HasSuffix(name, "_index"), strings.HasSuffix(name, "_large"), strings.HasSuffix(name, "_small"):
			region, lang, kind, err := splitRegLangKind(name)
			if err != nil {
				return nil, err
			}
			pages, err := findOrAddPages(doc, regionIdx, region, lang)
			if err != nil {
				return nil, err
			}
			if err := extractRegLangArc(inner, kind, pages); err != nil {
				return nil, errors.Wrapf(err, "bcma: extracting %q", name)
			}

		default:
			set, err := extractImageSet(inner)
			if err != nil {
				return nil, err
			}
			doc.ImageArcs.Arcs = append(doc.ImageArcs.Arcs, DocImageArc{Name: name, Images: set.Images})
		}
	}

	return doc, nil
}

func extractImageSet(inner *darc.Tree) (DocImageSet, error) {
	var set DocImageSet
	for _, f := range inner.Files {
		base := strings.TrimPrefix(f.Path, "timg/")
		base = strings.TrimSuffix(base, ".bclim")
		set.Images = append(set.Images, DocImage{Name: base, Hex: encodeImageHex(f.Data)})
	}
	return set, nil
}

// splitRegLangKind parses "<REGION>_<lang>_<kind>" where kind is one of
// index/large/small (spec §6.2's inner-DARC naming).
func splitRegLangKind(name string) (region Region, lang string, kind string, err error) {
	for _, k := range []string{"index", "large", "small"} {
		suffix := "_" + k
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		regLang := strings.TrimSuffix(name, suffix)
		parts := strings.SplitN(regLang, "_", 2)
		if len(parts) != 2 {
			return "", "", "", errors.Wrapf(ErrUnknownSymbol, "bcma: malformed region/lang arc name %q", name)
		}
		return Region(parts[0]), parts[1], k, nil
	}
	return "", "", "", errors.Wrapf(ErrUnknownSymbol, "bcma: unrecognised arc name %q", name)
}

func findOrAddPages(doc *Document, regionIdx map[Region]int, region Region, lang string) (*DocPages, error) {
	ri, ok := regionIdx[region]
	if !ok {
		doc.Regions = append(doc.Regions, DocRegion{Region: string(region)})
		ri = len(doc.Regions) - 1
		regionIdx[region] = ri
	}
	r := &doc.Regions[ri]
	for i := range r.Pages {
		if r.Pages[i].Lang == lang {
			return &r.Pages[i], nil
		}
	}
	r.Pages = append(r.Pages, DocPages{Lang: lang})
	return &r.Pages[len(r.Pages)-1], nil
}

func extractRegLangArc(inner *darc.Tree, kind string, pages *DocPages) error {
	switch kind {
	case "index":
		data, ok := inner.Get("blyt/Index.bclyt")
		if !ok {
			return errors.Wrap(ErrUnknownSymbol, "missing blyt/Index.bclyt")
		}
		l, err := bclyt.Decode(data)
		if err != nil {
			return err
		}
		pages.Index = DocBCLYTHolder{BCLYT: layoutToDoc(l)}
	case "large", "small":
		for _, f := range inner.Files {
			base := strings.TrimPrefix(f.Path, "blyt/")
			base = strings.TrimSuffix(base, ".bclyt")
			pageNum, subTag, err := parsePageFilename(base)
			if err != nil {
				return err
			}
			l, err := bclyt.Decode(f.Data)
			if err != nil {
				return errors.Wrapf(err, "decoding %q", f.Path)
			}
			page := findOrAddDocPage(pages, pageNum)
			page.SubPages = append(page.SubPages, DocSubPage{PageSize: kind, SubPage: subTag, BCLYT: layoutToDoc(l)})
		}
	}
	return nil
}

// parsePageFilename splits "Page_<nnn>_<size>_<sub>" into its page number
// and sub-page tag, matching extractor.py's `filename[5:8]` (fixed
// 3-digit page number after the "Page_" prefix) and
// `filename.split("_")[-1]` (last token is the sub-page tag).
func parsePageFilename(base string) (pageNum, subTag string, err error) {
	const prefix = "Page_"
	if !strings.HasPrefix(base, prefix) || len(base) < len(prefix)+3 {
		return "", "", errors.Wrapf(ErrUnknownSymbol, "bcma: malformed page filename %q", base)
	}
	pageNum = base[len(prefix) : len(prefix)+3]
	if _, err := strconv.Atoi(pageNum); err != nil {
		return "", "", errors.Wrapf(ErrUnknownSymbol, "bcma: non-numeric page number in %q", base)
	}
	parts := strings.Split(base, "_")
	subTag = parts[len(parts)-1]
	return pageNum, subTag, nil
}

func findOrAddDocPage(pages *DocPages, number string) *DocPage {
	for i := range pages.Pages {
		if pages.Pages[i].Page == number {
			return &pages.Pages[i]
		}
	}
	pages.Pages = append(pages.Pages, DocPage{Page: number})
	return &pages.Pages[len(pages.Pages)-1]
}
