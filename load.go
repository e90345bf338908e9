package bcma

import (
	"github.com/pkg/errors"
)

// LoadManual builds a semantic Manual from an editable Document (spec
// §4.8's "load-from-document" direction), grounded on
// internal/creation/bcma.py's BCMA.__init__: image arcs are decoded
// straight into byte maps, BcmaInfo and every Index/Page/SubPage BCLYT
// sub-document is translated via docToLayout, and region/language
// membership is checked against the fixed permitted set (spec §3.1).
func LoadManual(doc *Document) (*Manual, error) {
	m := NewManual()

	for _, img := range doc.ImageArcs.Common.Images {
		data, err := decodeImageHex(img.Hex)
		if err != nil {
			return nil, errors.Wrapf(err, "bcma: Common_texture image %q", img.Name)
		}
		m.CommonTexture.Images.Put(img.Name, data)
	}
	for _, arc := range doc.ImageArcs.Arcs {
		dst := m.AddImageArc(arc.Name)
		for _, img := range arc.Images {
			data, err := decodeImageHex(img.Hex)
			if err != nil {
				return nil, errors.Wrapf(err, "bcma: image arc %q image %q", arc.Name, img.Name)
			}
			dst.Images.Put(img.Name, data)
		}
	}

	bcmaInfo, err := docToLayout(doc.BcmaInfo.BCLYT)
	if err != nil {
		return nil, errors.Wrap(err, "bcma: BcmaInfo")
	}
	m.BcmaInfo = bcmaInfo

	for _, region := range doc.Regions {
		for _, dp := range region.Pages {
			bundle, err := m.PagesBundle(Region(region.Region), dp.Lang)
			if err != nil {
				return nil, err
			}
			index, err := docToLayout(dp.Index.BCLYT)
			if err != nil {
				return nil, errors.Wrapf(err, "bcma: %s_%s index", region.Region, dp.Lang)
			}
			bundle.Index = index

			for _, dpage := range dp.Pages {
				for _, sub := range dpage.SubPages {
					layout, err := docToLayout(sub.BCLYT)
					if err != nil {
						return nil, errors.Wrapf(err, "bcma: %s_%s page %s/%s", region.Region, dp.Lang, dpage.Page, sub.SubPage)
					}
					var list *pageList
					switch sub.PageSize {
					case "small":
						list = &bundle.SmallPages
					case "large":
						list = &bundle.LargePages
					default:
						return nil, errors.Wrapf(ErrUnknownTag, "bcma: page %s: unknown pagesize %q", dpage.Page, sub.PageSize)
					}
					page := list.add(dpage.Page)
					page.SubPages = append(page.SubPages, SubPage{Tag: sub.SubPage, Layout: layout})
				}
			}
		}
	}

	return m, nil
}
