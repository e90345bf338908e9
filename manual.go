package bcma

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/n3dsbcma/bcma/internal/bclyt"
	"github.com/n3dsbcma/bcma/internal/omap"
)

// ImageArc is one named collection of CLIM textures (spec §6.2's
// "<ArcName>.arc"), held alongside Common_texture on the Manual.
type ImageArc struct {
	Name   string
	Images *omap.Map[[]byte]
}

// SubPage is one page's keyed BCLYT layout (spec §3.1: "sub-pages are
// ordered as encountered in the document").
type SubPage struct {
	Tag    string // e.g. "info", "top", "bottom"
	Layout *bclyt.Layout
}

// Page is one numbered page within a single size class (small or large) of
// a language's manual (spec §3.1).
type Page struct {
	Number   string
	SubPages []SubPage
}

// SubPage looks up tag among p's sub-pages, returning nil if absent.
func (p *Page) SubPage(tag string) *SubPage {
	for i := range p.SubPages {
		if p.SubPages[i].Tag == tag {
			return &p.SubPages[i]
		}
	}
	return nil
}

// pageList is an ordered, number-keyed list of Pages, used for both the
// small and large page lists of a PagesBundle.
type pageList []*Page

func (l pageList) find(number string) *Page {
	for _, p := range l {
		if p.Number == number {
			return p
		}
	}
	return nil
}

func (l *pageList) add(number string) *Page {
	if p := l.find(number); p != nil {
		return p
	}
	p := &Page{Number: number}
	*l = append(*l, p)
	return p
}

// PagesBundle is one language's manual content within a Region: an index
// layout plus small and large page lists (spec §3.1's PagesBundle). Each
// list keeps its own insertion order; nothing here checks that the two
// lists order their page numbers the same way.
type PagesBundle struct {
	Lang       string
	Index      *bclyt.Layout
	SmallPages pageList
	LargePages pageList
}

// AddSmallPage appends a new small page, or returns the existing one if
// number was already added.
func (b *PagesBundle) AddSmallPage(number string) *Page { return b.SmallPages.add(number) }

// AddLargePage appends a new large page, or returns the existing one if
// number was already added.
func (b *PagesBundle) AddLargePage(number string) *Page { return b.LargePages.add(number) }

// Manual is the fully decoded, semantic form of a BCMA electronic manual
// (spec §3.1): the common/named texture sets, the BcmaInfo layout, and an
// ordered region -> language -> PagesBundle mapping. This is the model
// Extract produces and Generate consumes.
type Manual struct {
	CommonTexture *ImageArc
	ImageArcs     []*ImageArc
	BcmaInfo      *bclyt.Layout

	regions *omap.Map[*omap.Map[*PagesBundle]]
}

// NewManual returns an empty Manual ready for incremental construction.
func NewManual() *Manual {
	return &Manual{
		CommonTexture: &ImageArc{Name: "Common_texture", Images: omap.New[[]byte]()},
		regions:       newRegionLanguageMap(),
	}
}

// Regions returns the manual's region codes in insertion order.
func (m *Manual) Regions() []Region {
	keys := m.regions.Keys()
	out := make([]Region, len(keys))
	for i, k := range keys {
		out[i] = Region(k)
	}
	return out
}

// Languages returns region's language codes in insertion order, or nil if
// the region has not been added.
func (m *Manual) Languages(region Region) []string {
	langs, ok := m.regions.Get(string(region))
	if !ok {
		return nil
	}
	return langs.Keys()
}

// PagesBundle returns the bundle for region/lang, creating it (and the
// region, if needed) if absent. Returns an error if lang is not permitted
// for region (spec §3.1 invariant).
func (m *Manual) PagesBundle(region Region, lang string) (*PagesBundle, error) {
	if !IsLanguagePermitted(region, lang) {
		return nil, errors.Wrapf(ErrBadHeaderField, "language %q not permitted for region %q", lang, region)
	}
	langs, ok := m.regions.Get(string(region))
	if !ok {
		langs = omap.New[*PagesBundle]()
		m.regions.Put(string(region), langs)
	}
	if b, ok := langs.Get(lang); ok {
		return b, nil
	}
	b := &PagesBundle{Lang: lang}
	langs.Put(lang, b)
	return b, nil
}

// regLangKey is the "<region>_<lang>" emission key used to order inner
// DARC members during generation (spec §4.8).
func regLangKey(region Region, lang string) string {
	return string(region) + "_" + lang
}

// sortedRegionLangs returns every (region, lang) pair across the manual,
// sorted ascending by "<region>_<lang>" (spec §4.8: "for every language in
// sorted ascending order of <region>_<lang>").
func (m *Manual) sortedRegionLangs() []struct {
	Region Region
	Lang   string
} {
	type pair struct {
		Region Region
		Lang   string
	}
	var pairs []pair
	for _, rk := range m.regions.Keys() {
		region := Region(rk)
		langs, _ := m.regions.Get(rk)
		for _, lang := range langs.Keys() {
			pairs = append(pairs, pair{Region: region, Lang: lang})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return regLangKey(pairs[i].Region, pairs[i].Lang) < regLangKey(pairs[j].Region, pairs[j].Lang)
	})
	out := make([]struct {
		Region Region
		Lang   string
	}, len(pairs))
	for i, p := range pairs {
		out[i] = struct {
			Region Region
			Lang   string
		}{p.Region, p.Lang}
	}
	return out
}

// AddImageArc appends a new named image arc, or returns the existing one
// if name was already added.
func (m *Manual) AddImageArc(name string) *ImageArc {
	for _, a := range m.ImageArcs {
		if a.Name == name {
			return a
		}
	}
	a := &ImageArc{Name: name, Images: omap.New[[]byte]()}
	m.ImageArcs = append(m.ImageArcs, a)
	return a
}

// Validate checks that every region/language pair is permitted and that
// every PagesBundle has an index layout. The page lists are not checked:
// neither their contents nor their small/large ordering.
func (m *Manual) Validate() error {
	for _, rk := range m.regions.Keys() {
		region := Region(rk)
		langs, _ := m.regions.Get(rk)
		for _, lang := range langs.Keys() {
			if !IsLanguagePermitted(region, lang) {
				return errors.Wrapf(ErrBadHeaderField, "language %q not permitted for region %q", lang, region)
			}
			bundle, _ := langs.Get(lang)
			if bundle.Index == nil {
				return errors.Wrapf(ErrSizeMismatch, "region %q lang %q: missing index layout", region, lang)
			}
		}
	}
	return nil
}
