package bcma

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/n3dsbcma/bcma/internal/bclyt"
	"github.com/n3dsbcma/bcma/internal/darc"
)

// innerArc is one named, not-yet-compressed inner DARC awaiting LZSS
// compression and packing into the outer archive (spec §4.8 write order).
// opts is fixed at construction time rather than re-derived from name.
type innerArc struct {
	name string
	tree *darc.Tree
	opts darc.Options
}

// Generate packs m into the raw BCMA byte stream, mirroring
// internal/creation/bcma.py's BCMA.write_to_file: BcmaInfo, then
// Common_texture and every named texture arc (names-padding 0x100,
// file-padding 0x80), then every region/language in ascending
// "<region>_<lang>" order as its index/large/small inner archives, each
// LZSS-10 compressed via codec's injected Compressor, finally assembled
// into the outer DARC (spec §4.8).
func (m *Manual) Generate(w io.Writer, codec *Codec) error {
	if err := m.Validate(); err != nil {
		return err
	}

	var arcs []innerArc

	bcmaInfoBytes, err := bclyt.Encode(m.BcmaInfo)
	if err != nil {
		return errors.Wrap(err, "bcma: encoding BcmaInfo")
	}
	bcmaInfoTree := &darc.Tree{}
	bcmaInfoTree.Add("blyt/BcmaInfo.bclyt", bcmaInfoBytes)
	arcs = append(arcs, innerArc{name: "BcmaInfo", tree: bcmaInfoTree, opts: darc.NewOptions()})

	textureOpts := darc.NewOptions(darc.WithNamesPadding(0x100), darc.WithFilePadding(0x80))

	commonTree := &darc.Tree{}
	for _, name := range m.CommonTexture.Images.Keys() {
		data, _ := m.CommonTexture.Images.Get(name)
		commonTree.Add("timg/"+name+".bclim", data)
	}
	arcs = append(arcs, innerArc{name: "Common_texture", tree: commonTree, opts: textureOpts})

	for _, arc := range m.ImageArcs {
		tree := &darc.Tree{}
		for _, name := range arc.Images.Keys() {
			data, _ := arc.Images.Get(name)
			tree.Add("timg/"+name+".bclim", data)
		}
		arcs = append(arcs, innerArc{name: arc.Name, tree: tree, opts: textureOpts})
	}

	pageOpts := darc.NewOptions(darc.WithFilePadding(4))

	for _, rl := range m.sortedRegionLangs() {
		bundle, err := m.PagesBundle(rl.Region, rl.Lang)
		if err != nil {
			return err
		}
		reglang := regLangKey(rl.Region, rl.Lang)

		indexBytes, err := bclyt.Encode(bundle.Index, bclyt.WithUserDataOverride(bclyt.OverrideTrailing))
		if err != nil {
			return errors.Wrapf(err, "bcma: encoding %s index", reglang)
		}
		indexTree := &darc.Tree{}
		indexTree.Add("blyt/Index.bclyt", indexBytes)
		arcs = append(arcs, innerArc{name: reglang + "_index", tree: indexTree, opts: darc.NewOptions()})

		largeTree, err := encodePageTree(bundle.LargePages, "large")
		if err != nil {
			return errors.Wrapf(err, "bcma: encoding %s large pages", reglang)
		}
		arcs = append(arcs, innerArc{name: reglang + "_large", tree: largeTree, opts: pageOpts})

		smallTree, err := encodePageTree(bundle.SmallPages, "small")
		if err != nil {
			return errors.Wrapf(err, "bcma: encoding %s small pages", reglang)
		}
		arcs = append(arcs, innerArc{name: reglang + "_small", tree: smallTree, opts: pageOpts})
	}

	outer := &darc.Tree{}
	for _, a := range arcs {
		opts := a.opts
		if codec.headerMode == darc.InclusiveHeaderLength {
			opts.HeaderMode = darc.InclusiveHeaderLength
		}

		raw, err := darc.Encode(a.tree, opts)
		if err != nil {
			return errors.Wrapf(err, "bcma: encoding inner arc %q", a.name)
		}
		compressed, err := codec.compress(raw)
		if err != nil {
			return errors.Wrapf(err, "bcma: compressing inner arc %q", a.name)
		}
		outer.Add(a.name+".arc", compressed)
	}

	outerOpts := darc.NewOptions(darc.WithNamesPadding(codec.outerNamesPadding), darc.WithFilePadding(codec.outerFilePadding))
	if codec.headerMode == darc.InclusiveHeaderLength {
		outerOpts.HeaderMode = darc.InclusiveHeaderLength
	}
	outerBytes, err := darc.Encode(outer, outerOpts)
	if err != nil {
		return errors.Wrap(err, "bcma: encoding outer archive")
	}
	_, err = w.Write(outerBytes)
	return err
}

// encodePageTree serializes one PagesBundle's small or large page list
// into a blyt/ inner-archive tree, named "Page_<nnn>_<size>_<sub>.bclyt"
// per spec §6.2, threading the "info" sub-page UserData override rule
// (spec §4.8/§4.9).
func encodePageTree(pages pageList, size string) (*darc.Tree, error) {
	tree := &darc.Tree{}
	for _, page := range pages {
		for _, sub := range page.SubPages {
			override := bclyt.OverrideAdjacent
			if sub.Tag == "info" {
				override = bclyt.OverrideAuto
			}
			data, err := bclyt.Encode(sub.Layout, bclyt.WithUserDataOverride(override))
			if err != nil {
				return nil, errors.Wrapf(err, "page %s/%s", page.Number, sub.Tag)
			}
			name := fmt.Sprintf("blyt/Page_%s_%s_%s.bclyt", page.Number, size, sub.Tag)
			tree.Add(name, data)
		}
	}
	return tree, nil
}
