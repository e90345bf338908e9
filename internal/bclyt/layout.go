package bclyt

// Layout is the fully decoded form of one BCLYT document (spec §3.2):
// canvas metadata, symbol tables, the colour table, and the panel/group
// trees. This is the "per-operation context" the colour-index registry and
// symbol tables are scoped to (spec §5, §9) — there is exactly one Layout
// per decode or encode call, and nothing about it survives across calls.
type Layout struct {
	Origin OriginType
	Size   Vec2

	Colors *ColorTable

	Fonts     []string
	Textures  []string
	Materials []*Material

	RootPanel *Panel
	RootGroup *Group
}

// NewLayout returns an empty Layout ready for incremental construction.
func NewLayout() *Layout {
	return &Layout{Colors: NewColorTable()}
}

// FontIndex returns the index of name in the font table, appending it if
// absent. Mirrors the reference encoder's Fnl1 symbol table build (spec
// §4.7: "the encoder builds symbol tables by scanning the document").
func (l *Layout) FontIndex(name string) int {
	for i, n := range l.Fonts {
		if n == name {
			return i
		}
	}
	l.Fonts = append(l.Fonts, name)
	return len(l.Fonts) - 1
}

// TextureIndex returns the index of name in the texture table, appending it
// if absent.
func (l *Layout) TextureIndex(name string) int {
	for i, n := range l.Textures {
		if n == name {
			return i
		}
	}
	l.Textures = append(l.Textures, name)
	return len(l.Textures) - 1
}

// MaterialIndex returns the index of a material by name, or -1 if absent.
func (l *Layout) MaterialIndex(name string) int {
	for i, m := range l.Materials {
		if m.Name == name {
			return i
		}
	}
	return -1
}
