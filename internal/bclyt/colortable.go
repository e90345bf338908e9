package bclyt

// ColorTable is a decoded or in-progress layout's ordered, deduplicated RGBA
// palette (spec §3.2, §4.5). The reference decoder keeps this as a
// process-wide list that every colour read mutates; here it is scoped to
// one Layout so concurrent layouts never interfere (spec §5,
// §9 "process-wide mutable state").
type ColorTable struct {
	colors []RGBA
	index  map[RGBA]int
}

// NewColorTable returns an empty table.
func NewColorTable() *ColorTable {
	return &ColorTable{index: make(map[RGBA]int)}
}

// Insert returns the index of c, inserting it at the end of the table if it
// has not been seen before (spec §4.5: "insert-if-absent and return the
// resulting index").
func (t *ColorTable) Insert(c RGBA) int {
	if idx, ok := t.index[c]; ok {
		return idx
	}
	idx := len(t.colors)
	t.colors = append(t.colors, c)
	t.index[c] = idx
	return idx
}

// At returns the colour stored at idx.
func (t *ColorTable) At(idx int) (RGBA, bool) {
	if idx < 0 || idx >= len(t.colors) {
		return RGBA{}, false
	}
	return t.colors[idx], true
}

// Len reports the number of distinct colours in the table.
func (t *ColorTable) Len() int { return len(t.colors) }

// All returns the table contents in insertion order, for section emission.
func (t *ColorTable) All() []RGBA {
	return append([]RGBA(nil), t.colors...)
}
