// Package omap provides a typed, insertion-order-preserving string-keyed
// map. Go's built-in map has no iteration order, but the Manual's
// region -> language map (spec §3.1's "ordered mapping" invariant) and
// each ImageArc's name -> image map need one. Grounded on
// github.com/emirpasic/gods/maps/linkedhashmap, pulled in by
// npillmayer/tyse's go.mod; gods predates Go generics so its Map is
// interface{}-keyed, hence the thin typed wrapper here.
package omap

import "github.com/emirpasic/gods/maps/linkedhashmap"

// Map is an insertion-ordered string -> V map.
type Map[V any] struct {
	inner *linkedhashmap.Map
}

// New returns an empty ordered map.
func New[V any]() *Map[V] {
	return &Map[V]{inner: linkedhashmap.New()}
}

// Put inserts or updates the value for key, preserving the original
// insertion position on update.
func (m *Map[V]) Put(key string, value V) {
	m.inner.Put(key, value)
}

// Get looks up key.
func (m *Map[V]) Get(key string) (V, bool) {
	v, found := m.inner.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	raw := m.inner.Keys()
	out := make([]string, len(raw))
	for i, k := range raw {
		out[i] = k.(string)
	}
	return out
}

// Values returns the values in insertion order.
func (m *Map[V]) Values() []V {
	raw := m.inner.Values()
	out := make([]V, len(raw))
	for i, v := range raw {
		out[i] = v.(V)
	}
	return out
}

// Len reports the number of entries.
func (m *Map[V]) Len() int { return m.inner.Size() }

// IndexOf returns the insertion-order position of key, or -1 if absent.
func (m *Map[V]) IndexOf(key string) int {
	for i, k := range m.Keys() {
		if k == key {
			return i
		}
	}
	return -1
}
