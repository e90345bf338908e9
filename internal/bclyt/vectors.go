package bclyt

// Vec2 is a pair of little-endian f32s, used throughout the panel and
// material sub-record layouts (spec §3.2, §4.5).
type Vec2 struct {
	X, Y float32
}

// Vec3 extends Vec2 with a Z component, used for panel translation and
// rotation.
type Vec3 struct {
	X, Y, Z float32
}

// RGBA is a single colour-table entry: four unsigned bytes in R,G,B,A order.
type RGBA struct {
	R, G, B, A uint8
}
