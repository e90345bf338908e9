package binio

import "math"

func math32frombits(v uint32) float32 {
	return math.Float32frombits(v)
}

func math32bits(f float32) uint32 {
	return math.Float32bits(f)
}
