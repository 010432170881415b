package maths

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2D position or direction in world units.
type Vec2 = mgl32.Vec2

// Vec3 is an RGB colour triple (0..1 per channel).
type Vec3 = mgl32.Vec3

// Vec2i is a pair of point indices (one edge).
type Vec2i = [2]int

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Clamp limits a to [lo, hi].
func Clamp(a, lo, hi float32) float32 {
	if a < lo {
		return lo
	}
	if a > hi {
		return hi
	}
	return a
}

// Finite reports whether both components of v are real numbers.
func Finite(v Vec2) bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
