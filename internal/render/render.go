// Package render turns body render data into screen-space primitives. It has no drawing backend of
// its own; the raylib and terminal front-ends both rasterise what it produces.
package render

import (
	"github.com/chewxy/math32"

	"jelly-engine/internal/maths"
	"jelly-engine/internal/physics"
)

// Vertex is a screen-space point with its colour.
type Vertex struct {
	Pos   maths.Vec2
	Color maths.Vec3
}

type Triangle [3]Vertex

type Segment [2]Vertex

// Transform maps world coordinates (y up, origin bottom-left) to screen coordinates (y down,
// origin top-left). Height is the world height; Scale stretches each axis afterwards.
type Transform struct {
	Height float32
	Scale  maths.Vec2
}

// Identity returns the transform for a window the same size as the world.
func Identity(height float32) Transform {
	return Transform{Height: height, Scale: maths.Vec2{1, 1}}
}

// Fit returns the transform that stretches a width×height world over a cols×rows screen.
func Fit(width, height float32, cols, rows int) Transform {
	return Transform{Height: height, Scale: maths.Vec2{float32(cols) / width, float32(rows) / height}}
}

func (t Transform) Apply(p maths.Vec2) maths.Vec2 {
	return maths.Vec2{p[0] * t.Scale[0], (t.Height - p[1]) * t.Scale[1]}
}

// Triangles decomposes a solid body as a triangle strip over its points in order: triangle i uses
// points i, i+1 and i+2. Each triangle is wound counter-clockwise as seen on screen. Triangles with
// no area are dropped.
func Triangles(rd physics.RenderData, tf Transform) []Triangle {
	if len(rd.Points) < 3 {
		return nil
	}
	out := make([]Triangle, 0, len(rd.Points)-2)
	for i := 0; i+2 < len(rd.Points); i++ {
		tri := Triangle{vertex(rd, tf, i), vertex(rd, tf, i+1), vertex(rd, tf, i+2)}
		area := cross(tri[0].Pos, tri[1].Pos, tri[2].Pos)
		if math32.Abs(area) < 1e-6 {
			continue
		}
		// y points down on screen, so a visually counter-clockwise triangle has negative cross product.
		if area > 0 {
			tri[1], tri[2] = tri[2], tri[1]
		}
		out = append(out, tri)
	}
	return out
}

// Segments decomposes a wireframe body as a line strip over its points in order.
func Segments(rd physics.RenderData, tf Transform) []Segment {
	if len(rd.Points) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(rd.Points)-1)
	for i := 0; i+1 < len(rd.Points); i++ {
		out = append(out, Segment{vertex(rd, tf, i), vertex(rd, tf, i+1)})
	}
	return out
}

func vertex(rd physics.RenderData, tf Transform, i int) Vertex {
	c := maths.Vec3{1, 1, 1}
	if i < len(rd.Colors) {
		c = rd.Colors[i]
	}
	return Vertex{Pos: tf.Apply(rd.Points[i]), Color: c}
}

func cross(a, b, c maths.Vec2) float32 {
	ab, ac := b.Sub(a), c.Sub(a)
	return ab[0]*ac[1] - ab[1]*ac[0]
}

// Shade is the mean colour of the given vertices.
func Shade(vs ...Vertex) maths.Vec3 {
	var sum maths.Vec3
	if len(vs) == 0 {
		return sum
	}
	for _, v := range vs {
		sum = sum.Add(v.Color)
	}
	return sum.Mul(1 / float32(len(vs)))
}

// RGB converts a [0,1] colour to 8-bit channels, clamping out-of-range components.
func RGB(c maths.Vec3) (r, g, b uint8) {
	ch := func(x float32) uint8 { return uint8(maths.Clamp(x, 0, 1)*255 + 0.5) }
	return ch(c[0]), ch(c[1]), ch(c[2])
}

// Contains reports whether p lies inside or on tri.
func (tri Triangle) Contains(p maths.Vec2) bool {
	d1 := cross(tri[0].Pos, tri[1].Pos, p)
	d2 := cross(tri[1].Pos, tri[2].Pos, p)
	d3 := cross(tri[2].Pos, tri[0].Pos, p)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// Bounds returns the screen-space box around tri.
func (tri Triangle) Bounds() (lo, hi maths.Vec2) {
	lo, hi = tri[0].Pos, tri[0].Pos
	for _, v := range tri[1:] {
		lo = maths.Vec2{maths.Min(lo[0], v.Pos[0]), maths.Min(lo[1], v.Pos[1])}
		hi = maths.Vec2{maths.Max(hi[0], v.Pos[0]), maths.Max(hi[1], v.Pos[1])}
	}
	return lo, hi
}
