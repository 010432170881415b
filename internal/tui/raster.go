package tui

import (
	"github.com/chewxy/math32"

	"jelly-engine/internal/maths"
	"jelly-engine/internal/physics"
	"jelly-engine/internal/render"
)

const (
	solidRune = '█'
	wireRune  = '•'
)

// Cell is one character of the rasterised world.
type Cell struct {
	Rune  rune
	Color maths.Vec3
}

// Grid is a cols×rows character buffer. A zero Rune means the cell is empty.
type Grid struct {
	Cols, Rows int
	Cells      []Cell
}

func NewGrid(cols, rows int) *Grid {
	return &Grid{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	return g.Cells[y*g.Cols+x]
}

func (g *Grid) set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return
	}
	g.Cells[y*g.Cols+x] = c
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.Cells)
}

// Rasterize draws bodies into g, later bodies over earlier ones. Solid bodies fill every cell whose
// centre lies inside one of their strip triangles; wireframe bodies trace their line strip.
func (g *Grid) Rasterize(bodies []*physics.Body, tf render.Transform) {
	for _, b := range bodies {
		rd := b.RenderData()
		if rd.Wireframe {
			for _, s := range render.Segments(rd, tf) {
				g.line(s[0].Pos, s[1].Pos, Cell{Rune: wireRune, Color: render.Shade(s[0], s[1])})
			}
			continue
		}
		for _, tri := range render.Triangles(rd, tf) {
			g.fill(tri, Cell{Rune: solidRune, Color: render.Shade(tri[:]...)})
		}
	}
}

func (g *Grid) fill(tri render.Triangle, c Cell) {
	lo, hi := tri.Bounds()
	x0, y0 := int(math32.Floor(lo[0])), int(math32.Floor(lo[1]))
	x1, y1 := int(math32.Ceil(hi[0])), int(math32.Ceil(hi[1]))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if tri.Contains(maths.Vec2{float32(x) + 0.5, float32(y) + 0.5}) {
				g.set(x, y, c)
			}
		}
	}
}

// line is Bresenham between the cells containing a and b.
func (g *Grid) line(a, b maths.Vec2, c Cell) {
	x0, y0 := int(math32.Floor(a[0])), int(math32.Floor(a[1]))
	x1, y1 := int(math32.Floor(b[0])), int(math32.Floor(b[1]))
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
