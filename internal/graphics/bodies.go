package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"jelly-engine/internal/maths"
	"jelly-engine/internal/physics"
	"jelly-engine/internal/render"
)

// DrawBodies draws every body: solid bodies as a triangle strip shaded by their point colours,
// wireframe bodies as a line strip.
func DrawBodies(bodies []*physics.Body, tf render.Transform) {
	for _, b := range bodies {
		rd := b.RenderData()
		if rd.Wireframe {
			for _, s := range render.Segments(rd, tf) {
				rl.DrawLineV(vec(s[0].Pos), vec(s[1].Pos), color(render.Shade(s[0], s[1])))
			}
			continue
		}
		for _, t := range render.Triangles(rd, tf) {
			rl.DrawTriangle(vec(t[0].Pos), vec(t[1].Pos), vec(t[2].Pos), color(render.Shade(t[:]...)))
		}
	}
}

func vec(p maths.Vec2) rl.Vector2 { return rl.NewVector2(p[0], p[1]) }

func color(c maths.Vec3) rl.Color {
	r, g, b := render.RGB(c)
	return rl.NewColor(r, g, b, 255)
}
