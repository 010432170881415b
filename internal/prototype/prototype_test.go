package prototype

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jelly-engine/internal/maths"
	"jelly-engine/internal/physics"
)

func TestDefaults(t *testing.T) {
	set, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	want := map[string]struct{ points, edges int }{
		"paddle": {8, 10},
		"ball":   {5, 10},
		"brick":  {8, 10},
	}
	for name, w := range want {
		p, err := set.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if len(p.Points) != w.points || len(p.Edges) != w.edges || len(p.Colors) != w.points {
			t.Errorf("%s: %d points %d edges %d colors", name, len(p.Points), len(p.Edges), len(p.Colors))
		}
		if _, err := p.Build(); err != nil {
			t.Errorf("%s: Build: %v", name, err)
		}
	}
	if _, err := set.Get("missing"); err == nil {
		t.Fatal("expected error for unknown prototype")
	}
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte(`
name: tri
points: [[0, 0], [4, 0], [0, 3]]
edges: [[0, 1], [1, 2], [2, 0]]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Name != "tri" || p.Points[1] != (maths.Vec2{4, 0}) || p.Edges[2] != (maths.Vec2i{2, 0}) {
		t.Fatalf("parsed %+v", p)
	}
	b, err := p.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Mass() != 12 {
		t.Fatalf("mass = %v, want 12", b.Mass())
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("points: [[0, 0]]\n")); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := Parse([]byte("name: [unclosed\n")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestBuildReportsInvalidGeometry(t *testing.T) {
	p := Prototype{
		Name:   "broken",
		Points: []maths.Vec2{{0, 0}, {1, 0}},
		Edges:  []maths.Vec2i{{0, 5}},
	}
	if _, err := p.Build(); !errors.Is(err, physics.ErrInvalidGeometry) {
		t.Fatalf("err = %v, want ErrInvalidGeometry", err)
	}
}

func TestOffsetLeavesOriginalUntouched(t *testing.T) {
	set, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	brick := set["brick"]
	moved, err := brick.Offset(48, 500)
	if err != nil {
		t.Fatalf("Offset: %v", err)
	}
	if moved.Points[0] != (maths.Vec2{48, 516}) {
		t.Fatalf("moved point 0 = %v, want (48, 516)", moved.Points[0])
	}
	if brick.Points[0] != (maths.Vec2{0, 16}) {
		t.Fatalf("original point 0 changed to %v", brick.Points[0])
	}

	moved.Colors[0] = maths.Vec3{0.5, 0.5, 0.5}
	if brick.Colors[0] == moved.Colors[0] {
		t.Fatal("clone shares color storage with the original")
	}
}

func TestLoadDirOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	doc := "name: ball\npoints: [[0, 0], [2, 0], [1, 2]]\nedges: [[0, 1], [1, 2], [2, 0]]\n"
	if err := os.WriteFile(filepath.Join(dir, "ball.yaml"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if n := len(set["ball"].Points); n != 3 {
		t.Fatalf("ball has %d points, want override with 3", n)
	}
	if _, ok := set["paddle"]; !ok {
		t.Fatal("defaults lost when overriding")
	}

	single, err := Load(filepath.Join(dir, "ball.yaml"))
	if err != nil || single.Name != "ball" {
		t.Fatalf("Load: %+v, %v", single, err)
	}
}
