package prototype

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"jelly-engine/internal/maths"
	"jelly-engine/internal/physics"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Prototype is the YAML definition of a body shape (e.g. defaults/paddle.yaml).
// Colors is optional; when present it needs one entry per point.
type Prototype struct {
	Name   string        `yaml:"name"`
	Points []maths.Vec2  `yaml:"points"`
	Colors []maths.Vec3  `yaml:"colors,omitempty"`
	Edges  []maths.Vec2i `yaml:"edges"`
}

// Set maps prototype names to definitions.
type Set map[string]Prototype

// Parse decodes one prototype document. Geometry is not validated until Build.
func Parse(data []byte) (Prototype, error) {
	var p Prototype
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prototype{}, fmt.Errorf("prototype: %w", err)
	}
	if p.Name == "" {
		return Prototype{}, fmt.Errorf("prototype: missing name")
	}
	return p, nil
}

// Load reads a prototype from a YAML file on disk.
func Load(filename string) (Prototype, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Prototype{}, fmt.Errorf("prototype: %w", err)
	}
	return Parse(data)
}

// LoadFS reads every *.yaml file in dir of fsys. Later files with the same name replace earlier ones.
func LoadFS(fsys fs.FS, dir string) (Set, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("prototype: %w", err)
	}
	set := make(Set)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("prototype: %w", err)
		}
		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		set[p.Name] = p
	}
	return set, nil
}

// Defaults returns the built-in paddle, ball and brick prototypes.
func Defaults() (Set, error) {
	return LoadFS(defaultsFS, "defaults")
}

// LoadDir returns Defaults overlaid with any prototypes found in dir on disk.
// An empty dir means defaults only.
func LoadDir(dir string) (Set, error) {
	set, err := Defaults()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return set, nil
	}
	extra, err := LoadFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	for name, p := range extra {
		set[name] = p
	}
	return set, nil
}

// Get returns the named prototype or an error naming what is missing.
func (s Set) Get(name string) (Prototype, error) {
	p, ok := s[name]
	if !ok {
		return Prototype{}, fmt.Errorf("prototype %q not found", name)
	}
	return p, nil
}

// Clone returns a deep copy, so the result can be edited without touching p.
func (p Prototype) Clone() (Prototype, error) {
	var out Prototype
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		return Prototype{}, fmt.Errorf("prototype %s: clone: %w", p.Name, err)
	}
	return out, nil
}

// Offset returns a copy of p with every point moved by (dx, dy).
func (p Prototype) Offset(dx, dy float32) (Prototype, error) {
	out, err := p.Clone()
	if err != nil {
		return Prototype{}, err
	}
	for i := range out.Points {
		out.Points[i] = out.Points[i].Add(maths.Vec2{dx, dy})
	}
	return out, nil
}

// Build creates a physics body from the prototype.
func (p Prototype) Build() (*physics.Body, error) {
	b, err := physics.NewBody(p.Points, p.Colors, p.Edges)
	if err != nil {
		return nil, fmt.Errorf("prototype %s: %w", p.Name, err)
	}
	return b, nil
}
