// Package level loads and validates YAML level definitions. A level holds
// everything static about a scene: viewport size, spawn points, obstacle
// segments and goal rectangles. Obstacles are immutable once loaded.
package level

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/umbra/internal/geom"
)

//go:embed default.yaml
var defaultYAML []byte

// Level is a fully validated level ready to build a scene from.
type Level struct {
	Name        string
	Width       float64
	Height      float64
	PlayerSpawn geom.Vec2
	Lights      []geom.Vec2
	Obstacles   []geom.Segment
	Goals       []geom.Rect
}

// yamlLevel mirrors the on-disk YAML structure.
type yamlLevel struct {
	Name   string      `yaml:"name"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Player yamlPoint   `yaml:"player"`
	Lights []yamlPoint `yaml:"lights"`
	Walls  []yamlWall  `yaml:"walls"`
	Goals  []yamlRect  `yaml:"goals"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlWall struct {
	From yamlPoint `yaml:"from"`
	To   yamlPoint `yaml:"to"`
}

type yamlRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Load reads and validates the level at path. An empty path loads the
// embedded default level.
func Load(path string) (*Level, error) {
	if path == "" {
		return Parse(defaultYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}
	return lvl, nil
}

// Default returns the embedded default level.
func Default() *Level {
	lvl, err := Parse(defaultYAML)
	if err != nil {
		// The embedded level is validated by tests; this is unreachable
		// short of a corrupted build.
		panic(fmt.Sprintf("embedded default level is invalid: %v", err))
	}
	return lvl
}

// Parse unmarshals and validates a YAML level definition.
func Parse(data []byte) (*Level, error) {
	var y yamlLevel
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("failed to parse level YAML: %w", err)
	}

	lvl := &Level{
		Name:        y.Name,
		Width:       y.Width,
		Height:      y.Height,
		PlayerSpawn: geom.V(y.Player.X, y.Player.Y),
	}
	for _, l := range y.Lights {
		lvl.Lights = append(lvl.Lights, geom.V(l.X, l.Y))
	}
	for _, w := range y.Walls {
		lvl.Obstacles = append(lvl.Obstacles, geom.Segment{
			A: geom.V(w.From.X, w.From.Y),
			B: geom.V(w.To.X, w.To.Y),
		})
	}
	for _, g := range y.Goals {
		lvl.Goals = append(lvl.Goals, geom.NewRect(g.X, g.Y, g.W, g.H))
	}

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

// Validate checks the structural invariants the rest of the game relies on.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid level dimensions: %gx%g", l.Width, l.Height)
	}
	if len(l.Lights) == 0 {
		return fmt.Errorf("level needs at least one light")
	}

	bounds := geom.NewRect(0, 0, l.Width, l.Height)
	if !bounds.Contains(l.PlayerSpawn) {
		return fmt.Errorf("player spawn (%g, %g) outside level bounds", l.PlayerSpawn.X, l.PlayerSpawn.Y)
	}
	for i, p := range l.Lights {
		if !bounds.Contains(p) {
			return fmt.Errorf("light %d at (%g, %g) outside level bounds", i, p.X, p.Y)
		}
	}

	for i, obs := range l.Obstacles {
		if obs.A == obs.B {
			return fmt.Errorf("wall %d has zero length at (%g, %g)", i, obs.A.X, obs.A.Y)
		}
		for _, p := range [4]float64{obs.A.X, obs.A.Y, obs.B.X, obs.B.Y} {
			// Endpoint-grazing detection in the visibility sweep depends on
			// exact arithmetic, which holds for integral coordinates only.
			if p != math.Trunc(p) {
				return fmt.Errorf("wall %d has non-integral coordinates", i)
			}
		}
	}

	for i, g := range l.Goals {
		if g.W <= 0 || g.H <= 0 {
			return fmt.Errorf("goal %d has invalid size %gx%g", i, g.W, g.H)
		}
	}
	return nil
}
