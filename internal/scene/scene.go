// Package scene loads playground scene definitions from YAML: the arena,
// the static blocks and the moving box with its per-tick velocity.
// Velocities are written as decimal strings and parsed with internal/fixed
// so a scene file means exactly the same thing on every machine.
package scene

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/impactbox/internal/fixed"
	"github.com/vovakirdan/impactbox/internal/geom"
)

//go:embed defaults/playground.yaml
var defaultPlaygroundYAML []byte

// rawScene mirrors the YAML document before fixed-point conversion.
type rawScene struct {
	Name  string `yaml:"name"`
	Ticks int    `yaml:"ticks"`
	Arena struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"arena"`
	Box struct {
		X      int    `yaml:"x"`
		Y      int    `yaml:"y"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		VX     string `yaml:"vx"`
		VY     string `yaml:"vy"`
	} `yaml:"box"`
	Blocks []struct {
		X      int `yaml:"x"`
		Y      int `yaml:"y"`
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"blocks"`
}

// Scene is a fully parsed playground definition.
type Scene struct {
	Name     string
	Ticks    int // default tick budget for headless runs
	ArenaW   int
	ArenaH   int
	Box      geom.Rect
	Velocity geom.Vec // displacement per tick
	Blocks   []geom.Rect
}

// Load reads a scene. Search order follows the rest of the project's
// config handling: explicit path, then ./scenes/playground.yaml, then the
// embedded default.
func Load(path string) (Scene, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: cannot read %s: %w", path, err)
		}
		return Parse(data)
	}

	if data, err := os.ReadFile("scenes/playground.yaml"); err == nil {
		if sc, err := Parse(data); err == nil {
			return sc, nil
		}
	}

	return Parse(defaultPlaygroundYAML)
}

// Parse decodes and validates a YAML scene document.
func Parse(data []byte) (Scene, error) {
	var raw rawScene
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Scene{}, fmt.Errorf("scene: cannot parse: %w", err)
	}

	if raw.Arena.Width <= 0 || raw.Arena.Height <= 0 {
		return Scene{}, fmt.Errorf("scene: arena must have positive size, got %dx%d", raw.Arena.Width, raw.Arena.Height)
	}
	if raw.Box.Width <= 0 || raw.Box.Height <= 0 {
		return Scene{}, fmt.Errorf("scene: box must have positive size, got %dx%d", raw.Box.Width, raw.Box.Height)
	}

	vx, err := fixed.Parse(defaultString(raw.Box.VX, "0"))
	if err != nil {
		return Scene{}, fmt.Errorf("scene: invalid box vx: %w", err)
	}
	vy, err := fixed.Parse(defaultString(raw.Box.VY, "0"))
	if err != nil {
		return Scene{}, fmt.Errorf("scene: invalid box vy: %w", err)
	}

	sc := Scene{
		Name:     defaultString(raw.Name, "playground"),
		Ticks:    raw.Ticks,
		ArenaW:   raw.Arena.Width,
		ArenaH:   raw.Arena.Height,
		Box:      geom.R(raw.Box.X, raw.Box.Y, raw.Box.Width, raw.Box.Height),
		Velocity: geom.Vec{X: vx, Y: vy},
	}
	if sc.Ticks <= 0 {
		sc.Ticks = 600
	}

	for i, b := range raw.Blocks {
		if b.Width <= 0 || b.Height <= 0 {
			return Scene{}, fmt.Errorf("scene: block %d must have positive size, got %dx%d", i, b.Width, b.Height)
		}
		sc.Blocks = append(sc.Blocks, geom.R(b.X, b.Y, b.Width, b.Height))
	}

	return sc, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
