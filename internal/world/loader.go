package world

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/spacehole-rogue/helmsman/internal/geom"
)

// Catalog is the YAML-serializable definition of the navigable scenes and
// the planets seeded around the player's start.
type Catalog struct {
	Screen  ScreenDef   `yaml:"screen"`
	Scenes  []SceneDef  `yaml:"scenes"`
	Planets []PlanetDef `yaml:"planets"`
}

// ScreenDef is the logical screen size in pixels.
type ScreenDef struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SceneDef is one place the player can look out from. Scenes without a
// mask show the whole screen. Only scenes with Helm set accept flight
// controls.
type SceneDef struct {
	Name string       `yaml:"name"`
	Helm bool         `yaml:"helm"`
	Mask [][2]float64 `yaml:"mask"`
	Flow *FlowDef     `yaml:"flow"`
}

// FlowDef positions the split lines of the viewport star flow.
type FlowDef struct {
	SplitY     float64 `yaml:"split_y"`
	LeftX      float64 `yaml:"left_x"`
	RightX     float64 `yaml:"right_x"`
	GrowthBand float64 `yaml:"growth_band"`
}

// PlanetDef seeds one planet near the player start. Spread is the maximum
// random offset on each axis.
type PlanetDef struct {
	Name   string     `yaml:"name"`
	Radius float64    `yaml:"radius"`
	Color  [3]uint8   `yaml:"color"`
	Spread [2]float64 `yaml:"spread"`
}

// LoadCatalog parses a Catalog from YAML bytes.
func LoadCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse scene catalog: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf("invalid scene catalog: %w", err)
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if len(c.Scenes) == 0 {
		return fmt.Errorf("no scenes defined")
	}
	seen := make(map[string]bool, len(c.Scenes))
	for i, s := range c.Scenes {
		if s.Name == "" {
			return fmt.Errorf("scene %d has no name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scene %q", s.Name)
		}
		seen[s.Name] = true
	}
	for i, p := range c.Planets {
		if p.Name == "" {
			return fmt.Errorf("planet %d has no name", i)
		}
		if p.Radius <= 0 {
			return fmt.Errorf("planet %q radius %v must be positive", p.Name, p.Radius)
		}
	}
	return nil
}

// Scene looks up a scene by name.
func (c *Catalog) Scene(name string) (*SceneDef, bool) {
	for i := range c.Scenes {
		if c.Scenes[i].Name == name {
			return &c.Scenes[i], true
		}
	}
	return nil, false
}

// Masked reports whether the scene declares a viewport polygon. A polygon
// with fewer than 3 vertices still counts: it is an always-empty mask.
func (s *SceneDef) Masked() bool { return s.Mask != nil }

// Polygon returns the mask vertices as screen points.
func (s *SceneDef) Polygon() []geom.Point {
	pts := make([]geom.Point, len(s.Mask))
	for i, v := range s.Mask {
		pts[i] = geom.Pt(v[0], v[1])
	}
	return pts
}
