package game

import (
	"github.com/spacehole-rogue/helmsman/internal/geom"
	"github.com/spacehole-rogue/helmsman/internal/starfield"
	"github.com/spacehole-rogue/helmsman/internal/world"
)

// Inputs is the per-frame intent handed to Engine.Update by the input
// layer.
type Inputs struct {
	// MoveX and MoveY are the thrust direction, each -1, 0 or 1. Screen
	// axes: positive Y is down.
	MoveX, MoveY float64

	// Rotate is 1 for clockwise, -1 for counterclockwise, 0 for none.
	Rotate float64

	// FlightSpeed is the throttle setting, 0..100.
	FlightSpeed int

	// Viewport is the active masked view, nil for an unmasked scene.
	Viewport *Viewport

	// ShowAll makes every star and planet visible regardless of mask and
	// sector.
	ShowAll bool
}

// Viewport is a masked screen region with the flow field its stars follow.
type Viewport struct {
	Mask *geom.Mask
	Flow starfield.Flow
}

// NewViewport builds the viewport of a scene, or nil if the scene has no
// mask. A scene without flow lines gets a flow centered on its mask.
func NewViewport(scene *world.SceneDef) *Viewport {
	if scene == nil || !scene.Masked() {
		return nil
	}
	mask := geom.NewMask(scene.Polygon())
	flow := starfield.FlowFor(mask.Bounds())
	if f := scene.Flow; f != nil {
		flow = starfield.Flow{SplitY: f.SplitY, LeftX: f.LeftX, RightX: f.RightX, GrowthBand: f.GrowthBand}
	}
	return &Viewport{Mask: mask, Flow: flow}
}

func (v *Viewport) mask() *geom.Mask {
	if v == nil {
		return nil
	}
	return v.Mask
}
