package starfield

import (
	"math"

	"github.com/spacehole-rogue/helmsman/internal/geom"
)

// Flight speed thresholds for viewport star flow.
const (
	flowIdleBelow = 10    // below this the stars hold still
	flowLinearTop = 20    // 10..20 ramps linearly
	flowRampMin   = 10.0  // px/s at flowIdleBelow
	flowRampMax   = 50.0  // px/s at flowLinearTop
	flowCruiseMax = 200.0 // px/s at full throttle
	defaultBandPx = 5.0
)

// FlowSpeed maps a 0-100 flight speed to viewport star speed in px/s.
func FlowSpeed(flightSpeed int) float64 {
	switch {
	case flightSpeed < flowIdleBelow:
		return 0
	case flightSpeed <= flowLinearTop:
		t := float64(flightSpeed-flowIdleBelow) / (flowLinearTop - flowIdleBelow)
		return flowRampMin + t*(flowRampMax-flowRampMin)
	default:
		return flowCruiseMax * math.Pow(float64(flightSpeed)/100, 1.5)
	}
}

// Flow is the directional field stars follow inside a viewport mask.
//
// Stars above SplitY drift up and stars at or below it drift down. Stars
// left of LeftX drift left and stars right of RightX drift right; the band
// between the two only moves vertically. A star drifting up grows when it
// crosses SplitY-GrowthBand, one drifting down when it crosses
// SplitY+GrowthBand.
type Flow struct {
	SplitY     float64
	LeftX      float64
	RightX     float64
	GrowthBand float64
}

// FlowFor centers a flow field on a mask's bounding box, with a single
// vertical split.
func FlowFor(bounds geom.Rect) Flow {
	c := bounds.Center()
	return Flow{SplitY: c.Y, LeftX: c.X, RightX: c.X, GrowthBand: defaultBandPx}
}

// Direction returns the per-axis drift direction at p, each -1, 0 or 1.
func (f Flow) Direction(p geom.Point) (dx, dy float64) {
	if p.Y < f.SplitY {
		dy = -1
	} else {
		dy = 1
	}
	switch {
	case p.X > f.RightX:
		dx = 1
	case p.X < f.LeftX:
		dx = -1
	}
	return dx, dy
}

// crossedGrowthLine reports whether a star moving vertically in direction
// dirY went from oldY to newY across the growth line on its side.
func (f Flow) crossedGrowthLine(oldY, newY, dirY float64) bool {
	switch {
	case dirY < 0:
		line := f.SplitY - f.GrowthBand
		return oldY >= line && newY < line
	case dirY > 0:
		line := f.SplitY + f.GrowthBand
		return oldY <= line && newY > line
	}
	return false
}
