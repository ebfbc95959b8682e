// Package starfield simulates the pool of background stars: free-roam
// drift and rotation across the whole screen, and the directional warp
// flow seen through a masked viewport.
package starfield

import "github.com/spacehole-rogue/helmsman/internal/geom"

// MotionMode records which motion rule moved a star on the last update.
type MotionMode uint8

const (
	ModeFree     MotionMode = iota // global velocity + rotation
	ModeViewport                   // flow field inside the mask
)

func (m MotionMode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeViewport:
		return "viewport"
	default:
		return "unknown"
	}
}

// Star is a single background star in screen space.
type Star struct {
	ID    uint64 // unique within a simulator; replacements get a new ID
	X, Y  float64
	Size  int  // 1 or 2 pixels
	Grown bool // latched once the star has grown to size 2
	Mode  MotionMode
}

// Pos returns the star's screen position.
func (s *Star) Pos() geom.Point { return geom.Pt(s.X, s.Y) }

// grow latches the star to size 2. It reports false if it already grew.
func (s *Star) grow() bool {
	if s.Grown {
		return false
	}
	s.Grown = true
	s.Size = 2
	return true
}
