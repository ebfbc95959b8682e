package geom

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Center returns the middle of the box.
func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Clamp pulls p onto the box.
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: max(r.MinX, min(r.MaxX, p.X)),
		Y: max(r.MinY, min(r.MaxY, p.Y)),
	}
}

// Mask is the on-screen viewport polygon that clips which stars and
// planets are visible in a masked scene. A mask with fewer than 3
// vertices is empty: it contains and intersects nothing.
type Mask struct {
	vertices []Point
	bounds   Rect
}

// NewMask copies vertices into a new mask.
func NewMask(vertices []Point) *Mask {
	m := &Mask{vertices: append([]Point(nil), vertices...)}
	m.bounds = boundsOf(m.vertices)
	return m
}

func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r
}

// Empty reports whether the mask has fewer than 3 vertices.
func (m *Mask) Empty() bool { return len(m.vertices) < 3 }

// Vertices returns the polygon. Callers must not modify it.
func (m *Mask) Vertices() []Point { return m.vertices }

// Bounds returns the polygon's bounding box.
func (m *Mask) Bounds() Rect { return m.bounds }

// Center returns the center of the bounding box.
func (m *Mask) Center() Point { return m.bounds.Center() }

// Contains reports whether p is inside the polygon.
func (m *Mask) Contains(p Point) bool {
	if m.Empty() {
		return false
	}
	return PointInPolygon(p, m.vertices)
}

// IntersectsCircle reports whether a circle overlaps the polygon, using
// the sampled approximation of CircleIntersectsPolygon.
func (m *Mask) IntersectsCircle(center Point, radius float64) bool {
	if m.Empty() {
		return false
	}
	return CircleIntersectsPolygon(center, radius, m.vertices)
}
