// Package geom holds the screen-space geometry used by the starfield and
// planet visibility: point-in-polygon, circle/polygon overlap and rotation.
package geom

import "math"

// Point is a 2D coordinate in screen or world space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rotate rotates p about center by angle radians.
// With screen coordinates (y down) a positive angle turns clockwise.
func Rotate(p Point, angle float64, center Point) Point {
	dx := p.X - center.X
	dy := p.Y - center.Y
	sin, cos := math.Sincos(angle)
	return Point{
		X: dx*cos - dy*sin + center.X,
		Y: dx*sin + dy*cos + center.Y,
	}
}

// PointInPolygon reports whether p lies inside polygon using ray casting.
//
// An edge counts as a crossing when p.Y is above the edge's lower end and
// at or below its upper end, and p.X is at or left of the edge's
// x-intercept at p.Y. Horizontal edges never count. Polygons with fewer
// than 3 vertices contain nothing.
func PointInPolygon(p Point, polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	p1 := polygon[n-1]
	for _, p2 := range polygon {
		if p1.Y != p2.Y {
			lo, hi := math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)
			if p.Y > lo && p.Y <= hi {
				xint := (p.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
				if p.X <= xint {
					inside = !inside
				}
			}
		}
		p1 = p2
	}
	return inside
}

// circleSamples are the unit offsets probed on a circle's boundary:
// 4 cardinal then 4 diagonal directions.
var circleSamples = [8]Point{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{math.Sqrt2 / 2, math.Sqrt2 / 2},
	{-math.Sqrt2 / 2, math.Sqrt2 / 2},
	{math.Sqrt2 / 2, -math.Sqrt2 / 2},
	{-math.Sqrt2 / 2, -math.Sqrt2 / 2},
}

// CircleIntersectsPolygon reports whether the circle overlaps polygon.
//
// This is a bounded-sample approximation, not exact intersection. It is
// true when the center is inside, when one of eight boundary samples is
// inside, or when some edge passes strictly closer than radius to the
// center. A circle that only clips an edge between two samples while the
// edge stays farther than radius from the center is a false negative;
// that cannot happen for convex overlaps but can for thin spikes.
func CircleIntersectsPolygon(center Point, radius float64, polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	if PointInPolygon(center, polygon) {
		return true
	}
	for _, s := range circleSamples {
		if PointInPolygon(Point{center.X + s.X*radius, center.Y + s.Y*radius}, polygon) {
			return true
		}
	}
	r2 := radius * radius
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%n]
		if SegmentDistSq(center, a, b) < r2 {
			return true
		}
	}
	return false
}

// SegmentDistSq returns the squared distance from p to the segment ab.
// A zero-length segment degrades to the distance to a.
func SegmentDistSq(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return distSq(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = max(0, min(1, t))
	return distSq(p, Point{a.X + t*dx, a.Y + t*dy})
}

func distSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Normalize returns the unit vector of (x, y), or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}
