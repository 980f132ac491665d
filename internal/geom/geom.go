// Package geom provides the 2D vector and segment math the game is built on.
// It contains no engine dependencies so the visibility and collision logic
// stays pure and testable.
package geom

import "math"

// ParallelEpsilon is the threshold below which a ray and a segment are
// treated as parallel (no intersection) by IntersectRayLine.
const ParallelEpsilon = 1e-5

// Vec2 is an immutable 2D point or direction.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar z-component of the 3D cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ScaleTo returns v rescaled to the given length. The zero vector is
// returned unchanged.
func (v Vec2) ScaleTo(length float64) Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(length / l)
}

// Angle returns the polar angle of v in radians, in (-pi, pi].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Round returns v with both components rounded to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

// Segment is a line segment between two distinct points. Intersection math
// treats it as directionless; the endpoint order only matters for polygon
// winding consistency.
type Segment struct {
	A, B Vec2
}

// Dist returns the shortest distance from p to the segment: p is projected
// onto the infinite line through A-B and the projection parameter is clamped
// to [0, 1].
func (s Segment) Dist(p Vec2) float64 {
	ab := s.B.Sub(s.A)
	norm := ab.Dot(ab)
	if norm == 0 {
		return p.Sub(s.A).Length()
	}
	u := p.Sub(s.A).Dot(ab) / norm
	u = math.Max(0, math.Min(1, u))
	return s.A.Add(ab.Scale(u)).Sub(p).Length()
}

// IntersectRayLine intersects the ray origin + t1*dir (t1 >= 0) with the
// segment p1 + t2*(p2-p1) (t2 in [0, 1]). It reports ok = false when the ray
// is parallel to the segment (within ParallelEpsilon) or the intersection
// falls outside those ranges. t1 is the scaling factor along dir, not a
// distance in pixels unless dir is unit length.
func IntersectRayLine(origin, dir, p1, p2 Vec2) (t1, t2 float64, ok bool) {
	v1 := origin.Sub(p1)
	v2 := p2.Sub(p1)
	v3 := Vec2{-dir.Y, dir.X}
	dot := v2.Dot(v3)
	if math.Abs(dot) < ParallelEpsilon {
		return 0, 0, false
	}
	t1 = v2.Cross(v1) / dot
	t2 = v1.Dot(v3) / dot
	if t1 >= 0 && t2 >= 0 && t2 <= 1 {
		return t1, t2, true
	}
	return 0, 0, false
}

// SegmentsIntersect reports whether segments a-b and c-d cross. Collinear
// overlaps are not detected reliably; callers only use this on segments in
// general position.
func SegmentsIntersect(a, b, c, d Vec2) bool {
	ccw := func(a, b, c Vec2) bool {
		return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
	}
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether p lies inside the rectangle. The left and top
// edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
