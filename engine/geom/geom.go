package geom

import "math"

// Vec2 is a 2D vector in arena units
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector, or the zero vector for zero input
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-10 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// FromAngle returns a vector of length mag pointing along angle
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Distance returns the euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// AngleBetween returns the angle from (x1,y1) to (x2,y2), 0 = east, π/2 = south
func AngleBetween(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// WrapAngle maps an angle into [-π, π). Values already in range are returned unchanged.
func WrapAngle(a float64) float64 {
	if a >= -math.Pi && a < math.Pi {
		return a
	}
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// InCone reports whether angle lies strictly within halfWidth of facing.
func InCone(facing, angle, halfWidth float64) bool {
	return math.Abs(WrapAngle(angle-facing)) < halfWidth
}

// Falloff is a linear falloff: scale at distance 0, zero at radius and beyond.
func Falloff(dist, radius, scale float64) float64 {
	if dist >= radius {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	return (radius - dist) * scale
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// CirclesOverlap reports whether two circles intersect
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx, dy := x2-x1, y2-y1
	rr := r1 + r2
	return dx*dx+dy*dy < rr*rr
}
