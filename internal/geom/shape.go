package geom

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle with +Y pointing up.
type Rect struct {
	LeftTop     mgl32.Vec2
	RightBottom mgl32.Vec2
}

// Expand grows the rectangle by v on every side.
func (r *Rect) Expand(v float32) {
	r.LeftTop[0] -= v
	r.LeftTop[1] += v
	r.RightBottom[0] += v
	r.RightBottom[1] -= v
}

// ContainsPoint reports whether the point lies in the half-open rectangle
// [left, right) x [bottom, top).
func (r Rect) ContainsPoint(p mgl32.Vec2) bool {
	left, top := r.LeftTop[0], r.LeftTop[1]
	right, bottom := r.RightBottom[0], r.RightBottom[1]

	return p[0] >= left && p[0] < right && p[1] >= bottom && p[1] < top
}

// ContainsCircle reports whether the circle lies strictly inside the
// rectangle. A circle touching or crossing an edge is not contained.
func (r Rect) ContainsCircle(center mgl32.Vec2, radius float32) bool {
	if !r.ContainsPoint(center) {
		return false
	}

	left, top := r.LeftTop[0], r.LeftTop[1]
	right, bottom := r.RightBottom[0], r.RightBottom[1]
	x, y := center[0], center[1]
	rSqr := radius * radius

	return sqr(left-x) > rSqr &&
		sqr(right-x) > rSqr &&
		sqr(top-y) > rSqr &&
		sqr(bottom-y) > rSqr
}

func sqr(v float32) float32 { return v * v }

// Shape is a collision volume. Shapes stored on entities are relative to the
// entity position; Translate produces the world-space shape.
type Shape interface {
	// Overlaps reports whether two world-space shapes intersect.
	Overlaps(other Shape) bool
	// Translate offsets the shape by v, wrapping through the torus.
	Translate(v mgl32.Vec2) Shape
	// FitsIn reports whether the shape, offset by at, lies fully inside r.
	FitsIn(r Rect, at mgl32.Vec2) bool
}

// Circle is a shape with an origin offset and a radius.
type Circle struct {
	Origin Position
	Radius float32
}

// NewCircle returns a circle centered on the entity position.
func NewCircle(size Size, radius float32) Circle {
	return Circle{Origin: Position{size: size}, Radius: radius}
}

// Overlaps uses strict inequality: tangent circles do not overlap.
func (c Circle) Overlaps(other Shape) bool {
	switch o := other.(type) {
	case Circle:
		return c.Origin.Distance(o.Origin) < c.Radius+o.Radius
	case *Circle:
		return c.Origin.Distance(o.Origin) < c.Radius+o.Radius
	}
	return false
}

func (c Circle) Translate(v mgl32.Vec2) Shape {
	return Circle{Origin: c.Origin.Translate(v), Radius: c.Radius}
}

func (c Circle) FitsIn(r Rect, at mgl32.Vec2) bool {
	center := c.Origin.TranslateUnsafe(at).Vec2()
	return r.ContainsCircle(center, c.Radius)
}
