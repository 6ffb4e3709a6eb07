package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Size is the extent of the toroidal world. The visible world is centered on
// the origin, so each axis spans [-W/2, W/2] and [-H/2, H/2].
type Size struct {
	W float32
	H float32
}

// DefaultSize is the extent used by zero-value positions.
var DefaultSize = Size{W: 100, H: 100}

// Half returns the half extent as a vector.
func (s Size) Half() mgl32.Vec2 {
	return mgl32.Vec2{s.W / 2, s.H / 2}
}

// Rect returns the visible world rectangle.
func (s Size) Rect() Rect {
	return Rect{
		LeftTop:     mgl32.Vec2{-s.W / 2, s.H / 2},
		RightBottom: mgl32.Vec2{s.W / 2, -s.H / 2},
	}
}

// At builds an unnormalized position inside a world of this size.
func (s Size) At(x, y float32) Position {
	return Position{v: mgl32.Vec2{x, y}, size: s}
}

// Position is a 2D coordinate bound to the extent of the world it lives in.
// Positions produced by Translate are normalized into the centered range;
// TranslateUnsafe may leave them outside.
type Position struct {
	v    mgl32.Vec2
	size Size
}

// Vec2 returns the raw coordinate.
func (p Position) Vec2() mgl32.Vec2 { return p.v }

// Vec3 returns the coordinate lifted onto the z=0 plane.
func (p Position) Vec3() mgl32.Vec3 { return p.v.Vec3(0) }

func (p Position) X() float32 { return p.v[0] }
func (p Position) Y() float32 { return p.v[1] }

// Size returns the world extent the position is bound to.
func (p Position) Size() Size {
	if p.size == (Size{}) {
		return DefaultSize
	}
	return p.size
}

// Zero returns the origin of the same world.
func (p Position) Zero() Position {
	return Position{size: p.Size()}
}

// WorldRect returns the visible rectangle of the position's world.
func (p Position) WorldRect() Rect {
	return p.Size().Rect()
}

func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.v[0], p.v[1])
}

// Translate moves the position by v and wraps the result into world bounds.
func (p Position) Translate(v mgl32.Vec2) Position {
	size := p.Size()
	return Position{v: normalize(p.v.Add(v), size), size: size}
}

// TranslateUnsafe moves the position by v without wrapping.
func (p Position) TranslateUnsafe(v mgl32.Vec2) Position {
	return Position{v: p.v.Add(v), size: p.Size()}
}

// Normalize wraps the position into world bounds.
func (p Position) Normalize() Position {
	return p.Translate(mgl32.Vec2{})
}

// Distance is the wrap-aware distance between two positions: the shorter of
// the direct offset and the offset measured after shifting both points by half
// the world and renormalizing. Both axes are shifted jointly.
func (p Position) Distance(other Position) float32 {
	size := p.Size()
	half := size.Half()

	direct := p.v.Sub(other.v).Len()
	wrapped := normalize(p.v.Add(half), size).Sub(normalize(other.v.Add(half), size)).Len()

	return min(direct, wrapped)
}

func normalize(v mgl32.Vec2, size Size) mgl32.Vec2 {
	return mgl32.Vec2{
		normalizeCoord(v[0], size.W),
		normalizeCoord(v[1], size.H),
	}
}

func normalizeCoord(x, world float32) float32 {
	clamped := float32(math.Mod(float64(x), float64(world)))
	half := world / 2

	if clamped >= -half && clamped <= half {
		return clamped
	}
	if clamped > 0 {
		return clamped - world
	}
	return clamped + world
}
