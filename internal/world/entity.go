package world

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/l1jgo/arena/internal/component"
	"github.com/l1jgo/arena/internal/geom"
)

// Archetype names. Many entities share a name; it is a tag, not an id.
const (
	NameSpaceship = "Spaceship"
	NameAsteroidL = "Asteroid_L"
	NameAsteroidM = "Asteroid_M"
	NameAsteroidS = "Asteroid_S"
	NameLaser     = "Laser"
	NameCloud     = "Cloud_L"

	asteroidPrefix = "Asteroid"
)

// Entity is a name tag, a placement, and a set of optional components.
// A nil component is absent. An entity exists only while it sits in the
// registry of a State.
type Entity struct {
	Name     string
	Rotation mgl32.Quat

	position     geom.Position
	enteredWorld bool

	Shape      geom.Shape
	Renderable *component.Renderable
	Physics    *component.Physics
	Collision  *component.Collision
	Control    *component.Control
	Health     *component.Health
	Lifetime   *component.Lifetime
	Light      *component.Light
}

// NewEntity returns a bare entity that has not entered the world yet.
func NewEntity(name string, position geom.Position) *Entity {
	return &Entity{
		Name:     name,
		Rotation: mgl32.QuatIdent(),
		position: position,
	}
}

func (e *Entity) Position() geom.Position { return e.position }

// EnteredWorld reports whether the entity's shape has been fully inside the
// visible world at least once. Until then it moves without wrapping.
func (e *Entity) EnteredWorld() bool { return e.enteredWorld }

// IsAsteroid reports whether the entity carries an asteroid name.
func (e *Entity) IsAsteroid() bool {
	return strings.HasPrefix(e.Name, asteroidPrefix)
}

// WorldShape returns the shape placed at the entity position, or nil.
func (e *Entity) WorldShape() geom.Shape {
	if e.Shape == nil {
		return nil
	}
	return e.Shape.Translate(e.position.Vec2())
}

// Offset returns a position relative to the entity, moved under the same
// wrap rule the entity itself moves under.
func (e *Entity) Offset(v mgl32.Vec2) geom.Position {
	if e.enteredWorld {
		return e.position.Translate(v)
	}
	return e.position.TranslateUnsafe(v)
}

// Forward is the entity's local +Y axis in world space.
func (e *Entity) Forward() mgl32.Vec2 {
	return e.Rotation.Rotate(mgl32.Vec3{0, 1, 0}).Vec2()
}

// UpdatePhysics clamps speed, moves, and spins the entity by dt.
func (e *Entity) UpdatePhysics(dt time.Duration) {
	if e.Physics == nil {
		return
	}
	e.Physics.ClampSpeed()

	secs := float32(dt.Seconds())
	e.translate(e.Physics.LinearSpeed.Mul(secs))
	e.Rotation = mgl32.QuatNlerp(e.Rotation, e.Rotation.Mul(e.Physics.AngularSpeed), secs)
}

func (e *Entity) translate(v mgl32.Vec2) {
	if e.enteredWorld {
		e.position = e.position.Translate(v)
		return
	}
	e.position = e.position.TranslateUnsafe(v)

	// Shapeless entities always fit.
	e.enteredWorld = e.Shape == nil || e.Shape.FitsIn(e.position.WorldRect(), e.position.Vec2())
}

func (e *Entity) String() string {
	return fmt.Sprintf("[%s at %s]", e.Name, e.position)
}
