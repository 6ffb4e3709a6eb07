package world

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/l1jgo/arena/internal/component"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/geom"
)

// Archetype tuning.
const (
	AsteroidRadiusL = 5
	AsteroidRadiusM = 3
	AsteroidRadiusS = 1
	SpaceshipRadius = 5
	LaserRadius     = 1

	SpaceshipHealth   = 3
	SpaceshipMaxSpeed = 60

	LaserSpeed    = 80
	LaserMaxSpeed = 1000
	LaserLifetime = time.Second
	CloudLifetime = time.Second

	// maximum tumble of asteroids, degrees per second
	asteroidSpin = 100
)

var (
	asteroidGlow = [3]float32{0, 0.3, 0.7}
	engineGlow   = [3]float32{1, 0.7, 0.3}
)

// Factory builds the entities of every archetype. Meshes are resolved
// through the asset manifest; a missing mesh panics.
type Factory struct {
	assets *data.Manifest
	rng    *rand.Rand
}

func NewFactory(assets *data.Manifest, rng *rand.Rand) *Factory {
	return &Factory{assets: assets, rng: rng}
}

func (f *Factory) renderable(shader component.Shader, mesh string) *component.Renderable {
	ref := f.assets.MustMesh(mesh)
	return &component.Renderable{
		Shader:   shader,
		Mesh:     ref.Mesh,
		Material: ref.Material,
	}
}

func (f *Factory) asteroid(name string, position geom.Position, radius, maxLinear float32, glow float32, behavior component.Behavior) *Entity {
	physics := component.RandomPhysics(f.rng, maxLinear, asteroidSpin)

	e := NewEntity(name, position)
	e.Renderable = f.renderable(component.ShaderModel, name)
	e.Physics = &physics
	e.Shape = geom.NewCircle(position.Size(), radius)
	e.Light = &component.Light{Color: asteroidGlow, Radius: glow, Z: glow}
	e.Collision = &component.Collision{Behavior: behavior}
	return e
}

// AsteroidS is the smallest asteroid; it vanishes on impact.
func (f *Factory) AsteroidS(position geom.Position) *Entity {
	return f.asteroid(NameAsteroidS, position, AsteroidRadiusS, 10, 5, component.BehaviorAsteroidS)
}

// AsteroidM splits into two small asteroids on impact.
func (f *Factory) AsteroidM(position geom.Position) *Entity {
	return f.asteroid(NameAsteroidM, position, AsteroidRadiusM, 10, 10, component.BehaviorAsteroidM)
}

// AsteroidL splits into two medium asteroids and a dust cloud on impact.
func (f *Factory) AsteroidL(position geom.Position) *Entity {
	return f.asteroid(NameAsteroidL, position, AsteroidRadiusL, 5, 15, component.BehaviorAsteroidL)
}

// Spaceship is the player ship, rotated by angleDeg around Z.
func (f *Factory) Spaceship(position geom.Position, angleDeg float32) *Entity {
	physics := component.NewPhysics(SpaceshipMaxSpeed)
	control := component.EnabledControl()

	e := NewEntity(NameSpaceship, position)
	e.Rotation = mgl32.QuatRotate(mgl32.DegToRad(angleDeg), mgl32.Vec3{0, 0, 1})
	e.Renderable = f.renderable(component.ShaderModel, NameSpaceship)
	e.Physics = &physics
	e.Shape = geom.NewCircle(position.Size(), SpaceshipRadius)
	e.Light = &component.Light{Color: engineGlow, Radius: 30, Z: 15}
	e.Collision = &component.Collision{Behavior: component.BehaviorSpaceship}
	e.Control = &control
	e.Health = &component.Health{Level: SpaceshipHealth}
	return e
}

// Laser is a projectile fired along the local +Y axis of rotation, carrying
// the velocity of whoever fired it.
func (f *Factory) Laser(position geom.Position, rotation mgl32.Quat, relative mgl32.Vec2) *Entity {
	forward := rotation.Rotate(mgl32.Vec3{0, 1, 0}).Vec2()

	e := NewEntity(NameLaser, position)
	e.Rotation = rotation
	e.Renderable = f.renderable(component.ShaderModel, NameLaser)
	e.Physics = &component.Physics{
		LinearSpeed:    forward.Mul(LaserSpeed).Add(relative),
		MaxLinearSpeed: LaserMaxSpeed,
		AngularSpeed:   mgl32.QuatIdent(),
	}
	e.Lifetime = &component.Lifetime{DiesAfter: LaserLifetime}
	e.Shape = geom.NewCircle(position.Size(), LaserRadius)
	e.Light = &component.Light{Color: engineGlow, Radius: 10, Z: 0}
	e.Collision = &component.Collision{Behavior: component.BehaviorLaser}
	return e
}

// Cloud is cosmetic debris: no shape, no physics, short lived.
func (f *Factory) Cloud(position geom.Position, rotation mgl32.Quat) *Entity {
	e := NewEntity(NameCloud, position)
	e.Rotation = rotation
	e.enteredWorld = true
	e.Renderable = f.renderable(component.ShaderTexture, NameCloud)
	e.Lifetime = &component.Lifetime{DiesAfter: CloudLifetime}
	return e
}
