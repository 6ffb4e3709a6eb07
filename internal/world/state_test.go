package world

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/arena/internal/component"
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/geom"
)

func TestNewGamePopulation(t *testing.T) {
	s := NewGame(Options{Aspect: 1, Rand: rand.New(rand.NewPCG(7, 7))})

	assert.Equal(t, 1+MinAsteroids, s.Registry().Count())
	assert.Equal(t, MinAsteroids, s.AsteroidsCount())
	assert.False(t, s.IsOver())
	assert.Equal(t, MinAsteroids, s.Bus().Pending(), "one spawn event per asteroid")

	_, ship, ok := s.Registry().At(0)
	require.True(t, ok)
	assert.Equal(t, NameSpaceship, ship.Name)
	assert.NotNil(t, ship.Renderable)
}

func TestCutsceneShipIsHidden(t *testing.T) {
	s := NewGame(Options{Aspect: 1, Cutscene: true})

	_, ship, ok := s.Registry().At(0)
	require.True(t, ok)
	assert.Nil(t, ship.Renderable)
	assert.True(t, ship.Health.Invincible)
	for _, g := range s.InstancesGrouped() {
		assert.NotEqual(t, 0, g.Key.Mesh, "ship mesh is not drawn")
	}
}

func TestSpawnAsteroidComesInFromOutside(t *testing.T) {
	s := newTestState()
	half := s.Size().W/2 + AsteroidRadiusL

	for range 32 {
		id := s.SpawnAsteroid()
		e, ok := s.Entity(id)
		require.True(t, ok)
		assert.Equal(t, NameAsteroidL, e.Name)
		assert.False(t, e.EnteredWorld())

		pos := e.Position().Vec2()
		onEdge := math.Abs(float64(pos.X())) == float64(half) || math.Abs(float64(pos.Y())) == float64(half)
		assert.True(t, onEdge, "spawned at %v", pos)
		assert.False(t, s.Size().Rect().ContainsCircle(pos, AsteroidRadiusL))

		assert.GreaterOrEqual(t, e.Physics.LinearSpeed.Dot(pos.Mul(-1)), float32(0), "heads for the center")
	}
	assert.Equal(t, 32, s.AsteroidsCount())
}

func TestPushReusesLowestVacantSlot(t *testing.T) {
	s := newTestState()
	a := s.Push(s.Factory().AsteroidS(s.NewPosition(0, 0)))
	b := s.Push(s.Factory().AsteroidS(s.NewPosition(0, 0)))
	s.Push(s.Factory().AsteroidS(s.NewPosition(0, 0)))

	s.Kill(b)
	s.Kill(a)
	s.Kill(a) // already gone

	c := s.Push(s.Factory().AsteroidM(s.NewPosition(0, 0)))
	assert.Equal(t, a.Index(), c.Index())
	assert.NotEqual(t, a, c)
	_, ok := s.Entity(a)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Registry().Count())
}

func TestEntityOutOfRangePanics(t *testing.T) {
	s := newTestState()
	assert.Panics(t, func() { s.Entity(ecs.NewEntityID(5, 1)) })
}

func TestIsOverWithoutShip(t *testing.T) {
	s := newTestState()
	assert.True(t, s.IsOver())

	id := s.Push(s.Factory().Spaceship(s.NewPosition(0, 0), 0))
	assert.False(t, s.IsOver())

	e, _ := s.Entity(id)
	e.Health.Level = 0
	assert.True(t, s.IsOver())
}

func TestElapsedUsesInjectedClock(t *testing.T) {
	now := time.Unix(100, 0)
	s := NewState(Options{Now: func() time.Time { return now }})

	now = now.Add(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, s.Elapsed())

	s.Submit()
	assert.Zero(t, s.Elapsed())
}

func TestWorldSizeFollowsAspect(t *testing.T) {
	s := NewState(Options{Aspect: 2})
	assert.Equal(t, float32(200), s.Size().W)
	assert.Equal(t, float32(100), s.Size().H)
	assert.Equal(t, float32(-100), s.Camera().Left)
	assert.Equal(t, float32(50), s.Camera().Top)

	s.Resize(0.5)
	assert.Equal(t, float32(100), s.Size().W)
	assert.Equal(t, float32(200), s.Size().H)
}

func TestEntitiesGroupedByNameSkipsVacantSlots(t *testing.T) {
	s := newTestState()
	s.Push(s.Factory().AsteroidL(s.NewPosition(0, 0)))
	gap := s.Push(s.Factory().Spaceship(s.NewPosition(0, 0), 0))
	s.Push(s.Factory().AsteroidL(s.NewPosition(0, 0)))
	s.Push(s.Factory().AsteroidS(s.NewPosition(0, 0)))
	s.Kill(gap)

	assert.Equal(t, []NameRun{{NameAsteroidL, 2}, {NameAsteroidS, 1}}, s.EntitiesGroupedByName())

	stats := s.Stats()
	assert.Equal(t, 3, stats.Asteroids)
	assert.Equal(t, 3, stats.Entities)
	assert.True(t, stats.Over)
}

func TestFactoryPanicsOnMissingMesh(t *testing.T) {
	m, err := data.ParseManifest([]byte("meshes:\n  - name: Spaceship\n"))
	require.NoError(t, err)
	f := NewFactory(m, rand.New(rand.NewPCG(1, 2)))
	pos := geomAt(0, 0)

	assert.NotPanics(t, func() { f.Spaceship(pos, 0) })
	assert.Panics(t, func() { f.Laser(pos, mgl32.QuatIdent(), mgl32.Vec2{}) })
}

func TestFactoryArchetypes(t *testing.T) {
	f := NewFactory(data.DefaultManifest(), rand.New(rand.NewPCG(1, 2)))
	pos := geomAt(0, 0)

	ship := f.Spaceship(pos, 90)
	assert.InDelta(t, -1, ship.Forward().X(), 1e-5)
	assert.Equal(t, component.BehaviorSpaceship, ship.Collision.Behavior)
	assert.Equal(t, SpaceshipHealth, ship.Health.Level)
	assert.True(t, ship.Control.Enabled)

	laser := f.Laser(pos, mgl32.QuatIdent(), mgl32.Vec2{5, 0})
	assert.InDelta(t, 5, laser.Physics.LinearSpeed.X(), 1e-5)
	assert.InDelta(t, LaserSpeed, laser.Physics.LinearSpeed.Y(), 1e-5)
	assert.Equal(t, LaserLifetime, laser.Lifetime.DiesAfter)

	cloud := f.Cloud(pos, mgl32.QuatIdent())
	assert.True(t, cloud.EnteredWorld())
	assert.Nil(t, cloud.Shape)
	assert.Nil(t, cloud.Physics)
	assert.Equal(t, component.ShaderTexture, cloud.Renderable.Shader)

	for _, a := range []*Entity{f.AsteroidL(pos), f.AsteroidM(pos), f.AsteroidS(pos)} {
		assert.True(t, a.IsAsteroid())
		assert.LessOrEqual(t, a.Physics.LinearSpeed.Len(), float32(10*math.Sqrt2))
		assert.NotNil(t, a.Light)
	}
}

func geomAt(x, y float32) geom.Position {
	return geom.DefaultSize.At(x, y)
}
