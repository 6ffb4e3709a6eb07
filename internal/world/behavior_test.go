package world

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/core/event"
)

func newTestState() *State {
	return NewState(Options{Aspect: 1, Rand: rand.New(rand.NewPCG(1, 2))})
}

func TestLargeAsteroidSplitsIntoMediumsAndCloud(t *testing.T) {
	s := newTestState()
	id := s.Push(s.Factory().AsteroidL(s.NewPosition(10, 20)))

	s.OnCollision(id, nil)

	_, alive := s.Entity(id)
	assert.False(t, alive)
	assert.Equal(t, []NameRun{{NameAsteroidM, 2}, {NameCloud, 1}}, s.EntitiesGroupedByName())

	var xs []float32
	s.Registry().Each(func(_ ecs.EntityID, e *Entity) {
		if e.Name == NameAsteroidM {
			xs = append(xs, e.Position().X())
			assert.InDelta(t, 20, e.Position().Y(), 1e-5)
		}
	})
	require.Len(t, xs, 2)
	assert.InDelta(t, 13.5, xs[0], 1e-5)
	assert.InDelta(t, 6.5, xs[1], 1e-5)
}

func TestMediumAsteroidSplitsIntoSmalls(t *testing.T) {
	s := newTestState()
	id := s.Push(s.Factory().AsteroidM(s.NewPosition(0, 0)))

	s.OnCollision(id, nil)

	assert.Equal(t, []NameRun{{NameAsteroidS, 2}}, s.EntitiesGroupedByName())
	assert.Equal(t, 1, s.Bus().Pending(), "split event queued")
}

func TestSmallAsteroidVanishes(t *testing.T) {
	s := newTestState()
	id := s.Push(s.Factory().AsteroidS(s.NewPosition(0, 0)))

	s.OnCollision(id, nil)

	assert.Zero(t, s.Registry().Count())
}

func TestSplitChildOffsetFollowsWrapRule(t *testing.T) {
	s := newTestState()
	parent := s.Factory().AsteroidM(s.NewPosition(49, 0))
	parent.enteredWorld = true
	id := s.Push(parent)

	s.OnCollision(id, nil)

	var xs []float32
	s.Registry().Each(func(_ ecs.EntityID, e *Entity) { xs = append(xs, e.Position().X()) })
	require.Len(t, xs, 2)
	assert.InDelta(t, -49.5, xs[0], 1e-4, "wrapped through the seam")
	assert.InDelta(t, 47.5, xs[1], 1e-4)
}

func TestShipTakesDamagePerAsteroid(t *testing.T) {
	s := newTestState()
	ship := s.Push(s.Factory().Spaceship(s.NewPosition(0, 0), 0))
	a := s.Push(s.Factory().AsteroidL(s.NewPosition(1, 0)))
	b := s.Push(s.Factory().AsteroidS(s.NewPosition(-1, 0)))
	laser := s.Push(s.Factory().Laser(s.NewPosition(0, 1), mgl32.QuatIdent(), mgl32.Vec2{}))

	s.OnCollision(ship, []ecs.EntityID{a, b, laser})

	health, ok := s.SpaceshipHealth()
	require.True(t, ok)
	assert.Equal(t, SpaceshipHealth-2, health.Level)
	assert.False(t, s.IsOver())
	assert.Equal(t, 1, s.Bus().Pending())
}

func TestShipDestroyedAtZeroHealth(t *testing.T) {
	s := newTestState()
	ship := s.Push(s.Factory().Spaceship(s.NewPosition(0, 0), 0))
	var others []ecs.EntityID
	for i := range 3 {
		others = append(others, s.Push(s.Factory().AsteroidS(s.NewPosition(float32(i), 0))))
	}

	s.OnCollision(ship, others)

	_, alive := s.Entity(ship)
	assert.False(t, alive)
	assert.True(t, s.IsOver())
	assert.Equal(t, 2, s.Bus().Pending(), "damaged and destroyed")
}

func TestInvincibleShipIgnoresAsteroids(t *testing.T) {
	s := NewGame(Options{Aspect: 1, Rand: rand.New(rand.NewPCG(1, 2)), Cutscene: true})
	ship, _, ok := s.Registry().At(0)
	require.True(t, ok)
	asteroids := s.Registry().IDs()[1:]

	s.OnCollision(ship, asteroids)

	health, ok := s.SpaceshipHealth()
	require.True(t, ok)
	assert.Equal(t, SpaceshipHealth, health.Level)
}

func TestShipIgnoresNonAsteroids(t *testing.T) {
	s := newTestState()
	ship := s.Push(s.Factory().Spaceship(s.NewPosition(0, 0), 0))
	laser := s.Push(s.Factory().Laser(s.NewPosition(0, 0), mgl32.QuatIdent(), mgl32.Vec2{}))

	s.OnCollision(ship, []ecs.EntityID{laser})

	health, _ := s.SpaceshipHealth()
	assert.Equal(t, SpaceshipHealth, health.Level)
	assert.Zero(t, s.Bus().Pending())
}

func TestLaserScoresPerAsteroid(t *testing.T) {
	s := newTestState()
	var hits []event.LaserHit
	event.Subscribe(s.Bus(), func(ev event.LaserHit) { hits = append(hits, ev) })

	laser := s.Push(s.Factory().Laser(s.NewPosition(0, 0), mgl32.QuatIdent(), mgl32.Vec2{}))
	a := s.Push(s.Factory().AsteroidL(s.NewPosition(0, 0)))
	b := s.Push(s.Factory().AsteroidM(s.NewPosition(0, 0)))

	s.OnCollision(laser, []ecs.EntityID{a, b})

	_, alive := s.Entity(laser)
	assert.False(t, alive)
	assert.Equal(t, 2, s.Score())

	s.Bus().SwapBuffers()
	s.Bus().DispatchAll()
	require.Len(t, hits, 1)
	assert.Equal(t, 2, hits[0].Hits)
	assert.Equal(t, 2, hits[0].Score)
}

func TestLaserPassesThroughNonAsteroids(t *testing.T) {
	s := newTestState()
	laser := s.Push(s.Factory().Laser(s.NewPosition(0, 0), mgl32.QuatIdent(), mgl32.Vec2{}))
	ship := s.Push(s.Factory().Spaceship(s.NewPosition(0, 0), 0))

	s.OnCollision(laser, []ecs.EntityID{ship})

	_, alive := s.Entity(laser)
	assert.True(t, alive)
	assert.Zero(t, s.Score())
}

func TestStaleIDsAreSkipped(t *testing.T) {
	s := newTestState()
	laser := s.Push(s.Factory().Laser(s.NewPosition(0, 0), mgl32.QuatIdent(), mgl32.Vec2{}))
	gone := s.Push(s.Factory().AsteroidL(s.NewPosition(0, 0)))
	s.Kill(gone)
	// Reuse the slot with a non-asteroid; the old handle must stay dead.
	s.Push(s.Factory().Spaceship(s.NewPosition(0, 0), 0))

	s.OnCollision(laser, []ecs.EntityID{gone})
	s.OnCollision(gone, []ecs.EntityID{laser})

	_, alive := s.Entity(laser)
	assert.True(t, alive)
	assert.Zero(t, s.Score())
	assert.Equal(t, 2, s.Registry().Count())
}

func TestScriptedRulesAreConsulted(t *testing.T) {
	s := NewState(Options{Aspect: 1, Rules: tenfold{}, Rand: rand.New(rand.NewPCG(1, 2))})
	laser := s.Push(s.Factory().Laser(s.NewPosition(0, 0), mgl32.QuatIdent(), mgl32.Vec2{}))
	a := s.Push(s.Factory().AsteroidS(s.NewPosition(0, 0)))

	s.OnCollision(laser, []ecs.EntityID{a})

	assert.Equal(t, 10, s.Score())
}

type tenfold struct{}

func (tenfold) ShipDamage(n int) int { return n * 10 }
func (tenfold) LaserScore(n int) int { return n * 10 }
