package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/l1jgo/arena/internal/component"
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/core/event"
	"github.com/l1jgo/arena/internal/geom"
)

// Rules holds the tunable collision formulas.
type Rules interface {
	// ShipDamage is the health a ship loses when hit by asteroidHits asteroids at once.
	ShipDamage(asteroidHits int) int
	// LaserScore is the score a laser earns for striking asteroidHits asteroids at once.
	LaserScore(asteroidHits int) int
}

// DefaultRules charges one point per asteroid both ways.
type DefaultRules struct{}

func (DefaultRules) ShipDamage(asteroidHits int) int { return asteroidHits }
func (DefaultRules) LaserScore(asteroidHits int) int { return asteroidHits }

// OnCollision runs the collision behavior of this against the other members
// of its collision group. Ids that no longer resolve are skipped, so a
// behavior may safely see entities killed earlier in the same pass.
func (s *State) OnCollision(this ecs.EntityID, others []ecs.EntityID) {
	e, ok := s.Entity(this)
	if !ok || e.Collision == nil {
		return
	}

	switch e.Collision.Behavior {
	case component.BehaviorAsteroidL:
		s.split(this, e, 3.5, s.factory.AsteroidM, true)
	case component.BehaviorAsteroidM:
		s.split(this, e, 1.5, s.factory.AsteroidS, false)
	case component.BehaviorAsteroidS:
		s.split(this, e, 0, nil, false)
	case component.BehaviorSpaceship:
		s.shipHit(this, e, others)
	case component.BehaviorLaser:
		s.laserHit(this, others)
	default:
		s.log.Warn("unknown collision behavior",
			zap.Stringer("behavior", e.Collision.Behavior),
			zap.String("name", e.Name))
	}
}

// split replaces an asteroid by two children offset along X on either side,
// plus an optional dust cloud, whatever it hit.
func (s *State) split(this ecs.EntityID, e *Entity, offset float32, child func(geom.Position) *Entity, cloud bool) {
	spawned := 0
	if child != nil {
		s.Push(child(e.Offset(mgl32.Vec2{offset, 0})))
		s.Push(child(e.Offset(mgl32.Vec2{-offset, 0})))
		spawned += 2
	}
	if cloud {
		s.Push(s.factory.Cloud(e.position, mgl32.QuatIdent()))
		spawned++
	}

	event.Emit(s.bus, event.AsteroidSplit{Name: e.Name, Position: e.position, Children: spawned})
	s.Kill(this)
}

func (s *State) shipHit(this ecs.EntityID, e *Entity, others []ecs.EntityID) {
	if e.Health == nil {
		return
	}

	damage := s.rules.ShipDamage(s.countAsteroids(others))
	if damage > 0 {
		e.Health.DealDamage(damage)
		event.Emit(s.bus, event.ShipDamaged{EntityID: this, Damage: damage, Health: e.Health.Level})
	}

	if e.Health.Level == 0 {
		event.Emit(s.bus, event.ShipDestroyed{EntityID: this, Position: e.position})
		s.Kill(this)
	}
}

// laserHit scores and removes the laser if it struck any asteroid. Lasers
// pass through anything else.
func (s *State) laserHit(this ecs.EntityID, others []ecs.EntityID) {
	hits := s.countAsteroids(others)
	if hits == 0 {
		return
	}

	points := s.rules.LaserScore(hits)
	s.score += points
	event.Emit(s.bus, event.LaserHit{EntityID: this, Hits: hits, Score: s.score})
	s.Kill(this)
}

func (s *State) countAsteroids(ids []ecs.EntityID) int {
	n := 0
	for _, id := range ids {
		if other, ok := s.Entity(id); ok && other.IsAsteroid() {
			n++
		}
	}
	return n
}
