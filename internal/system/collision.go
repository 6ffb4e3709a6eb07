package system

import (
	"time"

	"github.com/l1jgo/arena/internal/collision"
	"github.com/l1jgo/arena/internal/core/ecs"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/geom"
	"github.com/l1jgo/arena/internal/world"
)

// CollisionSystem snapshots world-space shapes, finds overlap groups, and runs
// each member's collision behavior against the rest of its group.
// Phase 3 (Collision).
//
// The snapshot (shapes, slot handles, groups) is fully built before any
// behavior runs. Behaviors then spawn and kill against the live registry in
// group order; handles killed earlier in the pass resolve as absent.
type CollisionSystem struct {
	world *world.State
}

func NewCollisionSystem(ws *world.State) *CollisionSystem {
	return &CollisionSystem{world: ws}
}

func (s *CollisionSystem) Phase() coresys.Phase { return coresys.PhaseCollision }

func (s *CollisionSystem) Update(_ time.Duration) {
	reg := s.world.Registry()
	shapes := ecs.ParallelMap(reg, s.world.Workers(), func(_ ecs.EntityID, e *world.Entity) geom.Shape {
		return e.WorldShape()
	})
	ids := reg.IDs()

	for _, group := range collision.FindCollisions(shapes) {
		for _, this := range group {
			others := collision.Others(group, this)
			otherIDs := make([]ecs.EntityID, len(others))
			for i, o := range others {
				otherIDs[i] = ids[o]
			}
			s.world.OnCollision(ids[this], otherIDs)
		}
	}
}
