package system

import (
	"time"

	"github.com/l1jgo/arena/internal/core/ecs"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/world"
)

// PhysicsSystem integrates every entity with Physics. Each entity only
// touches itself, so the pass fans out over the configured workers.
// Phase 2 (Physics).
type PhysicsSystem struct {
	world *world.State
}

func NewPhysicsSystem(ws *world.State) *PhysicsSystem {
	return &PhysicsSystem{world: ws}
}

func (s *PhysicsSystem) Phase() coresys.Phase { return coresys.PhasePhysics }

func (s *PhysicsSystem) Update(dt time.Duration) {
	ecs.ParallelEach(s.world.Registry(), s.world.Workers(), func(_ ecs.EntityID, e *world.Entity) {
		e.UpdatePhysics(dt)
	})
}
