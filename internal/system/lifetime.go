package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/arena/internal/core/ecs"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/world"
)

// LifetimeSystem counts down every Lifetime and removes the entities whose
// time ran out. Removal happens after the whole pass.
// Phase 4 (Lifetime).
type LifetimeSystem struct {
	world *world.State
}

func NewLifetimeSystem(ws *world.State) *LifetimeSystem {
	return &LifetimeSystem{world: ws}
}

func (s *LifetimeSystem) Phase() coresys.Phase { return coresys.PhaseLifetime }

func (s *LifetimeSystem) Update(dt time.Duration) {
	reg := s.world.Registry()
	reg.Each(func(id ecs.EntityID, e *world.Entity) {
		if e.Lifetime != nil && !e.Lifetime.Consume(dt) {
			reg.MarkForDestruction(id)
		}
	})

	if n := reg.FlushDestroyQueue(); n > 0 {
		s.world.Log().Debug("lifetimes expired", zap.Int("count", n))
	}
}
