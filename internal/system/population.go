package system

import (
	"time"

	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/world"
)

// PopulationSystem sends in one large asteroid whenever fewer than
// world.MinAsteroids remain. Phase 5 (Population).
type PopulationSystem struct {
	world *world.State
}

func NewPopulationSystem(ws *world.State) *PopulationSystem {
	return &PopulationSystem{world: ws}
}

func (s *PopulationSystem) Phase() coresys.Phase { return coresys.PhasePopulation }

func (s *PopulationSystem) Update(_ time.Duration) {
	if s.world.AsteroidsCount() < world.MinAsteroids {
		s.world.SpawnAsteroid()
	}
}
