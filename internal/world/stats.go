package world

import "github.com/l1jgo/arena/internal/core/ecs"

// NameRun is a run of consecutive same-named entities in slot order.
type NameRun struct {
	Name  string
	Count int
}

// EntitiesGroupedByName collapses live entities into runs of equal names.
// Vacant slots do not break a run.
func (s *State) EntitiesGroupedByName() []NameRun {
	var runs []NameRun
	s.entities.Each(func(_ ecs.EntityID, e *Entity) {
		if n := len(runs); n > 0 && runs[n-1].Name == e.Name {
			runs[n-1].Count++
			return
		}
		runs = append(runs, NameRun{Name: e.Name, Count: 1})
	})
	return runs
}

// Stats is the per-frame summary shown on the HUD.
type Stats struct {
	Score     int
	Asteroids int
	Entities  int
	Health    int
	Over      bool
}

func (s *State) Stats() Stats {
	health, _ := s.SpaceshipHealth()
	return Stats{
		Score:     s.score,
		Asteroids: s.AsteroidsCount(),
		Entities:  s.entities.Count(),
		Health:    health.Level,
		Over:      s.IsOver(),
	}
}
