package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseDispatch   Phase = iota // 0: swap + deliver last tick's events
	PhaseControl                 // 1: player input -> physics, projectile spawns
	PhasePhysics                 // 2: integrate motion and spin
	PhaseCollision               // 3: detect overlaps, run collision behaviors
	PhaseLifetime                // 4: expire timed entities
	PhasePopulation              // 5: keep the arena stocked with asteroids
)

var phaseNames = [...]string{
	PhaseDispatch:   "dispatch",
	PhaseControl:    "control",
	PhasePhysics:    "physics",
	PhaseCollision:  "collision",
	PhaseLifetime:   "lifetime",
	PhasePopulation: "population",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// System is the interface every tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
