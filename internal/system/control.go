package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/l1jgo/arena/internal/component"
	"github.com/l1jgo/arena/internal/core/ecs"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/world"
)

// Ship handling.
const (
	TurnRate = 180 // degrees per second
	Thrust   = 50  // units per second squared
)

// ControlSystem turns held input into rotation, thrust and laser fire for
// every enabled entity with Control and Physics. It also serves the global
// spawn-asteroid intent. Phase 1 (Control).
type ControlSystem struct {
	world *world.State
	input InputSource
}

func NewControlSystem(ws *world.State, input InputSource) *ControlSystem {
	return &ControlSystem{world: ws, input: input}
}

func (s *ControlSystem) Phase() coresys.Phase { return coresys.PhaseControl }

func (s *ControlSystem) Update(dt time.Duration) {
	in := s.input.Intents()
	secs := float32(dt.Seconds())

	var lasers []*world.Entity
	s.world.Registry().Each(func(_ ecs.EntityID, e *world.Entity) {
		if e.Control == nil || e.Physics == nil || !e.Control.Enabled {
			return
		}
		position := e.Position()

		if in.Forward {
			e.Physics.LinearSpeed = e.Physics.LinearSpeed.Add(e.Forward().Mul(secs * Thrust))
		}
		turn := mgl32.DegToRad(secs * TurnRate)
		if in.TurnRight {
			e.Rotation = e.Rotation.Mul(mgl32.QuatRotate(-turn, mgl32.Vec3{0, 0, 1}))
		}
		if in.TurnLeft {
			e.Rotation = e.Rotation.Mul(mgl32.QuatRotate(turn, mgl32.Vec3{0, 0, 1}))
		}

		if e.Control.WeaponCooldown < dt {
			if in.Fire {
				lasers = append(lasers, s.world.Factory().Laser(position, e.Rotation, e.Physics.LinearSpeed))
				e.Control.WeaponCooldown = component.WeaponCooldown
			} else {
				e.Control.WeaponCooldown = 0
			}
		} else {
			e.Control.WeaponCooldown -= dt
		}
	})

	// Spawn after the walk so new lasers are not visited this tick.
	for _, l := range lasers {
		s.world.Push(l)
	}
	if len(lasers) > 0 {
		s.world.Log().Debug("lasers fired", zap.Int("count", len(lasers)))
	}

	if in.SpawnAsteroid {
		s.world.SpawnAsteroid()
	}
}
