package system

import (
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/world"
)

// RegisterAll wires the full tick pipeline for a world into runner.
func RegisterAll(runner *coresys.Runner, ws *world.State, input InputSource) {
	runner.Register(NewEventDispatchSystem(ws.Bus()))
	runner.Register(NewControlSystem(ws, input))
	runner.Register(NewPhysicsSystem(ws))
	runner.Register(NewCollisionSystem(ws))
	runner.Register(NewLifetimeSystem(ws))
	runner.Register(NewPopulationSystem(ws))
}
