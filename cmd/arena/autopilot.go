package main

import (
	"time"

	"github.com/l1jgo/arena/internal/system"
)

// autopilot flies the ship headless: it circles, fires in bursts, and
// thrusts now and then so the arena stays busy without a player.
type autopilot struct {
	tick       int
	burstTicks int
}

func newAutopilot(tickRate time.Duration) *autopilot {
	burst := int(time.Second / tickRate)
	if burst < 1 {
		burst = 1
	}
	return &autopilot{burstTicks: burst}
}

func (a *autopilot) Intents() system.Intents {
	a.tick++
	phase := (a.tick / a.burstTicks) % 4
	return system.Intents{
		TurnLeft: phase != 3,
		Forward:  phase == 3 && a.tick%a.burstTicks < a.burstTicks/4,
		Fire:     phase%2 == 0,
	}
}
