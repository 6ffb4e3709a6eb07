package event

import (
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/geom"
)

// AsteroidSpawned fires when population maintenance brings in a new large
// asteroid from outside the visible world.
type AsteroidSpawned struct {
	EntityID ecs.EntityID
	Position geom.Position
}

// AsteroidSplit fires when an asteroid breaks apart on impact.
type AsteroidSplit struct {
	Name     string
	Position geom.Position
	Children int
}

type ShipDamaged struct {
	EntityID ecs.EntityID
	Damage   int
	Health   int
}

type ShipDestroyed struct {
	EntityID ecs.EntityID
	Position geom.Position
}

// LaserHit fires when a laser strikes at least one asteroid.
type LaserHit struct {
	EntityID ecs.EntityID
	Hits     int
	Score    int
}
