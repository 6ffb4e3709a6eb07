package system

// Intents is the player input held during the current tick.
type Intents struct {
	Forward       bool
	TurnLeft      bool
	TurnRight     bool
	Fire          bool
	SpawnAsteroid bool
}

// InputSource is polled once per tick by the control system.
type InputSource interface {
	Intents() Intents
}

// StaticInput always reports the same intents.
type StaticInput Intents

func (in StaticInput) Intents() Intents { return Intents(in) }
