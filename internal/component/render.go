package component

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Behavior selects the reaction an entity has to a collision. The world
// resolves behaviors in one place; the component only carries the tag.
type Behavior uint8

const (
	BehaviorNone Behavior = iota
	BehaviorAsteroidL
	BehaviorAsteroidM
	BehaviorAsteroidS
	BehaviorSpaceship
	BehaviorLaser
)

var behaviorNames = [...]string{
	BehaviorNone:      "none",
	BehaviorAsteroidL: "asteroid_l",
	BehaviorAsteroidM: "asteroid_m",
	BehaviorAsteroidS: "asteroid_s",
	BehaviorSpaceship: "spaceship",
	BehaviorLaser:     "laser",
}

func (b Behavior) String() string {
	if int(b) < len(behaviorNames) {
		return behaviorNames[b]
	}
	return "unknown"
}

// Collision opts an entity into collision callbacks.
type Collision struct {
	Behavior Behavior
}

// Shader selects the render pipeline for an entity.
type Shader uint8

const (
	ShaderModel Shader = iota
	ShaderTexture
)

func (s Shader) String() string {
	switch s {
	case ShaderModel:
		return "model"
	case ShaderTexture:
		return "texture"
	}
	return "unknown"
}

// Renderable references render resources by id. The core never interprets
// the ids; it only groups entities by them.
type Renderable struct {
	Shader   Shader
	Mesh     int
	Material int
}

// Light is a point light carried by an entity, drawn at a fixed depth.
type Light struct {
	Color  [3]float32
	Radius float32
	Z      float32
}

// LightRecord is the renderer-facing form of a light at a position.
type LightRecord struct {
	Position [3]float32
	Color    [3]float32
	Radius   float32
}

// Record places the light at position.
func (l Light) Record(position mgl32.Vec2) LightRecord {
	return LightRecord{
		Position: [3]float32{position[0], position[1], l.Z},
		Color:    l.Color,
		Radius:   l.Radius,
	}
}
