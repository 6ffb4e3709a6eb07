package component

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaxLinearSpeed caps entities whose archetype does not set a limit.
const DefaultMaxLinearSpeed = 30

// Physics holds the kinematic state integrated by the physics system.
// AngularSpeed is the rotation applied over one second.
type Physics struct {
	LinearSpeed    mgl32.Vec2
	MaxLinearSpeed float32
	AngularSpeed   mgl32.Quat
}

// NewPhysics returns a body at rest with no spin.
func NewPhysics(maxLinearSpeed float32) Physics {
	return Physics{
		MaxLinearSpeed: maxLinearSpeed,
		AngularSpeed:   mgl32.QuatIdent(),
	}
}

// RandomPhysics draws a random drift and tumble. Each axis of the linear
// speed lies in [-maxLinear, maxLinear); the spin is up to maxAngularDeg
// degrees per second around a random axis.
func RandomPhysics(rng *rand.Rand, maxLinear, maxAngularDeg float32) Physics {
	linear := mgl32.Vec2{
		uniform(rng, -maxLinear, maxLinear),
		uniform(rng, -maxLinear, maxLinear),
	}

	axis := mgl32.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
	if axis.Len() == 0 {
		axis = mgl32.Vec3{0, 0, 1}
	}
	angle := mgl32.DegToRad(uniform(rng, 0, maxAngularDeg))

	return Physics{
		LinearSpeed:    linear,
		MaxLinearSpeed: DefaultMaxLinearSpeed,
		AngularSpeed:   mgl32.QuatRotate(angle, axis.Normalize()),
	}
}

// ClampSpeed limits the linear speed to MaxLinearSpeed, keeping direction.
func (p *Physics) ClampSpeed() {
	speed := p.LinearSpeed.Len()
	if speed == 0 || speed <= p.MaxLinearSpeed {
		return
	}
	p.LinearSpeed = p.LinearSpeed.Mul(p.MaxLinearSpeed / speed)
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float32()*(hi-lo)
}
