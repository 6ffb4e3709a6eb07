package component

import "time"

// WeaponCooldown is the delay between two shots of a controlled entity.
const WeaponCooldown = 200 * time.Millisecond

// Control marks an entity as driven by player input.
type Control struct {
	Enabled        bool
	WeaponCooldown time.Duration
}

// EnabledControl returns a control ready to fire immediately.
func EnabledControl() Control {
	return Control{Enabled: true}
}

// Health is a hit counter. An invincible entity ignores damage.
type Health struct {
	Level      int
	Invincible bool
}

// DealDamage lowers the level by damage, saturating at zero.
func (h *Health) DealDamage(damage int) {
	if h.Invincible || damage <= 0 {
		return
	}
	h.Level = max(h.Level-damage, 0)
}

// Dead reports whether the level reached zero.
func (h Health) Dead() bool { return h.Level <= 0 }

// Lifetime is the time an entity has left before it is removed.
type Lifetime struct {
	DiesAfter time.Duration
}

// Consume subtracts dt from the remaining time. It reports false, leaving the
// remaining time untouched, once dt exceeds what is left.
func (l *Lifetime) Consume(dt time.Duration) bool {
	if l.DiesAfter < dt {
		return false
	}
	l.DiesAfter -= dt
	return true
}
