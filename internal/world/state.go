package world

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/arena/internal/component"
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/core/event"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/geom"
)

// MinAsteroids is the population below which a new large asteroid is sent in.
const MinAsteroids = 3

// Options configures a State. Zero fields get usable defaults.
type Options struct {
	Aspect   float32
	Assets   *data.Manifest
	Rules    Rules
	Bus      *event.Bus
	Rand     *rand.Rand
	Log      *zap.Logger
	Workers  int
	Cutscene bool
	Now      func() time.Time
}

// State owns the entity registry and everything a tick reads or writes.
// Single-goroutine access only (game loop); the parallel passes only touch
// one entity each.
type State struct {
	entities *ecs.Arena[Entity]
	size     geom.Size
	camera   Camera
	score    int

	factory *Factory
	rules   Rules
	bus     *event.Bus
	rng     *rand.Rand
	log     *zap.Logger
	workers int

	now        func() time.Time
	lastUpdate time.Time
}

// NewState returns an empty world.
func NewState(opts Options) *State {
	if opts.Aspect <= 0 {
		opts.Aspect = 1
	}
	if opts.Assets == nil {
		opts.Assets = data.DefaultManifest()
	}
	if opts.Rules == nil {
		opts.Rules = DefaultRules{}
	}
	if opts.Bus == nil {
		opts.Bus = event.NewBus()
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	size, camera := sizeAndCamera(opts.Aspect)
	return &State{
		entities:   ecs.NewArena[Entity](),
		size:       size,
		camera:     camera,
		factory:    NewFactory(opts.Assets, opts.Rand),
		rules:      opts.Rules,
		bus:        opts.Bus,
		rng:        opts.Rand,
		log:        opts.Log,
		workers:    opts.Workers,
		now:        opts.Now,
		lastUpdate: opts.Now(),
	}
}

// NewGame returns a world with the ship at the origin and three large
// asteroids on their way in. In cutscene mode the ship is invincible and
// not drawn.
func NewGame(opts Options) *State {
	s := NewState(opts)

	ship := s.factory.Spaceship(s.NewPosition(0, 0), 0)
	if opts.Cutscene {
		ship.Health = &component.Health{Level: SpaceshipHealth, Invincible: true}
		ship.Renderable = nil
	}
	s.Push(ship)

	for range MinAsteroids {
		s.SpawnAsteroid()
	}

	s.log.Info("new game",
		zap.Float32("width", s.size.W),
		zap.Float32("height", s.size.H),
		zap.Bool("cutscene", opts.Cutscene))
	return s
}

func (s *State) Registry() *ecs.Arena[Entity] { return s.entities }
func (s *State) Factory() *Factory            { return s.factory }
func (s *State) Bus() *event.Bus              { return s.bus }
func (s *State) Log() *zap.Logger             { return s.log }
func (s *State) Workers() int                 { return s.workers }
func (s *State) Size() geom.Size              { return s.size }
func (s *State) Camera() Camera               { return s.camera }
func (s *State) Score() int                   { return s.score }

// Resize refits world size and camera to a new viewport aspect ratio.
// Existing positions keep the extent they were created with.
func (s *State) Resize(aspect float32) {
	s.size, s.camera = sizeAndCamera(aspect)
}

// NewPosition returns an unnormalized position in this world.
func (s *State) NewPosition(x, y float32) geom.Position {
	return s.size.At(x, y)
}

// Push adds an entity to the first vacant registry slot.
func (s *State) Push(e *Entity) ecs.EntityID {
	id := s.entities.Push(e)
	s.log.Debug("spawn entity",
		zap.String("name", e.Name),
		zap.Uint32("slot", id.Index()),
		zap.Stringer("pos", e.position))
	return id
}

// Kill vacates the entity's slot. Killing an absent entity does nothing.
func (s *State) Kill(id ecs.EntityID) {
	if s.entities.Kill(id) {
		s.log.Debug("kill entity", zap.Uint32("slot", id.Index()))
	}
}

// Entity returns the live entity behind id. The pointer may be mutated in
// place; it is invalid once the entity is killed.
func (s *State) Entity(id ecs.EntityID) (*Entity, bool) {
	return s.entities.Get(id)
}

// SpaceshipHealth returns the health of the first spaceship, if any.
func (s *State) SpaceshipHealth() (component.Health, bool) {
	var (
		health component.Health
		found  bool
	)
	s.entities.Each(func(_ ecs.EntityID, e *Entity) {
		if !found && e.Name == NameSpaceship && e.Health != nil {
			health, found = *e.Health, true
		}
	})
	return health, found
}

// IsOver reports whether the ship is gone or out of health.
func (s *State) IsOver() bool {
	health, ok := s.SpaceshipHealth()
	return !ok || health.Level == 0
}

// AsteroidsCount counts live asteroids of every size.
func (s *State) AsteroidsCount() int {
	n := 0
	s.entities.Each(func(_ ecs.EntityID, e *Entity) {
		if e.IsAsteroid() {
			n++
		}
	})
	return n
}

// SpawnAsteroid sends a large asteroid in from just beyond a random edge of
// the visible world, heading for the center.
func (s *State) SpawnAsteroid() ecs.EntityID {
	w, h := s.size.W, s.size.H
	x := s.rng.Float32()*w - w/2
	y := s.rng.Float32()*h - h/2

	if s.rng.IntN(2) == 0 {
		x = (w/2 + AsteroidRadiusL) * sign(s.rng.IntN(2) == 0)
	} else {
		y = (h/2 + AsteroidRadiusL) * sign(s.rng.IntN(2) == 0)
	}

	asteroid := s.factory.AsteroidL(s.NewPosition(x, y))
	toCenter := asteroid.position.Vec2().Mul(-1)
	if speed := asteroid.Physics.LinearSpeed.Len(); speed > 0 {
		asteroid.Physics.LinearSpeed = toCenter.Normalize().Mul(speed)
	}

	id := s.Push(asteroid)
	event.Emit(s.bus, event.AsteroidSpawned{EntityID: id, Position: asteroid.position})
	return id
}

// Submit marks the end of a tick; the next Elapsed is measured from here.
func (s *State) Submit() {
	s.lastUpdate = s.now()
}

// Elapsed is the wall time since the previous Submit.
func (s *State) Elapsed() time.Duration {
	return s.now().Sub(s.lastUpdate)
}

func sign(negative bool) float32 {
	if negative {
		return -1
	}
	return 1
}
