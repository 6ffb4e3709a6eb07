package world

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/l1jgo/arena/internal/component"
	"github.com/l1jgo/arena/internal/core/ecs"
)

// Instance is one drawn copy of an entity.
type Instance struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// RenderKey identifies a draw batch.
type RenderKey struct {
	Shader   component.Shader
	Mesh     int
	Material int
}

func (k RenderKey) less(o RenderKey) bool {
	if k.Shader != o.Shader {
		return k.Shader < o.Shader
	}
	if k.Mesh != o.Mesh {
		return k.Mesh < o.Mesh
	}
	return k.Material < o.Material
}

// InstanceGroup is the instances of one draw batch.
type InstanceGroup struct {
	Key       RenderKey
	Instances []Instance
}

// Instance returns the entity as a single instance at its position.
func (e *Entity) Instance() Instance {
	return Instance{Position: e.position.Vec3(), Rotation: e.Rotation}
}

// GhostInstances tiles an entity that has entered the world over a 3x3
// lattice of world-sized shifts so it shows on both sides of every seam.
// Entities still outside get a single instance.
func (s *State) GhostInstances(e *Entity) []Instance {
	instance := e.Instance()
	if !e.enteredWorld {
		return []Instance{instance}
	}

	instances := make([]Instance, 0, 9)
	for row := -1; row <= 1; row++ {
		for col := -1; col <= 1; col++ {
			ghost := instance
			ghost.Position = mgl32.Vec3{
				instance.Position[0] + s.size.W*float32(col),
				instance.Position[1] + s.size.H*float32(row),
				instance.Position[2],
			}
			instances = append(instances, ghost)
		}
	}
	return instances
}

// InstancesGrouped buckets renderable entities by render key, keys in
// ascending (shader, mesh, material) order and entities in slot order.
func (s *State) InstancesGrouped() []InstanceGroup {
	buckets := make(map[RenderKey][]*Entity)
	s.entities.Each(func(_ ecs.EntityID, e *Entity) {
		if r := e.Renderable; r != nil {
			key := RenderKey{Shader: r.Shader, Mesh: r.Mesh, Material: r.Material}
			buckets[key] = append(buckets[key], e)
		}
	})

	keys := make([]RenderKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	groups := make([]InstanceGroup, 0, len(keys))
	for _, k := range keys {
		ghosts := ecs.ParallelSlice(buckets[k], s.workers, s.GhostInstances)

		var instances []Instance
		for _, g := range ghosts {
			instances = append(instances, g...)
		}
		groups = append(groups, InstanceGroup{Key: k, Instances: instances})
	}
	return groups
}

// InstancesFlat is InstancesGrouped concatenated, for a single upload.
func (s *State) InstancesFlat() []Instance {
	var out []Instance
	for _, g := range s.InstancesGrouped() {
		out = append(out, g.Instances...)
	}
	return out
}

// Lights returns a light record for every ghost of every lit entity whose
// position falls in the visible world grown by the light radius.
func (s *State) Lights() []component.LightRecord {
	var lights []component.LightRecord
	s.entities.Each(func(_ ecs.EntityID, e *Entity) {
		if e.Light == nil {
			return
		}
		rect := s.size.Rect()
		rect.Expand(e.Light.Radius)

		for _, inst := range s.GhostInstances(e) {
			if pos := inst.Position.Vec2(); rect.ContainsPoint(pos) {
				lights = append(lights, e.Light.Record(pos))
			}
		}
	})
	return lights
}
