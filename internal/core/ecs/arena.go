package ecs

// Arena is a slot registry of optional values addressed by EntityID.
// Pushing takes the first vacant slot, killing vacates one. Slot indices are
// reused, generations are not, so a stale EntityID reads as absent.
// Single-goroutine access only (game loop).
type Arena[T any] struct {
	pool         *EntityPool
	slots        []*T
	destroyQueue []EntityID
}

func NewArena[T any]() *Arena[T] {
	return &Arena[T]{
		pool:         NewEntityPool(),
		slots:        make([]*T, 0, 256),
		destroyQueue: make([]EntityID, 0, 64),
	}
}

// Push stores v in the first vacant slot and returns its handle.
func (a *Arena[T]) Push(v *T) EntityID {
	id := a.pool.Create()
	idx := int(id.Index())
	if idx == len(a.slots) {
		a.slots = append(a.slots, v)
	} else {
		a.slots[idx] = v
	}
	return id
}

// Kill vacates the slot named by id. Killing a vacant or stale id is a no-op
// and reports false.
func (a *Arena[T]) Kill(id EntityID) bool {
	a.checkIndex(id)
	if !a.pool.Destroy(id) {
		return false
	}
	a.slots[id.Index()] = nil
	return true
}

// Get returns the value named by id, or false if the slot is vacant or was
// reused since id was handed out. An index beyond the registry panics.
func (a *Arena[T]) Get(id EntityID) (*T, bool) {
	a.checkIndex(id)
	if !a.pool.Alive(id) {
		return nil, false
	}
	return a.slots[id.Index()], true
}

// Alive reports whether id still names a live value.
func (a *Arena[T]) Alive(id EntityID) bool {
	return a.pool.Alive(id)
}

// At returns the live value at slot index, if any.
func (a *Arena[T]) At(index int) (EntityID, *T, bool) {
	v := a.slots[index]
	if v == nil {
		return 0, nil, false
	}
	return NewEntityID(uint32(index), a.pool.generations[index]), v, true
}

// Len is the number of slots, vacant ones included.
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// Count is the number of live values.
func (a *Arena[T]) Count() int {
	n := 0
	for _, v := range a.slots {
		if v != nil {
			n++
		}
	}
	return n
}

// Each visits live values in ascending slot order.
func (a *Arena[T]) Each(fn func(EntityID, *T)) {
	for i := range a.slots {
		if id, v, ok := a.At(i); ok {
			fn(id, v)
		}
	}
}

// IDs returns the live handle at every slot; vacant slots hold the zero ID.
func (a *Arena[T]) IDs() []EntityID {
	ids := make([]EntityID, len(a.slots))
	for i := range a.slots {
		if id, _, ok := a.At(i); ok {
			ids[i] = id
		}
	}
	return ids
}

// MarkForDestruction queues an entity for FlushDestroyQueue.
func (a *Arena[T]) MarkForDestruction(id EntityID) {
	a.destroyQueue = append(a.destroyQueue, id)
}

// FlushDestroyQueue kills every queued entity and returns how many were live.
func (a *Arena[T]) FlushDestroyQueue() int {
	n := 0
	for _, id := range a.destroyQueue {
		if a.Kill(id) {
			n++
		}
	}
	a.destroyQueue = a.destroyQueue[:0]
	return n
}

func (a *Arena[T]) checkIndex(id EntityID) {
	if idx := int(id.Index()); idx >= len(a.slots) {
		panic(&IndexError{Index: idx, Len: len(a.slots)})
	}
}
