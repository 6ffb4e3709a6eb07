package ecs

import (
	"golang.org/x/sync/errgroup"
)

// ParallelMap runs fn over every live value and returns one result per slot,
// vacant slots keeping the zero R. Slots are split into contiguous chunks run
// on up to workers goroutines. fn may mutate the value it is handed but must
// not touch any other slot or the arena itself.
func ParallelMap[T, R any](a *Arena[T], workers int, fn func(EntityID, *T) R) []R {
	out := make([]R, len(a.slots))
	ParallelEach(a, workers, func(id EntityID, v *T) {
		out[id.Index()] = fn(id, v)
	})
	return out
}

// ParallelEach is ParallelMap without results.
func ParallelEach[T any](a *Arena[T], workers int, fn func(EntityID, *T)) {
	n := len(a.slots)
	if workers < 1 {
		workers = 1
	}
	if workers == 1 || n < 2*workers {
		a.Each(fn)
		return
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if id, v, ok := a.At(i); ok {
					fn(id, v)
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelSlice maps fn over items on up to workers goroutines, keeping order.
func ParallelSlice[T, R any](items []T, workers int, fn func(T) R) []R {
	out := make([]R, len(items))
	if workers < 1 {
		workers = 1
	}
	if workers == 1 || len(items) < 2*workers {
		for i, it := range items {
			out[i] = fn(it)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, it := range items {
		g.Go(func() error {
			out[i] = fn(it)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
