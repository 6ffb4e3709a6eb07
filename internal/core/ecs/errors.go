package ecs

import "fmt"

// IndexError is the panic value for a handle whose slot index lies beyond the
// registry. Handles come from the registry itself, so this is a caller bug.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("ecs: slot index %d out of range [0:%d]", e.Index, e.Len)
}
