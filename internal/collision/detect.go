// Package collision finds overlapping shapes in a registry snapshot.
package collision

import "github.com/l1jgo/arena/internal/geom"

// FindCollisions returns the overlap groups of a shape snapshot. A nil entry
// is a vacant or shapeless slot and is skipped.
//
// Each present shape i seeds a group and collects every later present shape j
// that overlaps it; groups with at least one hit are reported in seed order.
// Groups are forward-only and not transitively closed: a chain a-b-c where a
// and c are apart yields [a b] and [b c], never [a b c].
func FindCollisions(shapes []geom.Shape) [][]int {
	var groups [][]int

	for i, shape := range shapes {
		if shape == nil {
			continue
		}

		group := []int{i}
		for j := i + 1; j < len(shapes); j++ {
			other := shapes[j]
			if other == nil {
				continue
			}
			if shape.Overlaps(other) {
				group = append(group, j)
			}
		}

		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups
}

// Others returns the members of group other than self, keeping group order.
func Others(group []int, self int) []int {
	others := make([]int, 0, len(group)-1)
	for _, id := range group {
		if id != self {
			others = append(others, id)
		}
	}
	return others
}
