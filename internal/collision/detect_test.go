package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l1jgo/arena/internal/geom"
)

// wide enough that wrap-around never matters
var size = geom.Size{W: 1000, H: 1000}

func circle(x, y, r float32) geom.Shape {
	return geom.Circle{Origin: size.At(x, y), Radius: r}
}

func TestFindCollisionsEmpty(t *testing.T) {
	assert.Empty(t, FindCollisions(nil))
	assert.Empty(t, FindCollisions([]geom.Shape{nil, nil}))
}

func TestFindCollisionsNoOverlap(t *testing.T) {
	got := FindCollisions([]geom.Shape{
		circle(0, 0, 20),
		circle(40, 0, 10),
	})

	assert.Empty(t, got)
}

func TestFindCollisionsPair(t *testing.T) {
	got := FindCollisions([]geom.Shape{
		circle(0, 0, 20),
		circle(40, 0, 10),
		circle(-20, 0, 20),
	})

	assert.Equal(t, [][]int{{0, 2}}, got)
}

func TestFindCollisionsVacantSlotShiftsIndices(t *testing.T) {
	got := FindCollisions([]geom.Shape{
		nil,
		circle(0, 0, 20),
		circle(40, 0, 10),
		circle(-20, 0, 20),
	})

	assert.Equal(t, [][]int{{1, 3}}, got)
}

func TestFindCollisionsAcrossSeam(t *testing.T) {
	got := FindCollisions([]geom.Shape{
		nil,
		geom.Circle{Origin: geom.DefaultSize.At(0, -40), Radius: 15},
		geom.Circle{Origin: geom.DefaultSize.At(0, 40), Radius: 15},
	})

	assert.Equal(t, [][]int{{1, 2}}, got)
}

func TestFindCollisionsIsNotTransitive(t *testing.T) {
	// 0 touches 1, 1 touches 2, 0 and 2 are apart.
	got := FindCollisions([]geom.Shape{
		circle(0, 0, 6),
		circle(10, 0, 6),
		circle(20, 0, 6),
	})

	assert.Equal(t, [][]int{{0, 1}, {1, 2}}, got)
}

func TestFindCollisionsSeedCollectsAllLaterHits(t *testing.T) {
	got := FindCollisions([]geom.Shape{
		circle(0, 0, 10),
		circle(5, 0, 1),
		circle(-5, 0, 1),
		circle(0, 5, 1),
	})

	assert.Equal(t, [][]int{{0, 1, 2, 3}}, got)
}

func TestOthers(t *testing.T) {
	assert.Equal(t, []int{3, 7}, Others([]int{1, 3, 7}, 1))
	assert.Equal(t, []int{1, 7}, Others([]int{1, 3, 7}, 3))
	assert.Empty(t, Others([]int{4}, 4))
}
