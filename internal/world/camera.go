package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/l1jgo/arena/internal/geom"
)

// WorldSizeMin is the length of the shorter world side.
const WorldSizeMin = 100

// Camera holds the orthographic camera parameters handed to the renderer.
// The projection itself is built renderer-side.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	Left   float32
	Right  float32
	Top    float32
	Bottom float32
	Near   float32
	Far    float32
}

// sizeAndCamera fits the world to a viewport aspect ratio (width/height).
// The shorter side is WorldSizeMin; the camera frames exactly the world.
func sizeAndCamera(aspect float32) (geom.Size, Camera) {
	w, h := float32(WorldSizeMin), float32(WorldSizeMin)
	if aspect > 1 {
		w = h * aspect
	} else if aspect > 0 {
		h = w / aspect
	}

	camera := Camera{
		Eye:    mgl32.Vec3{0, -1, WorldSizeMin},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Left:   -w / 2,
		Right:  w / 2,
		Top:    h / 2,
		Bottom: -h / 2,
		Near:   WorldSizeMin - 25,
		Far:    WorldSizeMin + 25,
	}

	return geom.Size{W: w, H: h}, camera
}
