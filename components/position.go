package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PositionData is the world position in pixels of entities without a body.
// For bodies it caches the centre read back after the physics step.
type PositionData struct {
	math.Vec2
}

var Position = donburi.NewComponentType[PositionData]()
