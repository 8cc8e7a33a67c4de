package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// VehicleData is the companion boat. While ridden it is a visual proxy that
// follows the player body, not a physics body of its own.
type VehicleData struct {
	Position math.Vec2 // centre in pixels
	Facing   float64
	W, H     float64
	Ridden   bool
}

var Vehicle = donburi.NewComponentType[VehicleData]()
