package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Velocity math.Vec2
	HalfW    float64 // half viewport extent
	HalfH    float64
}

var Camera = donburi.NewComponentType[CameraData]()
