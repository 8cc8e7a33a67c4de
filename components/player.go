package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction  Vector  // last input, each axis in [-1, 1]
	Facing     float64 // -1 left, 1 right
	InLiquid   bool    // riding the vehicle on sea
	MountArmed bool    // false until the sensor leaves the vehicle after a dismount
	SensorW    float64
	SensorH    float64
}

var Player = donburi.NewComponentType[PlayerData]()
