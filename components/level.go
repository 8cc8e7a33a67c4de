package components

import (
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Name   string
	Grid   *leveldata.Grid
	Exit   math.Vec2 // exit landmark in pixels
	Width  float64   // world extent in pixels
	Height float64
}

var Level = donburi.NewComponentType[LevelData]()
