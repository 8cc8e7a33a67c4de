package components

import (
	"github.com/automoto/tidewalker/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BehaviorContext is what a hostile can see when it advances.
type BehaviorContext struct {
	Self    math.Vec2 // current centre in pixels
	Target  math.Vec2 // player centre in pixels
	Hostile *HostileData
}

// Behavior steers a hostile. Advance returns the desired velocity in pixels
// per second.
type Behavior interface {
	Advance(dt float64, ctx BehaviorContext) math.Vec2
}

type HostileData struct {
	TypeName   string
	TypeConfig *config.HostileTypeConfig
	Variant    int
	Behavior   Behavior

	// AI state management
	Home     math.Vec2 // spawn centre
	Dir      float64   // patrol direction, -1 or 1
	Angle    float64   // orbit angle in radians
	LastSelf math.Vec2 // position at the previous advance
	Issued   math.Vec2 // velocity requested at the previous advance
	Chasing  bool
}

var Hostile = donburi.NewComponentType[HostileData]()
