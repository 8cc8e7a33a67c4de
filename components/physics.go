package components

import (
	"github.com/automoto/tidewalker/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData is the singleton holding the level's physics world.
type PhysicsData struct {
	Engine physics.Engine
	Ground physics.BodyID
	Edges  []physics.Edge
	Scale  float64 // pixels per physics unit
}

var Physics = donburi.NewComponentType[PhysicsData]()
