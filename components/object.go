package components

import (
	"github.com/automoto/tidewalker/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its dynamic physics body. W and H are in pixels.
type BodyData struct {
	ID   physics.BodyID
	W, H float64
}

var Body = donburi.NewComponentType[BodyData]()
