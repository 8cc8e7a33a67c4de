package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera on start with zero velocity.
func CreateCamera(w donburi.World, start math.Vec2, viewportW, viewportH float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.SetValue(camera, components.CameraData{
		Position: start,
		HalfW:    viewportW / 2,
		HalfH:    viewportH / 2,
	})
	return camera
}
