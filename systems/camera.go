package systems

import (
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera pulls the camera toward the player with a spring-damper and
// keeps the viewport inside the level. With a zero frame time only the clamp
// applies.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	target := components.Position.Get(playerEntry).Vec2

	level := getLevel(w)
	if level == nil {
		return
	}

	spring := gamemath.Spring{
		Stiffness: config.Camera.Stiffness,
		Damping:   config.Camera.Damping,
		Mass:      config.Camera.Mass,
	}
	dt := frameDelta(w)
	camera.Position.X, camera.Velocity.X = spring.Step(camera.Position.X, camera.Velocity.X, target.X, dt)
	camera.Position.Y, camera.Velocity.Y = spring.Step(camera.Position.Y, camera.Velocity.Y, target.Y, dt)

	camera.Position.X = gamemath.ClampAxis(camera.Position.X, camera.HalfW, level.Width)
	camera.Position.Y = gamemath.ClampAxis(camera.Position.Y, camera.HalfH, level.Height)
}
