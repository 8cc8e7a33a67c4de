package systems

import (
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
)

// StepPhysics advances the physics world by the frame time and copies body
// centres back into Position.
func StepPhysics(w donburi.World) {
	entry, ok := components.Physics.First(w)
	if !ok {
		return
	}
	p := components.Physics.Get(entry)
	p.Engine.Step(frameDelta(w))

	sync := func(e *donburi.Entry) {
		body := components.Body.Get(e)
		pos := components.Position.Get(e)
		pos.Vec2 = factory.ToPixels(p, p.Engine.Transform(body.ID).Position)
	}
	tags.Player.Each(w, sync)
	tags.Hostile.Each(w, sync)
}
