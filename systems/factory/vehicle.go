package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateVehicle(w donburi.World, centre math.Vec2) *donburi.Entry {
	vehicle := archetypes.Vehicle.Spawn(w)
	components.Vehicle.SetValue(vehicle, components.VehicleData{
		Position: centre,
		Facing:   1,
		W:        cfg.Vehicle.Width,
		H:        cfg.Vehicle.Height,
	})
	components.Sprite.SetValue(vehicle, components.SpriteData{
		TextureKey: "ship",
		W:          cfg.Vehicle.Width,
		H:          cfg.Vehicle.Height,
	})
	return vehicle
}
