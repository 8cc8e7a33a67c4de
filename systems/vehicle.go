package systems

import (
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
)

// FollowVehicle snaps a ridden vehicle onto the player.
func FollowVehicle(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if !player.InLiquid {
		return
	}
	vehicleEntry, ok := tags.Vehicle.First(w)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(vehicleEntry)
	vehicle.Position = components.Position.Get(playerEntry).Vec2
	vehicle.Facing = player.Facing
}
