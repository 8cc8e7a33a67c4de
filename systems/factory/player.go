package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(w donburi.World, centre math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	createBody(w, player, centre, cfg.Player.BodyWidth, cfg.Player.BodyHeight, tags.ResolvPlayer)
	components.Player.SetValue(player, components.PlayerData{
		Facing:     1,
		MountArmed: true,
		SensorW:    cfg.Player.SensorWidth,
		SensorH:    cfg.Player.SensorHeight,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.MaxHealth,
	})
	components.Animation.Set(player, GenerateAnimations("player", cfg.Idle))
	components.Sprite.SetValue(player, components.SpriteData{
		TextureKey: "player",
		W:          cfg.Tile.Size,
		H:          cfg.Tile.Size,
	})
	// Permanently attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})

	return player
}
