package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// HostileType resolves a spawn variant to its type configuration.
// The level parser only emits variants listed in cfg.Hostile.Variants.
func HostileType(variant int) (string, cfg.HostileTypeConfig) {
	name := cfg.Hostile.Variants[variant]
	return name, cfg.Hostile.Types[name]
}

func CreateHostile(w donburi.World, centre math.Vec2, variant int, behavior components.Behavior) *donburi.Entry {
	typeName, hostileType := HostileType(variant)

	hostile := archetypes.Hostile.Spawn(w)
	createBody(w, hostile, centre, hostileType.BodyWidth, hostileType.BodyHeight, tags.ResolvHostile)

	components.Hostile.SetValue(hostile, components.HostileData{
		TypeName:   typeName,
		TypeConfig: &hostileType,
		Variant:    variant,
		Behavior:   behavior,
		Home:       centre,
		Dir:        -1, // Start facing left
		LastSelf:   centre,
	})
	components.State.SetValue(hostile, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})
	components.Animation.Set(hostile, GenerateAnimations("hostile", cfg.StatePatrol))
	components.Sprite.SetValue(hostile, components.SpriteData{
		TextureKey: hostileType.TextureKey,
		W:          cfg.Tile.Size,
		H:          cfg.Tile.Size,
	})
	return hostile
}
