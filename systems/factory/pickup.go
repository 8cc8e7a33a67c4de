package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

func CreateHeart(w donburi.World, centre math.Vec2) *donburi.Entry {
	heart := archetypes.Heart.Spawn(w)
	initPickup(heart, centre, components.PickupHeart, cfg.Pickup.HeartRadius, "heart")
	return heart
}

func CreateCoin(w donburi.World, centre math.Vec2) *donburi.Entry {
	coin := archetypes.Coin.Spawn(w)
	initPickup(coin, centre, components.PickupCoin, cfg.Pickup.CoinRadius, "collect")
	return coin
}

func initPickup(e *donburi.Entry, centre math.Vec2, kind components.PickupKind, radius float64, texture string) {
	components.Position.SetValue(e, components.PositionData{Vec2: centre})
	components.Pickup.SetValue(e, components.PickupData{Kind: kind, Radius: radius})
	components.Sprite.SetValue(e, components.SpriteData{
		TextureKey: texture,
		W:          radius * 2,
		H:          radius * 2,
	})

	// The bob moves up then back down; AnimatePickups flips it on each finish.
	height := float32(cfg.Pickup.BobHeight)
	components.Bob.SetValue(e, components.BobData{
		Tween:   gween.New(0, -height, cfg.Pickup.BobDuration, ease.InOutQuad),
		Rising:  true,
		Height:  height,
		Seconds: cfg.Pickup.BobDuration,
	})
}
