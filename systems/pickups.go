package systems

import (
	"math"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// CollectHearts removes every heart touching the player sensor and heals the
// player, never above max health.
func CollectHearts(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	health := components.Health.Get(playerEntry)
	for _, e := range touchedPickups(w, tags.Heart, playerEntry) {
		health.Current = math.Min(health.Max, health.Current+cfg.Pickup.HeartHeal)
		w.Remove(e.Entity())
		QueueCue(w, cfg.CuePick)
	}
}

// CollectCoins removes every coin touching the player sensor and scores it.
func CollectCoins(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	state := GetLevelState(w)
	for _, e := range touchedPickups(w, tags.Coin, playerEntry) {
		if state != nil {
			state.Score += cfg.Pickup.CoinValue
		}
		w.Remove(e.Entity())
		QueueCue(w, cfg.CuePick)
	}
}

func touchedPickups(w donburi.World, tag donburi.IComponentType, playerEntry *donburi.Entry) []*donburi.Entry {
	sensor := PlayerSensor(playerEntry)
	var hits []*donburi.Entry
	donburi.NewQuery(filter.Contains(tag, components.Pickup, components.Position)).Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		pickup := components.Pickup.Get(e)
		if sensor.IntersectsCircle(pos.X, pos.Y, pickup.Radius) {
			hits = append(hits, e)
		}
	})
	return hits
}

// AnimatePickups runs the bob tween of every pickup back and forth.
func AnimatePickups(w donburi.World) {
	dt := float32(frameDelta(w))
	components.Bob.Each(w, func(e *donburi.Entry) {
		bob := components.Bob.Get(e)
		if bob.Tween == nil {
			return
		}
		v, done := bob.Tween.Update(dt)
		bob.Offset = float64(v)
		if !done {
			return
		}
		bob.Rising = !bob.Rising
		end := float32(0)
		if bob.Rising {
			end = -bob.Height
		}
		bob.Tween = gween.New(v, end, bob.Seconds, ease.InOutQuad)
	})
}
