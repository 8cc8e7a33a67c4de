package archetypes

import (
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Position,
		components.Health,
		components.Animation,
		components.State,
		components.Sprite,
		components.Flash,
	)
	Hostile = newArchetype(
		tags.Hostile,
		components.Hostile,
		components.Body,
		components.Position,
		components.Animation,
		components.State,
		components.Sprite,
	)
	Heart = newArchetype(
		tags.Heart,
		components.Pickup,
		components.Position,
		components.Sprite,
		components.Bob,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Pickup,
		components.Position,
		components.Sprite,
		components.Bob,
	)
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
		components.Sprite,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Physics,
	)
	Level = newArchetype(
		components.Level,
		components.LevelState,
		components.Frame,
		components.Input,
		components.Audio,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
