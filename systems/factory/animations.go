package factory

import (
	"fmt"

	"github.com/automoto/tidewalker/assets/animations"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "hostile") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, initial cfg.StateID) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		CurrentSheet: initial,
	}
	for state, def := range defs {
		animData.Animations[state] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	animData.CurrentAnimation = animData.Animations[initial]
	return animData
}
