package components

import (
	"github.com/automoto/tidewalker/assets/animations"
	"github.com/automoto/tidewalker/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
			a.CurrentAnimation.Looped = false
		}
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

// Frame returns the current frame index, 0 without an animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
