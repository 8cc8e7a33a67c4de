package systems

import (
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
)

// EvaluateOutcome sets the sticky terminal flags. Both checks run every
// frame; Phase keeps whichever transition happened first.
func EvaluateOutcome(w donburi.World) {
	state := GetLevelState(w)
	level := getLevel(w)
	playerEntry, ok := tags.Player.First(w)
	if state == nil || level == nil || !ok {
		return
	}

	if components.Health.Get(playerEntry).Current <= 0 {
		state.NeedsRestart = true
		if state.Phase == cfg.PhasePlaying {
			state.Phase = cfg.PhaseRestarting
		}
	}

	if PlayerSensor(playerEntry).Contains(level.Exit.X, level.Exit.Y) {
		state.Complete = true
		if state.Phase == cfg.PhasePlaying {
			state.Phase = cfg.PhaseComplete
		}
	}
}
