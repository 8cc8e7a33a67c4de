package systems

import (
	"github.com/automoto/tidewalker/components"
	"github.com/yohamta/donburi"
)

// System is one stage of the frame pipeline.
type System func(w donburi.World)

// GetLevelState returns the level's outcome singleton.
func GetLevelState(w donburi.World) *components.LevelStateData {
	entry, ok := components.LevelState.First(w)
	if !ok {
		return nil
	}
	return components.LevelState.Get(entry)
}

// IsFinished reports whether either terminal flag is set.
func IsFinished(w donburi.World) bool {
	state := GetLevelState(w)
	return state != nil && (state.Complete || state.NeedsRestart)
}

// WithGameplayChecks wraps a system to skip execution once the level has an outcome
func WithGameplayChecks(system System) System {
	return func(w donburi.World) {
		if IsFinished(w) {
			return
		}
		system(w)
	}
}

func frameDelta(w donburi.World) float64 {
	entry, ok := components.Frame.First(w)
	if !ok {
		return 0
	}
	return components.Frame.Get(entry).Delta
}

func inputDirection(w donburi.World) components.Vector {
	entry, ok := components.Input.First(w)
	if !ok {
		return components.Vector{}
	}
	return components.Input.Get(entry).Direction
}

func getLevel(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
