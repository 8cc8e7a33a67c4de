package components

import (
	"github.com/automoto/tidewalker/config"
	"github.com/yohamta/donburi"
)

// LevelStateData holds the sticky outcome flags. Once Complete or
// NeedsRestart is set it is never cleared for the life of the level.
type LevelStateData struct {
	Score        int
	Complete     bool
	NeedsRestart bool
	Phase        config.PhaseID
}

var LevelState = donburi.NewComponentType[LevelStateData]()
