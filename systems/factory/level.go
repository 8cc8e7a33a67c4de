package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TileCentre returns the pixel centre of a cell.
func TileCentre(p leveldata.Point) math.Vec2 {
	return math.Vec2{
		X: (float64(p.X) + 0.5) * cfg.Tile.Size,
		Y: (float64(p.Y) + 0.5) * cfg.Tile.Size,
	}
}

// CreateLevel records the grid, exit landmark and fresh outcome state.
func CreateLevel(w donburi.World, name string, layout *leveldata.Layout) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Grid:   layout.Grid,
		Exit:   TileCentre(layout.Exit),
		Width:  float64(layout.Grid.Width()) * cfg.Tile.Size,
		Height: float64(layout.Grid.Height()) * cfg.Tile.Size,
	})
	components.LevelState.SetValue(level, components.LevelStateData{
		Phase: cfg.PhasePlaying,
	})
	components.Audio.SetValue(level, components.AudioData{
		PendingCues: make([]string, 0, 8),
	})
	return level
}
