// Package level owns one playable level: its world, terrain physics and the
// ordered frame pipeline that drives it.
package level

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/physics"
	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/systems"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputState is the per-frame input handed to a level.
type InputState struct {
	Direction components.Vector // each axis in [-1, 1]
}

// CuePlayer plays fire-and-forget audio cues by name.
type CuePlayer interface {
	PlayCue(name string)
}

// Options configures a level. Zero values fall back to config defaults.
type Options struct {
	Name      string
	ViewportW float64
	ViewportH float64
	Variants  leveldata.VariantPicker
	Engine    physics.Engine // must be empty; sized by the caller
	Cues      CuePlayer
}

// Level is a single running level instance.
type Level struct {
	name     string
	world    donburi.World
	engine   physics.Engine
	cues     CuePlayer
	pipeline []systems.System
	closed   bool
}

// New parses rows and builds a level from them.
func New(rows []string, opts Options) (*Level, error) {
	pick := opts.Variants
	if pick == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		pick = leveldata.RandomVariants(rng, cfg.Tile.LandVariants, cfg.Tile.SeaVariants)
	}
	layout, err := leveldata.Parse(rows, pick)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", opts.Name, err)
	}
	return NewFromLayout(layout, opts)
}

// NewFromLayout builds the world for an already parsed layout.
func NewFromLayout(layout *leveldata.Layout, opts Options) (*Level, error) {
	if opts.ViewportW <= 0 || opts.ViewportH <= 0 {
		opts.ViewportW = float64(cfg.C.Width)
		opts.ViewportH = float64(cfg.C.Height)
	}
	unit := cfg.Tile.Size / cfg.Physics.Scale
	engine := opts.Engine
	if engine == nil {
		engine = physics.NewSpace(physics.SpaceConfig{
			Width:         float64(layout.Grid.Width()) * unit,
			Height:        float64(layout.Grid.Height()) * unit,
			CellSize:      cfg.Physics.CellSize,
			EdgeThickness: cfg.Physics.EdgeThickness,
			MaxSubSteps:   cfg.Physics.MaxSubSteps,
		})
	}

	w := donburi.NewWorld()
	edges, err := factory.CreateBoundaries(w, engine, layout.Grid, unit)
	if err != nil {
		engine.Destroy()
		return nil, fmt.Errorf("level %q: %w", opts.Name, err)
	}

	factory.CreateLevel(w, opts.Name, layout)
	spawn := factory.TileCentre(layout.PlayerSpawn)
	factory.CreatePlayer(w, spawn)
	if layout.Vehicle != nil {
		factory.CreateVehicle(w, factory.TileCentre(*layout.Vehicle))
	}
	for _, h := range layout.Hostiles {
		_, hostileType := factory.HostileType(h.Variant)
		factory.CreateHostile(w, factory.TileCentre(h.Point), h.Variant, systems.NewBehavior(hostileType.Behavior))
	}
	for _, p := range layout.Hearts {
		factory.CreateHeart(w, factory.TileCentre(p))
	}
	for _, p := range layout.Coins {
		factory.CreateCoin(w, factory.TileCentre(p))
	}

	// Start on the player, then clamp with a zero-length step.
	factory.CreateCamera(w, spawn, opts.ViewportW, opts.ViewportH)
	systems.UpdateCamera(w)

	l := &Level{
		name:   opts.Name,
		world:  w,
		engine: engine,
		cues:   opts.Cues,
		pipeline: []systems.System{
			systems.WithGameplayChecks(systems.StepPhysics),
			systems.WithGameplayChecks(systems.FollowVehicle),
			systems.WithGameplayChecks(systems.UpdateCamera),
			systems.WithGameplayChecks(systems.CollectHearts),
			systems.WithGameplayChecks(systems.CollectCoins),
			systems.WithGameplayChecks(systems.UpdateHostiles),
			systems.WithGameplayChecks(systems.UpdatePlayer),
			systems.WithGameplayChecks(systems.EvaluateOutcome),

			// visual only
			systems.WithGameplayChecks(systems.AnimatePickups),
			systems.WithGameplayChecks(systems.UpdateFlash),
		},
	}

	log.Printf("Loaded level %s: %dx%d tiles, %d edges, %d hostiles, %d hearts, %d coins",
		opts.Name, layout.Grid.Width(), layout.Grid.Height(), len(edges),
		len(layout.Hostiles), len(layout.Hearts), len(layout.Coins))
	return l, nil
}

// Update runs one frame of dt seconds. Once the level has an outcome it does
// nothing.
func (l *Level) Update(dt float64) {
	if l.closed || systems.IsFinished(l.world) {
		return
	}
	if dt < 0 {
		dt = 0
	}
	frame := l.frame()
	frame.Delta = dt
	frame.Count++

	for _, sys := range l.pipeline {
		sys(l.world)
	}

	for _, cue := range systems.DrainCues(l.world) {
		if l.cues != nil {
			l.cues.PlayCue(cue)
		}
	}
}

// HandleInput stores the direction used by the next Update.
func (l *Level) HandleInput(in InputState) {
	entry, ok := components.Input.First(l.world)
	if !ok {
		return
	}
	components.Input.Get(entry).Direction = components.Vector{
		X: gamemath.Clamp(in.Direction.X, -1, 1),
		Y: gamemath.Clamp(in.Direction.Y, -1, 1),
	}
}

func (l *Level) frame() *components.FrameData {
	entry, _ := components.Frame.First(l.world)
	return components.Frame.Get(entry)
}

func (l *Level) state() *components.LevelStateData {
	return systems.GetLevelState(l.world)
}

func (l *Level) Name() string          { return l.name }
func (l *Level) Score() int            { return l.state().Score }
func (l *Level) IsLevelComplete() bool { return l.state().Complete }
func (l *Level) NeedsRestart() bool    { return l.state().NeedsRestart }
func (l *Level) Phase() cfg.PhaseID    { return l.state().Phase }
func (l *Level) World() donburi.World  { return l.world }

// Camera returns the camera centre in world pixels.
func (l *Level) Camera() math.Vec2 {
	entry, ok := components.Camera.First(l.world)
	if !ok {
		return math.Vec2{}
	}
	return components.Camera.Get(entry).Position
}

// Health returns the player's current health.
func (l *Level) Health() float64 {
	entry, ok := tags.Player.First(l.world)
	if !ok {
		return 0
	}
	return components.Health.Get(entry).Current
}

// Edges returns the boundary edges in physics units.
func (l *Level) Edges() []physics.Edge {
	entry, ok := components.Physics.First(l.world)
	if !ok {
		return nil
	}
	return components.Physics.Get(entry).Edges
}

// Close releases the physics world. The level must not be updated afterwards.
func (l *Level) Close() {
	if l.closed {
		return
	}
	l.closed = true
	l.engine.Destroy()
}
