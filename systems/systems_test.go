package systems

import (
	"math"
	"testing"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/physics"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

type testLevel struct {
	w      donburi.World
	layout *leveldata.Layout
	player *donburi.Entry
}

func newTestLevel(t *testing.T, rows ...string) *testLevel {
	t.Helper()
	layout, err := leveldata.Parse(rows, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	unit := cfg.Tile.Size / cfg.Physics.Scale
	space := physics.NewSpace(physics.SpaceConfig{
		Width:       float64(layout.Grid.Width()) * unit,
		Height:      float64(layout.Grid.Height()) * unit,
		CellSize:    cfg.Physics.CellSize,
		MaxSubSteps: cfg.Physics.MaxSubSteps,
	})
	w := donburi.NewWorld()
	if _, err := factory.CreateBoundaries(w, space, layout.Grid, unit); err != nil {
		t.Fatalf("CreateBoundaries: %v", err)
	}
	factory.CreateLevel(w, "test", layout)
	player := factory.CreatePlayer(w, factory.TileCentre(layout.PlayerSpawn))
	factory.CreateCamera(w, factory.TileCentre(layout.PlayerSpawn), 640, 360)
	for _, p := range layout.Hearts {
		factory.CreateHeart(w, factory.TileCentre(p))
	}
	for _, p := range layout.Coins {
		factory.CreateCoin(w, factory.TileCentre(p))
	}
	for _, h := range layout.Hostiles {
		_, ht := factory.HostileType(h.Variant)
		factory.CreateHostile(w, factory.TileCentre(h.Point), h.Variant, NewBehavior(ht.Behavior))
	}
	if layout.Vehicle != nil {
		factory.CreateVehicle(w, factory.TileCentre(*layout.Vehicle))
	}
	return &testLevel{w: w, layout: layout, player: player}
}

func (l *testLevel) setDelta(dt float64) {
	entry, _ := components.Frame.First(l.w)
	components.Frame.Get(entry).Delta = dt
}

func (l *testLevel) setInput(x, y float64) {
	entry, _ := components.Input.First(l.w)
	components.Input.Get(entry).Direction = components.Vector{X: x, Y: y}
}

func (l *testLevel) health() *components.HealthData {
	return components.Health.Get(l.player)
}

func count(w donburi.World, tag donburi.IComponentType) int {
	n := 0
	donburi.NewQuery(filterContains(tag)).Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestCollectHeartHealsAndSaturates(t *testing.T) {
	tests := []struct {
		before, want float64
	}{
		{50, 70},
		{90, 100},
		{100, 100},
	}
	for _, tt := range tests {
		l := newTestLevel(t, "PH-X")
		heart, _ := tags.Heart.First(l.w)
		components.Position.Get(heart).Vec2 = components.Position.Get(l.player).Vec2
		l.health().Current = tt.before

		CollectHearts(l.w)
		if got := l.health().Current; got != tt.want {
			t.Errorf("health %v + heart = %v, want %v", tt.before, got, tt.want)
		}
		if n := count(l.w, tags.Heart); n != 0 {
			t.Errorf("hearts left = %d, want 0", n)
		}
		CollectHearts(l.w)
		if got := l.health().Current; got != tt.want {
			t.Errorf("heart collected twice: health = %v", got)
		}
		if cues := DrainCues(l.w); len(cues) != 1 || cues[0] != cfg.CuePick {
			t.Errorf("cues = %v, want [pick]", cues)
		}
	}
}

func TestHeartOutOfReachStays(t *testing.T) {
	l := newTestLevel(t, "P---H-X")
	CollectHearts(l.w)
	if n := count(l.w, tags.Heart); n != 1 {
		t.Errorf("hearts = %d, want 1", n)
	}
}

func TestCollectCoinsScoresOnce(t *testing.T) {
	l := newTestLevel(t, "PC-X")
	coin, _ := tags.Coin.First(l.w)
	components.Position.Get(coin).Vec2 = components.Position.Get(l.player).Vec2

	CollectCoins(l.w)
	CollectCoins(l.w)
	if score := GetLevelState(l.w).Score; score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
	if n := count(l.w, tags.Coin); n != 0 {
		t.Errorf("coins left = %d", n)
	}
}

func TestHostileContactDamage(t *testing.T) {
	l := newTestLevel(t, "P0--X")
	hostile, _ := tags.Hostile.First(l.w)
	components.Position.Get(hostile).Vec2 = components.Position.Get(l.player).Vec2
	l.setDelta(0.5)

	prev := l.health().Current
	UpdateHostiles(l.w)
	want := prev - 18*0.5
	if got := l.health().Current; math.Abs(got-want) > 1e-9 {
		t.Errorf("health = %v, want %v", got, want)
	}
	if components.Flash.Get(l.player).Remaining <= 0 {
		t.Error("player should flash when hurt")
	}

	for i := 0; i < 40; i++ {
		before := l.health().Current
		UpdateHostiles(l.w)
		// keep overlapping regardless of steering
		components.Position.Get(hostile).Vec2 = components.Position.Get(l.player).Vec2
		if l.health().Current > before {
			t.Fatalf("health rose from %v to %v", before, l.health().Current)
		}
	}
	if got := l.health().Current; got != 0 {
		t.Errorf("health = %v, want floored at 0", got)
	}
}

func TestOutcomeRestartIsSticky(t *testing.T) {
	l := newTestLevel(t, "P---X")
	l.health().Current = 0
	EvaluateOutcome(l.w)
	state := GetLevelState(l.w)
	if !state.NeedsRestart || state.Phase != cfg.PhaseRestarting {
		t.Fatalf("state = %+v, want restarting", state)
	}
	l.health().Current = 50
	EvaluateOutcome(l.w)
	if !state.NeedsRestart {
		t.Error("NeedsRestart cleared")
	}
}

func TestOutcomeCompleteIsSticky(t *testing.T) {
	l := newTestLevel(t, "P-X")
	exit := factory.TileCentre(l.layout.Exit)
	components.Position.Get(l.player).Vec2 = exit
	EvaluateOutcome(l.w)
	state := GetLevelState(l.w)
	if !state.Complete || state.Phase != cfg.PhaseComplete {
		t.Fatalf("state = %+v, want complete", state)
	}
	components.Position.Get(l.player).Vec2 = factory.TileCentre(l.layout.PlayerSpawn)
	EvaluateOutcome(l.w)
	if !state.Complete {
		t.Error("Complete cleared after moving away")
	}
}

func TestOutcomeBothChecksRunSameFrame(t *testing.T) {
	l := newTestLevel(t, "P-X")
	components.Position.Get(l.player).Vec2 = factory.TileCentre(l.layout.Exit)
	l.health().Current = 0
	EvaluateOutcome(l.w)
	state := GetLevelState(l.w)
	if !state.Complete || !state.NeedsRestart {
		t.Errorf("state = %+v, want both flags", state)
	}
	if state.Phase != cfg.PhaseRestarting {
		t.Errorf("phase = %v, want restarting (evaluated first)", state.Phase)
	}
}

func TestWithGameplayChecksSkipsAfterOutcome(t *testing.T) {
	l := newTestLevel(t, "P-X")
	calls := 0
	sys := WithGameplayChecks(func(donburi.World) { calls++ })
	sys(l.w)
	GetLevelState(l.w).Complete = true
	sys(l.w)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestCameraConvergesWithinClamp(t *testing.T) {
	rows := make([]string, 30)
	for i := range rows {
		rows[i] = "------------------------------"
	}
	rows[15] = "---------------P-------------X"
	l := newTestLevel(t, rows...)
	camEntry, _ := components.Camera.First(l.w)
	cam := components.Camera.Get(camEntry)
	cam.Position = dmath.Vec2{X: 400, Y: 300}
	target := components.Position.Get(l.player).Vec2
	l.setDelta(1.0 / 60)

	startDist := dist(cam.Position, target)
	for i := 0; i < 300; i++ {
		UpdateCamera(l.w)
		if cam.Position.X < 320 || cam.Position.X > 960-320 || cam.Position.Y < 180 || cam.Position.Y > 960-180 {
			t.Fatalf("camera %v left clamp bounds", cam.Position)
		}
	}
	if d := dist(cam.Position, target); d >= startDist || d > 1 {
		t.Errorf("camera distance %v, started at %v", d, startDist)
	}
}

func TestCameraCentresOnSmallLevel(t *testing.T) {
	l := newTestLevel(t, "P-X")
	l.setDelta(0)
	UpdateCamera(l.w)
	camEntry, _ := components.Camera.First(l.w)
	cam := components.Camera.Get(camEntry)
	if cam.Position.X != 48 || cam.Position.Y != 16 {
		t.Errorf("camera = %v, want centred (48, 16)", cam.Position)
	}
}

func TestMountAndFollowVehicle(t *testing.T) {
	l := newTestLevel(t,
		"P-X",
		"-S.",
	)
	vehicleEntry, _ := tags.Vehicle.First(l.w)
	vehicle := components.Vehicle.Get(vehicleEntry)
	// stand just above the boat so the sensor reaches it
	components.Position.Get(l.player).Vec2 = dmath.Vec2{X: 48, Y: 20}

	UpdatePlayer(l.w)
	player := components.Player.Get(l.player)
	if !player.InLiquid || !vehicle.Ridden {
		t.Fatalf("player did not board: inLiquid=%v ridden=%v", player.InLiquid, vehicle.Ridden)
	}
	if pos := components.Position.Get(l.player).Vec2; pos != vehicle.Position {
		t.Errorf("player at %v, want on vehicle %v", pos, vehicle.Position)
	}
	if cues := DrainCues(l.w); len(cues) != 1 || cues[0] != cfg.CueBoard {
		t.Errorf("cues = %v", cues)
	}

	components.Position.Get(l.player).Vec2 = dmath.Vec2{X: 70, Y: 50}
	player.Facing = -1
	FollowVehicle(l.w)
	if vehicle.Position != (dmath.Vec2{X: 70, Y: 50}) || vehicle.Facing != -1 {
		t.Errorf("vehicle = %+v, want following player", vehicle)
	}
}

func TestDismountOntoShore(t *testing.T) {
	l := newTestLevel(t,
		"P-X",
		"-S.",
	)
	vehicleEntry, _ := tags.Vehicle.First(l.w)
	vehicle := components.Vehicle.Get(vehicleEntry)
	player := components.Player.Get(l.player)
	player.InLiquid = true
	vehicle.Ridden = true
	// body flush against the shore on the left of tile (1,1)
	components.Position.Get(l.player).Vec2 = dmath.Vec2{X: 32 + 11, Y: 48}
	l.setInput(-1, 0)

	UpdatePlayer(l.w)
	if player.InLiquid || vehicle.Ridden {
		t.Fatalf("still riding: inLiquid=%v ridden=%v", player.InLiquid, vehicle.Ridden)
	}
	if pos := components.Position.Get(l.player).Vec2; pos != (dmath.Vec2{X: 16, Y: 48}) {
		t.Errorf("player at %v, want land tile centre (16, 48)", pos)
	}
	if player.MountArmed {
		t.Error("mount should be disarmed until the sensor leaves the vehicle")
	}

	// Still overlapping the parked boat: no immediate re-mount.
	l.setInput(0, 0)
	UpdatePlayer(l.w)
	if player.InLiquid {
		t.Error("re-mounted without leaving the vehicle")
	}
}

func TestLandPatrolTurnsAtRange(t *testing.T) {
	tc := cfg.Hostile.Types[cfg.HostileCrab]
	h := &components.HostileData{TypeConfig: &tc, Home: dmath.Vec2{X: 100, Y: 100}, Dir: -1}
	b := NewBehavior(cfg.BehaviorLandPatrol)
	v := b.Advance(1.0/60, components.BehaviorContext{
		Self:    dmath.Vec2{X: 100 - tc.PatrolRange, Y: 100},
		Target:  dmath.Vec2{X: 1000, Y: 1000},
		Hostile: h,
	})
	if h.Dir != 1 || v.X != tc.PatrolSpeed {
		t.Errorf("dir=%v v=%v, want turned right at patrol speed", h.Dir, v)
	}
}

func TestSeaPatrolOrbitsHome(t *testing.T) {
	tc := cfg.Hostile.Types[cfg.HostileShark]
	home := dmath.Vec2{X: 100, Y: 100}
	h := &components.HostileData{TypeConfig: &tc, Home: home, Dir: 1}
	b := NewBehavior(cfg.BehaviorSeaPatrol)

	const dt = 1.0 / 60
	self := home
	farthest := 0.0
	for i := 1; i <= 240; i++ {
		v := b.Advance(dt, components.BehaviorContext{
			Self:    self,
			Target:  dmath.Vec2{X: 10000, Y: 10000},
			Hostile: h,
		})
		if h.Chasing {
			t.Fatalf("frame %d: chasing a player out of range", i)
		}
		if speed := math.Hypot(v.X, v.Y); speed > tc.PatrolSpeed+1e-9 {
			t.Fatalf("frame %d: speed %v above patrol speed", i, speed)
		}
		self.X += v.X * dt
		self.Y += v.Y * dt
		d := math.Hypot(self.X-home.X, self.Y-home.Y)
		if d > tc.PatrolRange+1e-6 {
			t.Fatalf("frame %d: %v from home, want within %v", i, d, tc.PatrolRange)
		}
		farthest = math.Max(farthest, d)
		if i == 60 {
			// A quarter of the orbit period.
			want := 2 * math.Pi * 60 * dt / tc.OrbitPeriod
			if math.Abs(h.Angle-want) > 1e-9 {
				t.Errorf("angle after 1s = %v, want %v", h.Angle, want)
			}
		}
	}
	if farthest < tc.PatrolRange/2 {
		t.Errorf("farthest = %v, shark never left home", farthest)
	}
}

func TestChaseHysteresis(t *testing.T) {
	tc := cfg.Hostile.Types[cfg.HostileShark]
	h := &components.HostileData{TypeConfig: &tc, Home: dmath.Vec2{}, Dir: 1}
	b := NewBehavior(cfg.BehaviorSeaPatrol)
	advance := func(targetX float64) dmath.Vec2 {
		return b.Advance(1.0/60, components.BehaviorContext{
			Self:    dmath.Vec2{},
			Target:  dmath.Vec2{X: targetX},
			Hostile: h,
		})
	}

	v := advance(tc.ChaseRange - 1)
	if !h.Chasing || math.Abs(v.X-tc.ChaseSpeed) > 1e-9 {
		t.Fatalf("chasing=%v v=%v, want chase at %v", h.Chasing, v, tc.ChaseSpeed)
	}
	advance(tc.ChaseRange * 1.2)
	if !h.Chasing {
		t.Error("chase dropped inside hysteresis band")
	}
	advance(tc.ChaseRange*cfg.Hostile.HysteresisMultiplier + 1)
	if h.Chasing {
		t.Error("chase kept beyond hysteresis band")
	}
	advance(tc.ChaseRange * 1.2)
	if h.Chasing {
		t.Error("chase restarted outside chase range")
	}
}

func TestAnimatePickupsBobs(t *testing.T) {
	l := newTestLevel(t, "PH-X")
	heart, _ := tags.Heart.First(l.w)
	bob := components.Bob.Get(heart)
	l.setDelta(float64(cfg.Pickup.BobDuration))
	AnimatePickups(l.w)
	if math.Abs(bob.Offset+cfg.Pickup.BobHeight) > 1e-4 || bob.Rising {
		t.Errorf("after one half cycle offset=%v rising=%v", bob.Offset, bob.Rising)
	}
	AnimatePickups(l.w)
	if math.Abs(bob.Offset) > 1e-4 || !bob.Rising {
		t.Errorf("after full cycle offset=%v rising=%v", bob.Offset, bob.Rising)
	}
}

func TestStepPhysicsSyncsPosition(t *testing.T) {
	l := newTestLevel(t, "P---X")
	l.setInput(1, 0)
	l.setDelta(0.1)
	UpdatePlayer(l.w)
	before := components.Position.Get(l.player).X
	StepPhysics(l.w)
	after := components.Position.Get(l.player).X
	if math.Abs(after-before-cfg.Player.LandSpeed*0.1) > 1e-6 {
		t.Errorf("moved %v px, want %v", after-before, cfg.Player.LandSpeed*0.1)
	}
}

func dist(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func filterContains(tag donburi.IComponentType) filter.LayoutFilter {
	return filter.Contains(tag)
}
