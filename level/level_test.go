package level

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/display"
	"github.com/automoto/tidewalker/physics"
	"github.com/automoto/tidewalker/shared/leveldata"
)

const frame = 1.0 / 60

type recordingCues struct {
	played []string
}

func (r *recordingCues) PlayCue(name string) {
	r.played = append(r.played, name)
}

func fixedVariants(leveldata.TileType, int) int { return 0 }

func mustNew(t *testing.T, opts Options, rows ...string) *Level {
	t.Helper()
	if opts.Variants == nil {
		opts.Variants = fixedVariants
	}
	l, err := New(rows, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(l.Close)
	return l
}

func TestNewPlayerExitScenario(t *testing.T) {
	l := mustNew(t, Options{Name: "pxe"}, "P-X")
	if n := len(l.Edges()); n != 4 {
		t.Errorf("edges = %d, want 4", n)
	}
	if l.Health() != cfg.Player.Health {
		t.Errorf("health = %v", l.Health())
	}
	// the 96x32 level is smaller than the viewport, so the camera is centred
	if cam := l.Camera(); cam.X != 48 || cam.Y != 16 {
		t.Errorf("camera = %v, want (48, 16)", cam)
	}
	if l.Phase() != cfg.PhasePlaying || l.IsLevelComplete() || l.NeedsRestart() {
		t.Errorf("fresh level not playing: phase=%v", l.Phase())
	}
}

func TestNewCameraStartsOnPlayer(t *testing.T) {
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = strings.Repeat("-", 40)
	}
	rows[10] = strings.Repeat("-", 20) + "P" + strings.Repeat("-", 18) + "X"
	l := mustNew(t, Options{}, rows...)
	if cam := l.Camera(); cam.X != 20.5*32 || cam.Y != 10.5*32 {
		t.Errorf("camera = %v, want player spawn", cam)
	}
}

func TestNewMapErrors(t *testing.T) {
	_, err := New([]string{"P-X", "--"}, Options{Variants: fixedVariants})
	var shapeErr *leveldata.MapShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Row != 1 {
		t.Errorf("ragged map: err = %v", err)
	}

	_, err = New([]string{"P-X", "-~-"}, Options{Variants: fixedVariants})
	var symErr *leveldata.MapSymbolError
	if !errors.As(err, &symErr) || symErr.X != 1 || symErr.Y != 1 {
		t.Errorf("bad symbol: err = %v", err)
	}
}

func TestUpdateCollectsCoinAndPlaysCue(t *testing.T) {
	cues := &recordingCues{}
	l := mustNew(t, Options{Cues: cues}, "PC---X")
	l.HandleInput(InputState{Direction: components.Vector{X: 1}})
	for i := 0; i < 30; i++ {
		l.Update(frame)
	}
	if l.Score() != 1 {
		t.Errorf("score = %d, want 1", l.Score())
	}
	if !reflect.DeepEqual(cues.played, []string{cfg.CuePick}) {
		t.Errorf("cues = %v, want [pick]", cues.played)
	}
}

func TestUpdateReachesExitAndStops(t *testing.T) {
	l := mustNew(t, Options{}, "P---X")
	l.HandleInput(InputState{Direction: components.Vector{X: 1}})
	for i := 0; i < 240 && !l.IsLevelComplete(); i++ {
		l.Update(frame)
	}
	if !l.IsLevelComplete() || l.Phase() != cfg.PhaseComplete {
		t.Fatalf("level not complete: phase=%v", l.Phase())
	}

	cam := l.Camera()
	l.HandleInput(InputState{Direction: components.Vector{X: -1}})
	for i := 0; i < 60; i++ {
		l.Update(frame)
	}
	if !l.IsLevelComplete() {
		t.Error("completion not sticky")
	}
	if l.Camera() != cam {
		t.Error("camera moved after the level finished")
	}
}

func TestHostileContactForcesRestart(t *testing.T) {
	l := mustNew(t, Options{}, "P0---X")
	prev := l.Health()
	for i := 0; i < 600 && !l.NeedsRestart(); i++ {
		l.Update(frame)
		if h := l.Health(); h > prev {
			t.Fatalf("health rose from %v to %v", prev, h)
		} else {
			prev = h
		}
	}
	if !l.NeedsRestart() || l.Phase() != cfg.PhaseRestarting {
		t.Fatalf("no restart: health=%v phase=%v", l.Health(), l.Phase())
	}
	if l.Health() != 0 {
		t.Errorf("health = %v, want 0", l.Health())
	}
	l.Update(frame)
	if !l.NeedsRestart() {
		t.Error("restart flag cleared")
	}
}

func TestHandleInputClamps(t *testing.T) {
	l := mustNew(t, Options{}, "P-X")
	l.HandleInput(InputState{Direction: components.Vector{X: 5, Y: -3}})
	entry, _ := components.Input.First(l.World())
	if d := components.Input.Get(entry).Direction; d.X != 1 || d.Y != -1 {
		t.Errorf("direction = %v, want clamped (1, -1)", d)
	}
}

func rank(s display.Sprite) int {
	if s.Layer == display.LayerHUD {
		return 9
	}
	switch {
	case strings.HasPrefix(s.Texture, "water"):
		return 0
	case s.Texture == "sandBed":
		return 1
	case strings.HasPrefix(s.Texture, "land"):
		return 2
	case s.Texture == "crossMark":
		return 3
	case s.Texture == "heart":
		return 4
	case s.Texture == "collect":
		return 5
	case s.Texture == "player":
		return 6
	case s.Texture == "ship":
		return 7
	case strings.HasPrefix(s.Texture, "enemy"):
		return 8
	}
	return -1
}

func TestDrawOrder(t *testing.T) {
	l := mustNew(t, Options{},
		"PHCX",
		".1S.",
		"0---",
	)
	var list display.List
	l.Draw(&list)

	seen := map[int]int{}
	last := 0
	for i, s := range list {
		r := rank(s)
		if r < 0 {
			t.Fatalf("sprite %d has unexpected texture %q", i, s.Texture)
		}
		if r < last {
			t.Fatalf("sprite %d (%q, rank %d) drawn after rank %d", i, s.Texture, r, last)
		}
		last = r
		seen[r]++
	}
	want := map[int]int{0: 4, 1: 8, 2: 8, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1, 8: 2, 9: 4}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("sprite counts by rank = %v, want %v", seen, want)
	}

	hud := list[len(list)-1]
	if hud.Kind != display.KindText || hud.Text != "x 0" {
		t.Errorf("last sprite = %+v, want score text", hud)
	}
}

func TestDrawIsReadOnly(t *testing.T) {
	l := mustNew(t, Options{}, "PHCX", ".1S.", "0---")
	var a, b display.List
	l.Draw(&a)
	l.Draw(&b)
	if !reflect.DeepEqual(a, b) {
		t.Error("second Draw differs from the first")
	}
}

func TestDrawCullsOffscreenTiles(t *testing.T) {
	rows := make([]string, 40)
	for i := range rows {
		rows[i] = strings.Repeat(".", 60)
	}
	rows[0] = "P-X" + strings.Repeat(".", 57)
	l := mustNew(t, Options{}, rows...)
	var list display.List
	l.Draw(&list)
	water := 0
	for _, s := range list {
		if strings.HasPrefix(s.Texture, "water") {
			water++
		}
	}
	if water == 0 || water >= 60*40 {
		t.Errorf("water sprites = %d, want culled subset", water)
	}
}

func TestCloseReleasesPhysics(t *testing.T) {
	space := physics.NewSpace(physics.SpaceConfig{Width: 48, Height: 16, CellSize: 16, MaxSubSteps: 8})
	l, err := New([]string{"P-X"}, Options{Engine: space, Variants: fixedVariants})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	entry, _ := components.Physics.First(l.World())
	ground := components.Physics.Get(entry).Ground
	if n := len(space.Fixtures(ground)); n != 4 {
		t.Fatalf("fixtures = %d, want 4", n)
	}
	l.Close()
	if space.Fixtures(ground) != nil {
		t.Error("fixtures survive Close")
	}
	l.Update(frame) // no-op after Close
}
