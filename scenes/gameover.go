package scenes

import (
	"fmt"
	"image/color"
	"os"
	"sync"

	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/fonts"
	"github.com/automoto/tidewalker/input"
	"github.com/automoto/tidewalker/progress"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

// CompleteScene lists best scores once every level is done.
type CompleteScene struct {
	sceneChanger SceneChanger
	store        progress.Store
	sources      []leveldata.Source
	lines        []string
	once         sync.Once
}

// NewCompleteScene creates the end-of-campaign screen
func NewCompleteScene(sc SceneChanger, store progress.Store, sources []leveldata.Source) *CompleteScene {
	return &CompleteScene{sceneChanger: sc, store: store, sources: sources}
}

func (cs *CompleteScene) configure() {
	saved, _ := progress.LoadProgress(cs.store)
	total := 0
	for _, src := range cs.sources {
		best := saved.BestScores[src.Name]
		total += best
		cs.lines = append(cs.lines, fmt.Sprintf("%-12s %3d", src.Name, best))
	}
	cs.lines = append(cs.lines, fmt.Sprintf("%-12s %3d", "total", total))
}

func (cs *CompleteScene) Update() {
	cs.once.Do(cs.configure)
	sound.Update()

	if input.JustPressed(input.ActionQuit) {
		os.Exit(0)
	}
	if input.JustPressed(input.ActionConfirm) {
		cs.sceneChanger.ChangeScene(NewPlayScene(cs.sceneChanger, cs.store, cs.sources))
	}
}

func (cs *CompleteScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	drawCentred(screen, "ALL ISLANDS CHARTED", fonts.Title, 60, cfg.Yellow)
	y := 110
	for _, line := range cs.lines {
		drawCentred(screen, line, fonts.Regular, y, cfg.White)
		y += 22
	}
	drawCentred(screen, "Enter to sail again, Esc to quit", fonts.Small, screen.Bounds().Dy()-30, cfg.Gainsboro)
}
