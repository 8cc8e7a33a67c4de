package main

import (
	"image"
	"log"

	"github.com/automoto/tidewalker/assets"
	"github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/fonts"
	"github.com/automoto/tidewalker/progress"
	"github.com/automoto/tidewalker/scenes"
	"github.com/automoto/tidewalker/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(store progress.Store) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlayScene(g, store, assets.MustLoadLevels())
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Tidewalker")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	store, err := progress.Open("tidewalker")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		store = progress.NewMemoryStore()
	}
	if saved, err := progress.LoadSettings(store); err == nil && saved != nil {
		sound.ApplySettings(saved)
	}

	if err := ebiten.RunGame(NewGame(store)); err != nil {
		log.Fatal(err)
	}
}
