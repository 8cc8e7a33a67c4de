package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tidewalker/assets"
	"github.com/automoto/tidewalker/campaign"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/fonts"
	"github.com/automoto/tidewalker/input"
	"github.com/automoto/tidewalker/level"
	"github.com/automoto/tidewalker/progress"
	"github.com/automoto/tidewalker/render"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneChanger swaps the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// bannerFrames is how long a level banner stays on screen.
const bannerFrames = 120

// PlayScene runs the level campaign.
type PlayScene struct {
	sceneChanger SceneChanger
	store        progress.Store
	sources      []leveldata.Source
	campaign     *campaign.Campaign
	canvas       *render.Canvas
	paused       bool
	banner       string
	bannerTimer  int
	once         sync.Once
}

// NewPlayScene creates a scene that plays sources in order.
func NewPlayScene(sc SceneChanger, store progress.Store, sources []leveldata.Source) *PlayScene {
	return &PlayScene{sceneChanger: sc, store: store, sources: sources}
}

func (ps *PlayScene) configure() {
	// Preload assets to avoid a hitch on first use
	sound.PreloadAllSFX()
	assets.PreloadTextures()

	c, err := campaign.New(ps.sources, campaign.Options{
		Level: level.Options{
			ViewportW: float64(cfg.C.Width),
			ViewportH: float64(cfg.C.Height),
			Cues:      sound.Cues{},
		},
		Store: ps.store,
	})
	if err != nil {
		log.Fatalf("Failed to start campaign: %v", err)
	}
	ps.campaign = c
	ps.canvas = render.NewCanvas()
	ps.showBanner(ps.levelTitle())

	sound.Cues{}.PlayCue(cfg.CueMusic)
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	sound.Update()

	if input.JustPressed(input.ActionMute) {
		sound.ToggleMute()
		if err := progress.SaveSettings(ps.store, sound.CurrentSettings()); err != nil {
			log.Printf("Warning: Could not save settings: %v", err)
		}
	}
	if input.JustPressed(input.ActionPause) {
		ps.paused = !ps.paused
	}
	if ps.paused {
		return
	}
	if ps.bannerTimer > 0 {
		ps.bannerTimer--
	}

	ps.campaign.HandleInput(input.Poll())
	ev, err := ps.campaign.Update(1.0 / float64(cfg.C.TPS))
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	switch ev {
	case campaign.EventRestarted:
		ps.showBanner("Washed ashore! " + ps.levelTitle())
	case campaign.EventAdvanced:
		ps.showBanner(ps.levelTitle())
	case campaign.EventFinished:
		sound.FadeOutMusic()
		ps.campaign.Close()
		ps.sceneChanger.ChangeScene(NewCompleteScene(ps.sceneChanger, ps.store, ps.sources))
	}
}

func (ps *PlayScene) showBanner(s string) {
	ps.banner = s
	ps.bannerTimer = bannerFrames
}

func (ps *PlayScene) levelTitle() string {
	return fmt.Sprintf("Island %d/%d: %s", ps.campaign.Index()+1, ps.campaign.Len(), ps.campaign.Current().Name())
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.campaign == nil || ps.campaign.Finished() {
		return
	}
	ps.canvas.Screen = screen
	ps.campaign.Current().Draw(ps.canvas)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	if ps.bannerTimer > 0 {
		drawCentred(screen, ps.banner, fonts.Regular, height/4, cfg.White)
	}
	if ps.paused {
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)
		drawCentred(screen, "PAUSED", fonts.Title, height/2, cfg.White)
	}
}

// drawCentred draws a line of text horizontally centred at baseline y.
func drawCentred(screen *ebiten.Image, s string, name fonts.FontName, y int, c color.Color) {
	face := name.Get()
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, c)
}
