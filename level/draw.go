package level

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/display"
	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
)

// sandBedInset grows the sand bed past its land tile so shores get a rim.
const sandBedInset = 4

// viewport is the camera's view in world pixels.
type viewport struct {
	gamemath.Rect
	culled gamemath.Rect
}

func (l *Level) viewport() viewport {
	entry, _ := components.Camera.First(l.world)
	cam := components.Camera.Get(entry)
	r := gamemath.Rect{
		X: cam.Position.X - cam.HalfW,
		Y: cam.Position.Y - cam.HalfH,
		W: cam.HalfW * 2,
		H: cam.HalfH * 2,
	}
	return viewport{Rect: r, culled: r.Expand(cfg.UI.CullPadding)}
}

// Draw emits the frame back to front: sea, sand beds, land, exit marker,
// hearts, coins, player, vehicle, hostiles, then the HUD. It does not change
// any state.
func (l *Level) Draw(c display.Canvas) {
	levelEntry, ok := components.Level.First(l.world)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry)
	vp := l.viewport()

	l.drawTerrain(c, lvl.Grid, vp)

	r := cfg.Pickup.MarkerRadius
	drawWorld(c, vp, display.Sprite{
		Kind: display.KindTexture, Layer: display.LayerTerrain, Texture: "crossMark",
		X: lvl.Exit.X - r, Y: lvl.Exit.Y - r, W: r * 2, H: r * 2,
	})

	drawPickup := func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		sprite := components.Sprite.Get(e)
		bob := components.Bob.Get(e)
		drawWorld(c, vp, display.Sprite{
			Kind: display.KindTexture, Layer: display.LayerEntity, Texture: sprite.TextureKey,
			X: pos.X - sprite.W/2, Y: pos.Y - sprite.H/2 + bob.Offset, W: sprite.W, H: sprite.H,
		})
	}
	tags.Heart.Each(l.world, drawPickup)
	tags.Coin.Each(l.world, drawPickup)

	if e, ok := tags.Player.First(l.world); ok {
		pos := components.Position.Get(e)
		sprite := components.Sprite.Get(e)
		player := components.Player.Get(e)
		s := display.Sprite{
			Kind: display.KindTexture, Layer: display.LayerEntity, Texture: sprite.TextureKey,
			Frame: components.Animation.Get(e).Frame(),
			X:     pos.X - sprite.W/2, Y: pos.Y - sprite.H/2, W: sprite.W, H: sprite.H,
			FlipX: player.Facing < 0,
		}
		if flash := components.Flash.Get(e); flash.Remaining > 0 {
			s.Tint = tint(flash.R, flash.G, flash.B)
		}
		drawWorld(c, vp, s)
	}

	if e, ok := tags.Vehicle.First(l.world); ok {
		v := components.Vehicle.Get(e)
		sprite := components.Sprite.Get(e)
		drawWorld(c, vp, display.Sprite{
			Kind: display.KindTexture, Layer: display.LayerEntity, Texture: sprite.TextureKey,
			X: v.Position.X - sprite.W/2, Y: v.Position.Y - sprite.H/2, W: sprite.W, H: sprite.H,
			FlipX: v.Facing < 0,
		})
	}

	tags.Hostile.Each(l.world, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		sprite := components.Sprite.Get(e)
		hostile := components.Hostile.Get(e)
		drawWorld(c, vp, display.Sprite{
			Kind: display.KindTexture, Layer: display.LayerEntity, Texture: sprite.TextureKey,
			Frame: components.Animation.Get(e).Frame(),
			X:     pos.X - sprite.W/2, Y: pos.Y - sprite.H/2, W: sprite.W, H: sprite.H,
			FlipX: hostile.Dir < 0,
		})
	})

	l.drawHUD(c)
}

// drawTerrain walks only the tiles under the viewport, once per layer.
func (l *Level) drawTerrain(c display.Canvas, g *leveldata.Grid, vp viewport) {
	size := cfg.Tile.Size
	x0 := max(0, int(math.Floor(vp.X/size)))
	y0 := max(0, int(math.Floor(vp.Y/size)))
	x1 := min(g.Width()-1, int(math.Ceil(vp.Right()/size)))
	y1 := min(g.Height()-1, int(math.Ceil(vp.Bottom()/size)))

	each := func(want leveldata.TileType, fn func(x, y int, t leveldata.Tile)) {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if t := g.At(x, y); t.Type == want {
					fn(x, y, t)
				}
			}
		}
	}

	each(leveldata.Sea, func(x, y int, t leveldata.Tile) {
		drawWorld(c, vp, display.Sprite{
			Kind: display.KindTexture, Layer: display.LayerTerrain,
			Texture: fmt.Sprintf("water%d", t.Variant),
			X:       float64(x) * size, Y: float64(y) * size, W: size, H: size,
		})
	})
	each(leveldata.Land, func(x, y int, _ leveldata.Tile) {
		drawWorld(c, vp, display.Sprite{
			Kind: display.KindTexture, Layer: display.LayerTerrain, Texture: "sandBed",
			X: float64(x)*size - sandBedInset, Y: float64(y)*size - sandBedInset,
			W: size + 2*sandBedInset, H: size + 2*sandBedInset,
			Tint: cfg.UI.SandBedTint,
		})
	})
	each(leveldata.Land, func(x, y int, t leveldata.Tile) {
		drawWorld(c, vp, display.Sprite{
			Kind: display.KindTexture, Layer: display.LayerTerrain,
			Texture: fmt.Sprintf("land%d", t.Variant),
			X:       float64(x) * size, Y: float64(y) * size, W: size, H: size,
		})
	})
}

func (l *Level) drawHUD(c display.Canvas) {
	ui := cfg.UI
	if e, ok := tags.Player.First(l.world); ok {
		hp := components.Health.Get(e)
		ratio := 0.0
		if hp.Max > 0 {
			ratio = gamemath.Clamp(hp.Current/hp.Max, 0, 1)
		}
		c.Draw(display.Sprite{
			Kind: display.KindRect, Layer: display.LayerHUD,
			X: ui.HealthBarX, Y: ui.HealthBarY, W: ui.HealthBarWidth, H: ui.HealthBarHeight,
			Tint: ui.HealthBarBg,
		})
		c.Draw(display.Sprite{
			Kind: display.KindRect, Layer: display.LayerHUD,
			X: ui.HealthBarX, Y: ui.HealthBarY, W: ui.HealthBarWidth * ratio, H: ui.HealthBarHeight,
			Tint: ui.HealthBarFg,
		})
	}

	c.Draw(display.Sprite{
		Kind: display.KindTexture, Layer: display.LayerHUD, Texture: "collect",
		X: ui.ScoreIconX, Y: ui.ScoreIconY - ui.ScoreIconSize/2, W: ui.ScoreIconSize, H: ui.ScoreIconSize,
	})
	c.Draw(display.Sprite{
		Kind: display.KindText, Layer: display.LayerHUD,
		Text: fmt.Sprintf("x %d", l.Score()),
		X:    ui.ScoreTextX, Y: ui.ScoreTextY, Scale: ui.ScoreTextScale,
		Tint: cfg.White,
	})
}

// drawWorld culls a world-space sprite and moves it into screen space.
func drawWorld(c display.Canvas, vp viewport, s display.Sprite) {
	if !vp.culled.Intersects(gamemath.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}) {
		return
	}
	s.X -= vp.X
	s.Y -= vp.Y
	c.Draw(s)
}

func tint(r, g, b float32) color.RGBA {
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}
