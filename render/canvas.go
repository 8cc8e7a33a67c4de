// Package render draws a level's display list onto an ebiten image.
package render

import (
	"image"

	"github.com/automoto/tidewalker/assets"
	"github.com/automoto/tidewalker/display"
	"github.com/automoto/tidewalker/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is a display.Canvas backed by an ebiten screen.
type Canvas struct {
	Screen *ebiten.Image
	drawOp *ebiten.DrawImageOptions
	frames map[frameKey]*ebiten.Image
}

type frameKey struct {
	texture string
	frame   int
}

func NewCanvas() *Canvas {
	return &Canvas{
		drawOp: &ebiten.DrawImageOptions{},
		frames: make(map[frameKey]*ebiten.Image),
	}
}

// Draw renders one sprite. Screen must be set first.
func (c *Canvas) Draw(s display.Sprite) {
	switch s.Kind {
	case display.KindRect:
		if s.W <= 0 || s.H <= 0 {
			return
		}
		vector.DrawFilledRect(c.Screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), s.Tint, false)
	case display.KindText:
		c.drawText(s)
	default:
		c.drawTexture(s)
	}
}

func (c *Canvas) drawTexture(s display.Sprite) {
	img := c.frame(s.Texture, s.Frame)
	fw, fh := img.Bounds().Dx(), img.Bounds().Dy()
	if fw == 0 || fh == 0 {
		return
	}

	op := c.drawOp
	op.GeoM.Reset()
	op.ColorScale.Reset()

	// Scale about the centre so flips and rotation stay in the box.
	op.GeoM.Translate(-float64(fw)/2, -float64(fh)/2)
	sx, sy := s.W/float64(fw), s.H/float64(fh)
	if s.FlipX {
		sx = -sx
	}
	op.GeoM.Scale(sx, sy)
	if s.Rotation != 0 {
		op.GeoM.Rotate(s.Rotation)
	}
	op.GeoM.Translate(s.X+s.W/2, s.Y+s.H/2)

	if s.Tint.A > 0 {
		op.ColorScale.ScaleWithColor(s.Tint)
	}
	c.Screen.DrawImage(img, op)
}

// frame cuts square frames out of a sheet and caches them.
func (c *Canvas) frame(key string, frame int) *ebiten.Image {
	k := frameKey{key, frame}
	if img, ok := c.frames[k]; ok {
		return img
	}
	sheet := assets.GetTexture(key)
	b := sheet.Bounds()
	size := b.Dy()
	count := 1
	if size > 0 {
		count = max(1, b.Dx()/size)
	}
	img := sheet
	if count > 1 {
		f := ((frame % count) + count) % count
		img = sheet.SubImage(image.Rect(f*size, 0, (f+1)*size, size)).(*ebiten.Image)
	}
	c.frames[k] = img
	return img
}

func (c *Canvas) drawText(s display.Sprite) {
	face := fonts.Regular.Get()
	if s.Scale > 0 && s.Scale < 1 {
		face = fonts.Small.Get()
	}
	text.Draw(c.Screen, s.Text, face, int(s.X), int(s.Y), s.Tint)
}
