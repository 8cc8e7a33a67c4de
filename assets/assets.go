// Package assets is the ebiten content provider: textures by key, synthesised
// audio by cue name and the built-in levels.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/automoto/tidewalker/assets/levels"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

// Blank is drawn for unknown texture keys.
const Blank = "blank"

// TextureLoader generates and caches textures. Sheets are laid out as square
// frames side by side.
type TextureLoader struct {
	cache map[string]*ebiten.Image
}

func NewTextureLoader() *TextureLoader {
	return &TextureLoader{cache: make(map[string]*ebiten.Image)}
}

var textureLoader = NewTextureLoader()

// GetTexture returns the texture for key, or the blank texture.
func GetTexture(key string) *ebiten.Image {
	return textureLoader.Get(key)
}

func (l *TextureLoader) Get(key string) *ebiten.Image {
	if img, ok := l.cache[key]; ok {
		return img
	}
	gen, ok := generators[key]
	if !ok {
		gen = generators[Blank]
	}
	img := ebiten.NewImageFromImage(gen())
	l.cache[key] = img
	return img
}

// Preload builds every known texture up front.
func (l *TextureLoader) Preload() {
	for key := range generators {
		l.Get(key)
	}
}

// PreloadTextures fills the shared cache.
func PreloadTextures() {
	textureLoader.Preload()
}

// MustLoadLevels returns the embedded level sequence.
func MustLoadLevels() []leveldata.Source {
	return levels.MustLoad()
}

var generators = map[string]func() image.Image{
	Blank:       func() image.Image { return solid(8, cfg.Magenta) },
	"sandBed":   func() image.Image { return speckled(40, color.RGBA{230, 205, 150, 255}, 3) },
	"heart":     heart,
	"collect":   coin,
	"crossMark": crossMark,
	"ship":      ship,
	"player":    func() image.Image { return creature(20, 4, color.RGBA{60, 120, 220, 255}) },
	"enemy0":    func() image.Image { return creature(22, 2, color.RGBA{220, 90, 50, 255}) },
	"enemy1":    func() image.Image { return creature(24, 2, color.RGBA{110, 120, 140, 255}) },
}

func init() {
	land := []color.RGBA{
		{120, 180, 80, 255}, {110, 170, 75, 255}, {130, 185, 90, 255}, {115, 160, 70, 255},
	}
	for i, c := range land {
		seed := int64(i + 1)
		generators[fmt.Sprintf("land%d", i)] = func() image.Image { return speckled(32, c, seed) }
	}
	sea := []color.RGBA{{40, 110, 190, 255}, {45, 120, 200, 255}}
	for i, c := range sea {
		seed := int64(10 + i)
		generators[fmt.Sprintf("water%d", i)] = func() image.Image { return waves(32, c, seed) }
	}
}

func solid(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func shade(c color.RGBA, d int) color.RGBA {
	clamp := func(v int) uint8 { return uint8(max(0, min(255, v))) }
	return color.RGBA{clamp(int(c.R) + d), clamp(int(c.G) + d), clamp(int(c.B) + d), c.A}
}

func speckled(size int, c color.RGBA, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := solid(size, c)
	for i := 0; i < size*size/12; i++ {
		img.Set(rng.Intn(size), rng.Intn(size), shade(c, rng.Intn(40)-20))
	}
	return img
}

func waves(size int, c color.RGBA, seed int64) image.Image {
	img := speckled(size, c, seed)
	crest := shade(c, 40)
	for row := 6; row < size; row += 10 {
		for x := 0; x < size; x++ {
			if (x/4)%2 == 0 {
				img.Set(x, row+(x%4)/2, crest)
			}
		}
	}
	return img
}

func disc(img *image.RGBA, cx, cy, r float64, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}

func heart() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{220, 40, 60, 255}
	disc(img, 6, 7, 5, red)
	disc(img, 14, 7, 5, red)
	for y := 8; y < 18; y++ {
		inset := y - 8
		for x := 1 + inset; x < 19-inset; x++ {
			img.Set(x, y, red)
		}
	}
	return img
}

func coin() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	disc(img, 8, 8, 7.5, color.RGBA{200, 150, 20, 255})
	disc(img, 8, 8, 5.5, cfg.Yellow)
	return img
}

func crossMark() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 24, 24))
	mark := color.RGBA{190, 30, 30, 255}
	for i := 2; i < 22; i++ {
		for w := -1; w <= 1; w++ {
			img.Set(i+w, i, mark)
			img.Set(23-i+w, i, mark)
		}
	}
	return img
}

func ship() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 28, 28))
	hull := color.RGBA{120, 70, 30, 255}
	for y := 16; y < 24; y++ {
		inset := y - 16
		for x := inset / 2; x < 28-inset; x++ {
			img.Set(x, y, hull)
		}
	}
	for y := 3; y < 16; y++ {
		img.Set(13, y, cfg.DarkGray)
		for x := 14; x < 14+(y-2); x++ {
			img.Set(x, y, cfg.White)
		}
	}
	return img
}

// creature draws frames of a round body whose eye bobs frame to frame.
func creature(size, frames int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size*frames, size))
	half := float64(size) / 2
	for f := 0; f < frames; f++ {
		frame := img.SubImage(image.Rect(f*size, 0, (f+1)*size, size)).(*image.RGBA)
		ox := float64(f * size)
		bob := float64(f % 2)
		disc(frame, ox+half, half+bob, half-1, c)
		disc(frame, ox+half*1.4, half*0.7+bob, 2, cfg.White)
		disc(frame, ox+half*1.5, half*0.7+bob, 1, color.Black)
	}
	return img
}
