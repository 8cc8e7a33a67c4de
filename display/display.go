// Package display is the render-agnostic draw list a level emits each frame.
package display

import "image/color"

// Kind selects how a sprite is drawn.
type Kind int

const (
	KindTexture Kind = iota // Texture drawn into the W x H box
	KindRect                // solid Tint fill
	KindText                // Text at X, Y scaled by Scale
)

// Layer groups sprites for backends that cannot draw everything.
type Layer int

const (
	LayerTerrain Layer = iota
	LayerEntity
	LayerHUD
)

// Sprite is one draw command in screen pixels. X, Y is the top-left corner.
type Sprite struct {
	Kind     Kind
	Layer    Layer
	Texture  string
	Frame    int
	X, Y     float64
	W, H     float64
	Rotation float64
	FlipX    bool
	Tint     color.RGBA // zero value means untinted
	Text     string
	Scale    float64
}

// Canvas consumes draw commands in order.
type Canvas interface {
	Draw(s Sprite)
}

// List is a Canvas that records sprites.
type List []Sprite

func (l *List) Draw(s Sprite) {
	*l = append(*l, s)
}

// Textures returns the texture keys of every textured sprite, in order.
func (l List) Textures() []string {
	var out []string
	for _, s := range l {
		if s.Kind == KindTexture {
			out = append(out, s.Texture)
		}
	}
	return out
}
