package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tints a sprite while it takes damage.
type FlashData struct {
	Remaining float64 // seconds
	R, G, B   float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// BobData floats a pickup up and down.
type BobData struct {
	Tween   *gween.Tween
	Offset  float64 // current vertical draw offset in pixels
	Rising  bool
	Height  float32
	Seconds float32
}

var Bob = donburi.NewComponentType[BobData]()
