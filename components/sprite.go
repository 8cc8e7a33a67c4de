package components

import "github.com/yohamta/donburi"

// SpriteData names the texture an entity is drawn with. The content
// provider resolves the key.
type SpriteData struct {
	TextureKey string
	W, H       float64 // draw size in pixels
}

var Sprite = donburi.NewComponentType[SpriteData]()
