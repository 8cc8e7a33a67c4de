package components

import "github.com/yohamta/donburi"

// InputData holds the latest direction handed to the level (singleton).
type InputData struct {
	Direction Vector
}

var Input = donburi.NewComponentType[InputData]()
