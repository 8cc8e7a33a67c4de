package components

import "github.com/yohamta/donburi"

// FrameData carries the elapsed time of the frame being simulated (singleton).
type FrameData struct {
	Delta float64 // seconds
	Count int
}

var Frame = donburi.NewComponentType[FrameData]()
