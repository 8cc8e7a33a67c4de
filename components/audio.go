package components

import (
	"github.com/yohamta/donburi"
)

// AudioData queues cue names raised during a frame (singleton component)
type AudioData struct {
	PendingCues []string
}

var Audio = donburi.NewComponentType[AudioData]()
