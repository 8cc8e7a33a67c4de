package systems

import (
	"github.com/automoto/tidewalker/components"
	"github.com/yohamta/donburi"
)

// QueueCue records a cue to be played once the frame is done.
func QueueCue(w donburi.World, name string) {
	entry, ok := components.Audio.First(w)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingCues = append(audio.PendingCues, name)
}

// DrainCues returns queued cues in order and clears the queue.
func DrainCues(w donburi.World) []string {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	if len(audio.PendingCues) == 0 {
		return nil
	}
	cues := make([]string, len(audio.PendingCues))
	copy(cues, audio.PendingCues)
	audio.PendingCues = audio.PendingCues[:0]
	return cues
}
