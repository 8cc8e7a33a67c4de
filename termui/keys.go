package termui

import (
	"time"

	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/level"
	"github.com/gdamore/tcell/v2"
)

// HoldTime is how long a key press keeps steering. Terminals report presses
// and auto-repeat but no releases, so a held key shows up as a stream of
// presses that keeps refreshing this window.
const HoldTime = 150 * time.Millisecond

// Keys turns terminal key presses into a held direction.
type Keys struct {
	left, right, up, down time.Time
}

// Press records a key event at now. It reports whether the key steers.
func (k *Keys) Press(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		k.left = now
	case tcell.KeyRight:
		k.right = now
	case tcell.KeyUp:
		k.up = now
	case tcell.KeyDown:
		k.down = now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			k.left = now
		case 'd', 'l':
			k.right = now
		case 'w', 'k':
			k.up = now
		case 's', 'j':
			k.down = now
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Input returns the direction held at now.
func (k *Keys) Input(now time.Time) level.InputState {
	held := func(t time.Time) float64 {
		if !t.IsZero() && now.Sub(t) < HoldTime {
			return 1
		}
		return 0
	}
	return level.InputState{Direction: components.Vector{
		X: held(k.right) - held(k.left),
		Y: held(k.down) - held(k.up),
	}}
}
