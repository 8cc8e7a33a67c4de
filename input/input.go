// Package input polls keyboard and gamepads and turns them into level input.
package input

import (
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/level"
	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a discrete, edge-triggered command outside of movement.
type Action int

const (
	ActionConfirm Action = iota
	ActionPause
	ActionMute
	ActionQuit
)

// Binding maps an action to keys and standard gamepad buttons
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var (
	MoveLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	MoveRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	MoveUp    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	MoveDown  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}

	Bindings = map[Action]Binding{
		ActionConfirm: {
			Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionPause: {
			Keys:                   []ebiten.Key{ebiten.KeyP},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
		ActionMute: {
			Keys: []ebiten.Key{ebiten.KeyM},
		},
		ActionQuit: {
			Keys: []ebiten.Key{ebiten.KeyEscape},
		},
	}

	// AnalogDeadzone is the stick magnitude below which an axis reads as zero
	AnalogDeadzone = 0.25
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll reads the movement direction. Keys give full deflection; the left
// stick keeps its analog magnitude outside the deadzone.
func Poll() level.InputState {
	var dir components.Vector
	if anyPressed(MoveLeft) {
		dir.X--
	}
	if anyPressed(MoveRight) {
		dir.X++
	}
	if anyPressed(MoveUp) {
		dir.Y--
	}
	if anyPressed(MoveDown) {
		dir.Y++
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		dir.X += deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal))
		dir.Y += deadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical))
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftLeft) {
			dir.X--
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftRight) {
			dir.X++
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftTop) {
			dir.Y--
		}
		if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButtonLeftBottom) {
			dir.Y++
		}
	}

	dir.X = gamemath.Clamp(dir.X, -1, 1)
	dir.Y = gamemath.Clamp(dir.Y, -1, 1)
	return level.InputState{Direction: dir}
}

// JustPressed reports whether an action's key or button went down this frame.
func JustPressed(a Action) bool {
	binding, ok := Bindings[a]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func deadzone(v float64) float64 {
	if v > -AnalogDeadzone && v < AnalogDeadzone {
		return 0
	}
	return v
}
