package config

// StateID identifies an animation or AI state.
type StateID int

const (
	StateNone StateID = iota

	// Player / vehicle animation states
	Idle
	Walk
	Ride

	// Hostile AI states
	StatePatrol
	StateChase
)

var stateNames = map[StateID]string{
	StateNone:   "none",
	Idle:        "idle",
	Walk:        "walk",
	Ride:        "ride",
	StatePatrol: "patrol",
	StateChase:  "chase",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// PhaseID is the level outcome phase.
type PhaseID int

const (
	PhasePlaying PhaseID = iota
	PhaseComplete
	PhaseRestarting
)

func (p PhaseID) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseComplete:
		return "complete"
	case PhaseRestarting:
		return "restarting"
	}
	return "unknown"
}

// Terminal reports whether the phase absorbs all further gameplay.
func (p PhaseID) Terminal() bool {
	return p != PhasePlaying
}

// BehaviorID selects a hostile movement strategy.
type BehaviorID int

const (
	BehaviorLandPatrol BehaviorID = iota
	BehaviorSeaPatrol
)
