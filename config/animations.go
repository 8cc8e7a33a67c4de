package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // seconds per frame
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle: {First: 0, Last: 0, Step: 1, Speed: 0},
		Walk: {First: 0, Last: 3, Step: 1, Speed: 0.12},
		Ride: {First: 0, Last: 1, Step: 1, Speed: 0.4},
	},
	"hostile": {
		StatePatrol: {First: 0, Last: 1, Step: 1, Speed: 0.3},
		StateChase:  {First: 0, Last: 1, Step: 1, Speed: 0.15},
	},
}
