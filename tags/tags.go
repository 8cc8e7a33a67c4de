package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Hostile = donburi.NewTag().SetName("Hostile")
	Heart   = donburi.NewTag().SetName("Heart")
	Coin    = donburi.NewTag().SetName("Coin")
	Vehicle = donburi.NewTag().SetName("Vehicle")
	Ground  = donburi.NewTag().SetName("Ground")
)

// Resolv tags for dynamic bodies
const (
	ResolvPlayer  = "Player"
	ResolvHostile = "Hostile"
)
