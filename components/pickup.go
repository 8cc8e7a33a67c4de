package components

import "github.com/yohamta/donburi"

type PickupKind int

const (
	PickupHeart PickupKind = iota
	PickupCoin
)

type PickupData struct {
	Kind   PickupKind
	Radius float64
}

var Pickup = donburi.NewComponentType[PickupData]()
