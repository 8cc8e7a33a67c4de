package systems

import (
	"math"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerSensor is the health-sensor rectangle used for pickups, hazards, the
// vehicle and the exit.
func PlayerSensor(playerEntry *donburi.Entry) gamemath.Rect {
	pos := components.Position.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	return gamemath.RectAround(pos.X, pos.Y, player.SensorW, player.SensorH)
}

// UpdatePlayer turns input into facing, animation and body velocity, then
// resolves boarding and leaving the vehicle.
func UpdatePlayer(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	state := components.State.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	p := factory.MustPhysics(w)
	dt := frameDelta(w)

	dir := inputDirection(w)
	player.Direction = dir
	if dir.X != 0 {
		player.Facing = gamemath.Sign(dir.X)
	}

	moving := dir.X != 0 || dir.Y != 0
	state.StateTimer += dt
	switch {
	case player.InLiquid:
		state.Set(cfg.Ride)
	case moving:
		state.Set(cfg.Walk)
	default:
		state.Set(cfg.Idle)
	}
	anim.SetAnimation(state.CurrentState)
	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update(dt)
	}

	speed := cfg.Player.LandSpeed
	if player.InLiquid {
		speed = cfg.Player.SeaSpeed
	}
	nx, ny := gamemath.Normalize(dir.X, dir.Y)
	p.Engine.SetVelocity(body.ID, factory.ToUnits(p, dmath.Vec2{X: nx * speed, Y: ny * speed}))

	vehicleEntry, ok := tags.Vehicle.First(w)
	if !ok {
		return
	}
	if player.InLiquid {
		tryDismount(w, playerEntry, vehicleEntry, dir)
	} else {
		tryMount(w, playerEntry, vehicleEntry)
	}
}

func tryMount(w donburi.World, playerEntry, vehicleEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	vehicle := components.Vehicle.Get(vehicleEntry)
	overlap := PlayerSensor(playerEntry).Intersects(
		gamemath.RectAround(vehicle.Position.X, vehicle.Position.Y, vehicle.W, vehicle.H))

	if !player.MountArmed {
		// re-arm only once the sensor has left the vehicle
		player.MountArmed = !overlap
		return
	}
	if !overlap {
		return
	}

	teleportPlayer(w, playerEntry, vehicle.Position)
	player.InLiquid = true
	vehicle.Ridden = true
	vehicle.Facing = player.Facing
	QueueCue(w, cfg.CueBoard)
}

// tryDismount steps the rider onto the land tile it is pushing toward when
// the body is within reach of that shore.
func tryDismount(w donburi.World, playerEntry, vehicleEntry *donburi.Entry, dir components.Vector) {
	level := getLevel(w)
	if level == nil || (dir.X == 0 && dir.Y == 0) {
		return
	}
	pos := components.Position.Get(playerEntry).Vec2
	body := components.Body.Get(playerEntry)
	size := cfg.Tile.Size
	tx := int(math.Floor(pos.X / size))
	ty := int(math.Floor(pos.Y / size))

	type probe struct {
		dx, dy int
		gap    float64
	}
	var probes []probe
	if dir.X > 0 {
		probes = append(probes, probe{1, 0, float64(tx+1)*size - (pos.X + body.W/2)})
	} else if dir.X < 0 {
		probes = append(probes, probe{-1, 0, (pos.X - body.W/2) - float64(tx)*size})
	}
	if dir.Y > 0 {
		probes = append(probes, probe{0, 1, float64(ty+1)*size - (pos.Y + body.H/2)})
	} else if dir.Y < 0 {
		probes = append(probes, probe{0, -1, (pos.Y - body.H/2) - float64(ty)*size})
	}

	for _, pr := range probes {
		nx, ny := tx+pr.dx, ty+pr.dy
		if !level.Grid.InBounds(nx, ny) || level.Grid.At(nx, ny).Type != leveldata.Land {
			continue
		}
		if pr.gap > cfg.Player.DismountReach {
			continue
		}
		player := components.Player.Get(playerEntry)
		vehicle := components.Vehicle.Get(vehicleEntry)
		vehicle.Position = pos
		vehicle.Ridden = false
		player.InLiquid = false
		player.MountArmed = false
		teleportPlayer(w, playerEntry, factory.TileCentre(leveldata.Point{X: nx, Y: ny}))
		QueueCue(w, cfg.CueBoard)
		return
	}
}

func teleportPlayer(w donburi.World, playerEntry *donburi.Entry, centre dmath.Vec2) {
	p := factory.MustPhysics(w)
	body := components.Body.Get(playerEntry)
	p.Engine.SetPosition(body.ID, factory.ToUnits(p, centre))
	p.Engine.SetVelocity(body.ID, dmath.Vec2{})
	components.Position.Get(playerEntry).Vec2 = centre
}

// UpdateFlash fades damage tints.
func UpdateFlash(w donburi.World) {
	dt := frameDelta(w)
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining <= 0 {
			return
		}
		flash.Remaining -= dt
		if flash.Remaining <= 0 {
			flash.Remaining = 0
			flash.R, flash.G, flash.B = 1, 1, 1
		}
	})
}
