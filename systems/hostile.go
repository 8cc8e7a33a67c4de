package systems

import (
	"math"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// NewBehavior returns the movement strategy for a behavior kind.
func NewBehavior(kind cfg.BehaviorID) components.Behavior {
	switch kind {
	case cfg.BehaviorSeaPatrol:
		return seaPatrol{}
	default:
		return landPatrol{}
	}
}

// landPatrol walks back and forth along X around its spawn, turning at the
// patrol range or when a boundary stops it.
type landPatrol struct{}

func (landPatrol) Advance(dt float64, ctx components.BehaviorContext) dmath.Vec2 {
	h := ctx.Hostile
	if v, ok := chase(ctx); ok {
		return v
	}

	t := h.TypeConfig
	offset := ctx.Self.X - h.Home.X
	switch {
	case offset >= t.PatrolRange:
		h.Dir = -1
	case offset <= -t.PatrolRange:
		h.Dir = 1
	case stalled(h, ctx.Self, dt):
		h.Dir = -h.Dir
	}

	// drift back to the patrol line after a chase
	vy := gamemath.ClampSpeed((h.Home.Y-ctx.Self.Y)*4, t.PatrolSpeed)
	return dmath.Vec2{X: h.Dir * t.PatrolSpeed, Y: vy}
}

// seaPatrol circles its spawn point.
type seaPatrol struct{}

func (seaPatrol) Advance(dt float64, ctx components.BehaviorContext) dmath.Vec2 {
	h := ctx.Hostile
	if v, ok := chase(ctx); ok {
		return v
	}

	t := h.TypeConfig
	if t.OrbitPeriod > 0 {
		h.Angle = math.Mod(h.Angle+2*math.Pi*dt/t.OrbitPeriod, 2*math.Pi)
	}
	goalX := h.Home.X + math.Cos(h.Angle)*t.PatrolRange
	goalY := h.Home.Y + math.Sin(h.Angle)*t.PatrolRange
	return steer(ctx.Self, goalX, goalY, t.PatrolSpeed, dt)
}

// chase steers straight at the target while it is in range. Chasing starts
// inside ChaseRange and stops beyond ChaseRange * HysteresisMultiplier.
func chase(ctx components.BehaviorContext) (dmath.Vec2, bool) {
	h := ctx.Hostile
	t := h.TypeConfig
	dist := gamemath.Length(ctx.Target.X-ctx.Self.X, ctx.Target.Y-ctx.Self.Y)
	if h.Chasing {
		h.Chasing = dist <= t.ChaseRange*cfg.Hostile.HysteresisMultiplier
	} else {
		h.Chasing = dist < t.ChaseRange
	}
	if !h.Chasing {
		return dmath.Vec2{}, false
	}
	nx, ny := gamemath.Normalize(ctx.Target.X-ctx.Self.X, ctx.Target.Y-ctx.Self.Y)
	if nx != 0 {
		h.Dir = gamemath.Sign(nx)
	}
	return dmath.Vec2{X: nx * t.ChaseSpeed, Y: ny * t.ChaseSpeed}, true
}

// steer heads for a goal without overshooting it in one frame.
func steer(self dmath.Vec2, goalX, goalY, speed, dt float64) dmath.Vec2 {
	dx, dy := goalX-self.X, goalY-self.Y
	dist := gamemath.Length(dx, dy)
	if dist == 0 {
		return dmath.Vec2{}
	}
	if dt > 0 {
		speed = math.Min(speed, dist/dt)
	}
	return dmath.Vec2{X: dx / dist * speed, Y: dy / dist * speed}
}

// stalled reports whether the last requested horizontal move produced almost
// no motion.
func stalled(h *components.HostileData, self dmath.Vec2, dt float64) bool {
	if h.Issued.X == 0 || dt <= 0 {
		return false
	}
	return math.Abs(self.X-h.LastSelf.X) < math.Abs(h.Issued.X)*dt*0.1
}

// UpdateHostiles advances every hostile toward or around the player and
// applies contact damage to the player, floored at zero.
func UpdateHostiles(w donburi.World) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	p := factory.MustPhysics(w)
	dt := frameDelta(w)
	target := components.Position.Get(playerEntry).Vec2
	health := components.Health.Get(playerEntry)
	sensor := PlayerSensor(playerEntry)
	hurt := false

	tags.Hostile.Each(w, func(e *donburi.Entry) {
		hostile := components.Hostile.Get(e)
		body := components.Body.Get(e)
		self := components.Position.Get(e).Vec2

		v := hostile.Behavior.Advance(dt, components.BehaviorContext{
			Self:    self,
			Target:  target,
			Hostile: hostile,
		})
		hostile.LastSelf = self
		hostile.Issued = v
		p.Engine.SetVelocity(body.ID, factory.ToUnits(p, v))

		state := components.State.Get(e)
		state.StateTimer += dt
		if hostile.Chasing {
			state.Set(cfg.StateChase)
		} else {
			state.Set(cfg.StatePatrol)
		}
		anim := components.Animation.Get(e)
		anim.SetAnimation(state.CurrentState)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}

		bounds := gamemath.RectAround(self.X, self.Y, body.W, body.H)
		if bounds.Intersects(sensor) {
			health.Current = math.Max(0, health.Current-hostile.TypeConfig.DamagePerSecond*dt)
			hurt = true
		}
	})

	if hurt {
		flash := components.Flash.Get(playerEntry)
		flash.Remaining = 0.1
		flash.R, flash.G, flash.B = 1, 0.5, 0.5
	}
}
