package gamemath

// Spring is a damped spring pulling a point toward a target.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// Step advances position and velocity by dt seconds toward target on one axis.
//
//	stretch = pos - target
//	force   = -stiffness*stretch - damping*vel
//	vel    += force/mass * dt
//	pos    += vel * dt
func (s Spring) Step(pos, vel, target, dt float64) (float64, float64) {
	stretch := pos - target
	force := -s.Stiffness*stretch - s.Damping*vel
	vel += force / s.Mass * dt
	pos += vel * dt
	return pos, vel
}
