// Package physics is the collision world the level simulates against: static
// edge fixtures on a ground body and axis-aligned dynamic bodies.
package physics

import (
	"errors"

	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrDegenerateEdge = errors.New("degenerate edge")
	ErrDiagonalEdge   = errors.New("diagonal edge")
	ErrUnknownBody    = errors.New("unknown body")
)

// BodyID identifies a body inside one Engine.
type BodyID int

// Edge is a line segment in physics units.
type Edge struct {
	A, B dmath.Vec2
}

// Horizontal reports whether both ends share a Y coordinate.
func (e Edge) Horizontal() bool {
	return e.A.Y == e.B.Y
}

// BodyDef describes a dynamic, axis-aligned rectangular body.
type BodyDef struct {
	Position dmath.Vec2 // centre
	W, H     float64
	Tags     []string
}

// Transform is the queried state of a body.
type Transform struct {
	Position dmath.Vec2 // centre
	Velocity dmath.Vec2
}

// Engine is the capability the level needs from a physics backend.
type Engine interface {
	CreateStaticBody() BodyID
	AddEdgeFixture(body BodyID, e Edge) error
	CreateDynamicBody(def BodyDef) BodyID
	SetVelocity(body BodyID, v dmath.Vec2)
	SetPosition(body BodyID, centre dmath.Vec2)
	Step(dt float64)
	Transform(body BodyID) Transform
	Fixtures(body BodyID) []Edge
	Destroy()
}

func validateEdge(e Edge) error {
	if e.A == e.B {
		return ErrDegenerateEdge
	}
	if e.A.X != e.B.X && e.A.Y != e.B.Y {
		return ErrDiagonalEdge
	}
	return nil
}
