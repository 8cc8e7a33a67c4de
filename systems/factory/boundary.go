package factory

import (
	"fmt"

	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/physics"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Segment is a boundary edge in tile coordinates.
type Segment struct {
	X0, Y0, X1, Y1 int
}

// BoundarySegments lists one edge per pair of same-axis neighbours whose
// terrain differs, in row-major order, followed by the four perimeter edges.
// Nothing is merged.
func BoundarySegments(g *leveldata.Grid) []Segment {
	w, h := g.Width(), g.Height()
	var segs []Segment
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := g.At(x, y).Type
			if y > 0 && t != g.At(x, y-1).Type {
				segs = append(segs, Segment{x, y, x + 1, y})
			}
			if x > 0 && t != g.At(x-1, y).Type {
				segs = append(segs, Segment{x, y, x, y + 1})
			}
		}
	}
	return append(segs,
		Segment{0, 0, w, 0},
		Segment{w, 0, w, h},
		Segment{w, h, 0, h},
		Segment{0, h, 0, 0},
	)
}

// CreateBoundaries attaches every boundary segment, scaled by unit (physics
// units per tile), to one static ground body and records it in the world.
func CreateBoundaries(w donburi.World, engine physics.Engine, g *leveldata.Grid, unit float64) ([]physics.Edge, error) {
	ground := engine.CreateStaticBody()
	segs := BoundarySegments(g)
	edges := make([]physics.Edge, 0, len(segs))
	for _, s := range segs {
		e := physics.Edge{
			A: math.Vec2{X: float64(s.X0) * unit, Y: float64(s.Y0) * unit},
			B: math.Vec2{X: float64(s.X1) * unit, Y: float64(s.Y1) * unit},
		}
		if err := engine.AddEdgeFixture(ground, e); err != nil {
			return nil, fmt.Errorf("boundary (%d,%d)-(%d,%d): %w", s.X0, s.Y0, s.X1, s.Y1, err)
		}
		edges = append(edges, e)
	}

	entry := archetypes.Ground.Spawn(w)
	components.Physics.SetValue(entry, components.PhysicsData{
		Engine: engine,
		Ground: ground,
		Edges:  edges,
		Scale:  cfg.Tile.Size / unit,
	})
	return edges, nil
}

// MustPhysics returns the world's physics singleton. Bodies cannot be
// created before CreateBoundaries has run.
func MustPhysics(w donburi.World) *components.PhysicsData {
	entry, ok := components.Physics.First(w)
	if !ok {
		panic("no physics world: CreateBoundaries must run first")
	}
	return components.Physics.Get(entry)
}

// ToUnits converts a pixel vector to physics units.
func ToUnits(p *components.PhysicsData, v math.Vec2) math.Vec2 {
	return math.Vec2{X: v.X / p.Scale, Y: v.Y / p.Scale}
}

// ToPixels converts a physics vector to pixels.
func ToPixels(p *components.PhysicsData, v math.Vec2) math.Vec2 {
	return math.Vec2{X: v.X * p.Scale, Y: v.Y * p.Scale}
}

func createBody(w donburi.World, entry *donburi.Entry, centre math.Vec2, width, height float64, tag string) {
	p := MustPhysics(w)
	id := p.Engine.CreateDynamicBody(physics.BodyDef{
		Position: ToUnits(p, centre),
		W:        width / p.Scale,
		H:        height / p.Scale,
		Tags:     []string{tag},
	})
	components.Body.SetValue(entry, components.BodyData{ID: id, W: width, H: height})
	components.Position.SetValue(entry, components.PositionData{Vec2: centre})
}
