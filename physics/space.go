package physics

import (
	"fmt"
	"math"

	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// resolv object tags
const (
	TagSolid = "solid"
	TagEdge  = "edge"
	TagBody  = "body"
)

// SpaceConfig sizes a Space.
type SpaceConfig struct {
	Width, Height float64 // world extent in physics units
	CellSize      int
	EdgeThickness float64
	MaxSubSteps   int
}

type staticBody struct {
	edges   []Edge
	objects []*resolv.Object
}

type dynamicBody struct {
	obj      *resolv.Object
	velocity dmath.Vec2
}

// Space is an Engine backed by a resolv broadphase. Edges become thin solid
// rectangles. Bodies move one axis at a time and stop flush against any edge
// they would cross. Bodies never collide with each other.
type Space struct {
	cfg     SpaceConfig
	space   *resolv.Space
	offset  float64 // resolv coordinates are world + offset
	nextID  BodyID
	statics map[BodyID]*staticBody
	bodies  map[BodyID]*dynamicBody
	order   []BodyID
}

var _ Engine = (*Space)(nil)

// NewSpace creates an empty world. The resolv space is padded by one cell on
// every side so perimeter fixtures still fall inside a cell.
func NewSpace(cfg SpaceConfig) *Space {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 16
	}
	if cfg.EdgeThickness <= 0 {
		cfg.EdgeThickness = 1
	}
	if cfg.MaxSubSteps <= 0 {
		cfg.MaxSubSteps = 1
	}
	pad := cfg.CellSize
	w := int(math.Ceil(cfg.Width)) + 2*pad
	h := int(math.Ceil(cfg.Height)) + 2*pad
	return &Space{
		cfg:     cfg,
		space:   resolv.NewSpace(w, h, cfg.CellSize, cfg.CellSize),
		offset:  float64(pad),
		statics: map[BodyID]*staticBody{},
		bodies:  map[BodyID]*dynamicBody{},
	}
}

func (s *Space) allocID() BodyID {
	s.nextID++
	return s.nextID
}

func (s *Space) CreateStaticBody() BodyID {
	id := s.allocID()
	s.statics[id] = &staticBody{}
	return id
}

func (s *Space) AddEdgeFixture(body BodyID, e Edge) error {
	sb, ok := s.statics[body]
	if !ok {
		return fmt.Errorf("add edge to body %d: %w", body, ErrUnknownBody)
	}
	if err := validateEdge(e); err != nil {
		return fmt.Errorf("add edge %v-%v: %w", e.A, e.B, err)
	}

	t := s.cfg.EdgeThickness
	var r gamemath.Rect
	if e.Horizontal() {
		r = gamemath.Rect{X: math.Min(e.A.X, e.B.X), Y: e.A.Y - t/2, W: math.Abs(e.B.X - e.A.X), H: t}
	} else {
		r = gamemath.Rect{X: e.A.X - t/2, Y: math.Min(e.A.Y, e.B.Y), W: t, H: math.Abs(e.B.Y - e.A.Y)}
	}

	obj := resolv.NewObject(r.X+s.offset, r.Y+s.offset, r.W, r.H, TagSolid, TagEdge)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = e
	s.space.Add(obj)

	sb.edges = append(sb.edges, e)
	sb.objects = append(sb.objects, obj)
	return nil
}

func (s *Space) CreateDynamicBody(def BodyDef) BodyID {
	id := s.allocID()
	tags := append([]string{TagBody}, def.Tags...)
	x := def.Position.X - def.W/2 + s.offset
	y := def.Position.Y - def.H/2 + s.offset
	obj := resolv.NewObject(x, y, def.W, def.H, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, def.W, def.H))
	obj.Data = id
	s.space.Add(obj)

	s.bodies[id] = &dynamicBody{obj: obj}
	s.order = append(s.order, id)
	return id
}

func (s *Space) SetVelocity(body BodyID, v dmath.Vec2) {
	if b, ok := s.bodies[body]; ok {
		b.velocity = v
	}
}

func (s *Space) SetPosition(body BodyID, centre dmath.Vec2) {
	b, ok := s.bodies[body]
	if !ok {
		return
	}
	b.obj.X = centre.X - b.obj.W/2 + s.offset
	b.obj.Y = centre.Y - b.obj.H/2 + s.offset
	b.obj.Update()
}

func (s *Space) Transform(body BodyID) Transform {
	b, ok := s.bodies[body]
	if !ok {
		return Transform{}
	}
	return Transform{
		Position: dmath.Vec2{
			X: b.obj.X + b.obj.W/2 - s.offset,
			Y: b.obj.Y + b.obj.H/2 - s.offset,
		},
		Velocity: b.velocity,
	}
}

// Fixtures returns a copy of the edges attached to a static body.
func (s *Space) Fixtures(body BodyID) []Edge {
	sb, ok := s.statics[body]
	if !ok {
		return nil
	}
	out := make([]Edge, len(sb.edges))
	copy(out, sb.edges)
	return out
}

// Step integrates every dynamic body by dt seconds in creation order. Each
// body is sub-stepped so no single move exceeds half its smallest side.
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, id := range s.order {
		b := s.bodies[id]
		dx := b.velocity.X * dt
		dy := b.velocity.Y * dt
		if dx == 0 && dy == 0 {
			continue
		}
		steps := s.subSteps(b.obj, dx, dy)
		for i := 0; i < steps; i++ {
			if b.velocity.X != 0 {
				s.moveX(b, dx/float64(steps))
			}
			if b.velocity.Y != 0 {
				s.moveY(b, dy/float64(steps))
			}
		}
	}
}

func (s *Space) subSteps(obj *resolv.Object, dx, dy float64) int {
	limit := math.Min(obj.W, obj.H) / 2
	if limit <= 0 {
		return 1
	}
	n := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / limit))
	if n < 1 {
		n = 1
	}
	if n > s.cfg.MaxSubSteps {
		n = s.cfg.MaxSubSteps
	}
	return n
}

// solidsNear collects solids in the cells swept by a move, padded by one unit
// across the move so edges lying exactly on a cell border are found.
func (s *Space) solidsNear(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	var probes [2][2]float64
	if dx != 0 {
		px := dx + gamemath.Sign(dx)
		probes = [2][2]float64{{px, -1}, {px, 1}}
	} else {
		py := dy + gamemath.Sign(dy)
		probes = [2][2]float64{{-1, py}, {1, py}}
	}

	seen := map[*resolv.Object]bool{}
	var out []*resolv.Object
	for _, p := range probes {
		check := obj.Check(p[0], p[1], TagSolid)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(TagSolid) {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}

func (s *Space) moveX(b *dynamicBody, dx float64) {
	obj := b.obj
	target := obj.X + dx
	blocked := false
	for _, o := range s.solidsNear(obj, dx, 0) {
		if !(obj.Y < o.Y+o.H && o.Y < obj.Y+obj.H) {
			continue
		}
		if dx > 0 && obj.X+obj.W <= o.X && target+obj.W > o.X {
			target = o.X - obj.W
			blocked = true
		} else if dx < 0 && obj.X >= o.X+o.W && target < o.X+o.W {
			target = o.X + o.W
			blocked = true
		}
	}
	obj.X = target
	obj.Update()
	if blocked {
		b.velocity.X = 0
	}
}

func (s *Space) moveY(b *dynamicBody, dy float64) {
	obj := b.obj
	target := obj.Y + dy
	blocked := false
	for _, o := range s.solidsNear(obj, 0, dy) {
		if !(obj.X < o.X+o.W && o.X < obj.X+obj.W) {
			continue
		}
		if dy > 0 && obj.Y+obj.H <= o.Y && target+obj.H > o.Y {
			target = o.Y - obj.H
			blocked = true
		} else if dy < 0 && obj.Y >= o.Y+o.H && target < o.Y+o.H {
			target = o.Y + o.H
			blocked = true
		}
	}
	obj.Y = target
	obj.Update()
	if blocked {
		b.velocity.Y = 0
	}
}

// Destroy removes every object from the resolv space and forgets all bodies.
func (s *Space) Destroy() {
	for _, sb := range s.statics {
		s.space.Remove(sb.objects...)
	}
	for _, b := range s.bodies {
		s.space.Remove(b.obj)
	}
	s.statics = map[BodyID]*staticBody{}
	s.bodies = map[BodyID]*dynamicBody{}
	s.order = nil
}
