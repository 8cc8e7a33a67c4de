package gamemath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the rectangle of size w x h centred on (cx, cy).
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether r and o overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies inside r. The left and top edges
// are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// IntersectsCircle reports whether the circle at (cx, cy) with the given
// radius touches r.
func (r Rect) IntersectsCircle(cx, cy, radius float64) bool {
	nx := Clamp(cx, r.X, r.Right())
	ny := Clamp(cy, r.Y, r.Bottom())
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= radius*radius
}

// Expand grows r by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}
