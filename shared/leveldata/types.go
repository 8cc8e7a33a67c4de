// Package leveldata parses authored tile maps into terrain grids and spawn layouts.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

// TileType is the terrain class of a cell.
type TileType int

const (
	Sea TileType = iota
	Land
)

func (t TileType) String() string {
	switch t {
	case Sea:
		return "sea"
	case Land:
		return "land"
	}
	return "unknown"
}

// Tile is one grid cell. Variant only selects a texture.
type Tile struct {
	Variant int
	Type    TileType
}

// Grid is a fixed-size, row-major array of tiles.
type Grid struct {
	width, height int
	tiles         []Tile
}

// NewGrid builds a grid of w x h sea tiles.
func NewGrid(w, h int) *Grid {
	return &Grid{width: w, height: h, tiles: make([]Tile, w*h)}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the tile at (x, y). It panics when out of range.
func (g *Grid) At(x, y int) Tile {
	return g.tiles[y*g.width+x]
}

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) set(x, y int, t Tile) {
	g.tiles[y*g.width+x] = t
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// HostileSpawn places a hostile of the given variant (0 land, 1 sea).
type HostileSpawn struct {
	Point
	Variant int
}

// Layout is everything a level needs to build its world.
type Layout struct {
	Grid        *Grid
	PlayerSpawn Point
	Exit        Point
	Vehicle     *Point // nil when the map has no S
	Hostiles    []HostileSpawn
	Hearts      []Point
	Coins       []Point
}

// Source is a named level as rows of map symbols.
type Source struct {
	Name string
	Rows []string
}
