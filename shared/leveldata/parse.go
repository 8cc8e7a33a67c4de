package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"unicode/utf8"
)

// Map symbols.
const (
	SymSea      = '.'
	SymLand     = '-'
	SymHostile0 = '0'
	SymHostile1 = '1'
	SymPlayer   = 'P'
	SymVehicle  = 'S'
	SymHeart    = 'H'
	SymCoin     = 'C'
	SymExit     = 'X'
)

// VariantPicker chooses the texture variant of the tile at a row-major index.
type VariantPicker func(t TileType, index int) int

// RandomVariants picks uniformly from land and sea palettes of the given sizes.
func RandomVariants(rng *rand.Rand, land, sea int) VariantPicker {
	return func(t TileType, _ int) int {
		n := sea
		if t == Land {
			n = land
		}
		if n <= 1 {
			return 0
		}
		return rng.Intn(n)
	}
}

// Parse builds a layout from rows of map symbols. The shape of every row is
// checked before any symbol is read. A nil picker selects variant 0.
func Parse(rows []string, pick VariantPicker) (*Layout, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, ErrEmptyMap
	}
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, &MapShapeError{Row: i, Want: width, Got: n}
		}
	}
	if pick == nil {
		pick = func(TileType, int) int { return 0 }
	}

	layout := &Layout{Grid: NewGrid(width, len(rows))}
	var players, exits, vehicles []Point

	for y, row := range rows {
		x := 0
		for _, sym := range row {
			p := Point{X: x, Y: y}
			tt := Land
			switch sym {
			case SymSea:
				tt = Sea
			case SymLand:
			case SymHostile0:
				layout.Hostiles = append(layout.Hostiles, HostileSpawn{Point: p, Variant: 0})
			case SymHostile1:
				tt = Sea
				layout.Hostiles = append(layout.Hostiles, HostileSpawn{Point: p, Variant: 1})
			case SymPlayer:
				players = append(players, p)
			case SymVehicle:
				tt = Sea
				vehicles = append(vehicles, p)
			case SymHeart:
				layout.Hearts = append(layout.Hearts, p)
			case SymCoin:
				layout.Coins = append(layout.Coins, p)
			case SymExit:
				exits = append(exits, p)
			default:
				return nil, &MapSymbolError{Symbol: sym, X: x, Y: y}
			}
			layout.Grid.set(x, y, Tile{Type: tt, Variant: pick(tt, y*width+x)})
			x++
		}
	}

	if len(players) != 1 {
		return nil, &LandmarkError{Symbol: SymPlayer, Count: len(players)}
	}
	if len(exits) != 1 {
		return nil, &LandmarkError{Symbol: SymExit, Count: len(exits)}
	}
	if len(vehicles) > 1 {
		return nil, &LandmarkError{Symbol: SymVehicle, Count: len(vehicles)}
	}
	layout.PlayerSpawn = players[0]
	layout.Exit = exits[0]
	if len(vehicles) == 1 {
		layout.Vehicle = &vehicles[0]
	}
	return layout, nil
}

// ParseText reads rows from r. Carriage returns and trailing blank lines are dropped.
func ParseText(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map rows: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}
