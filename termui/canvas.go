// Package termui renders levels into a terminal with tcell and plays cues
// with beep.
package termui

import (
	"image/color"
	"strings"

	"github.com/automoto/tidewalker/display"
	"github.com/gdamore/tcell/v2"
)

// Cell size in screen pixels. A 32px tile spans 4 columns and 2 rows.
const (
	CellW = 8
	CellH = 16
)

// Glyph is how a texture key looks in a terminal cell.
type Glyph struct {
	Rune rune
	Fill bool // cover every cell under the sprite instead of its centre only
	FG   tcell.Color
	BG   tcell.Color // ColorDefault keeps the background already drawn
}

var glyphs = map[string]Glyph{
	"water0":    {Rune: '~', Fill: true, FG: tcell.ColorLightSkyBlue, BG: tcell.ColorNavy},
	"water1":    {Rune: ' ', Fill: true, FG: tcell.ColorLightSkyBlue, BG: tcell.ColorNavy},
	"land0":     {Rune: ' ', Fill: true, FG: tcell.ColorDarkGreen, BG: tcell.ColorOliveDrab},
	"land1":     {Rune: '.', Fill: true, FG: tcell.ColorDarkGreen, BG: tcell.ColorOliveDrab},
	"land2":     {Rune: ',', Fill: true, FG: tcell.ColorDarkGreen, BG: tcell.ColorOliveDrab},
	"land3":     {Rune: '\'', Fill: true, FG: tcell.ColorDarkGreen, BG: tcell.ColorOliveDrab},
	"crossMark": {Rune: 'X', FG: tcell.ColorRed},
	"heart":     {Rune: '♥', FG: tcell.ColorRed},
	"collect":   {Rune: '$', FG: tcell.ColorYellow},
	"player":    {Rune: '@', FG: tcell.ColorWhite},
	"ship":      {Rune: 'D', FG: tcell.ColorSaddleBrown},
	"enemy0":    {Rune: 'c', FG: tcell.ColorOrangeRed},
	"enemy1":    {Rune: 'A', FG: tcell.ColorSilver},
}

var unknownGlyph = Glyph{Rune: '?', FG: tcell.ColorFuchsia}

// Canvas is a display.Canvas that writes into a tcell screen.
type Canvas struct {
	Screen tcell.Screen
}

// ViewportPixels converts the terminal size into level viewport pixels.
func ViewportPixels(cols, rows int) (float64, float64) {
	return float64(cols * CellW), float64(rows * CellH)
}

func (c *Canvas) Draw(s display.Sprite) {
	switch s.Kind {
	case display.KindRect:
		c.fill(s, ' ', tcell.StyleDefault.Background(tcellColor(s.Tint)))
	case display.KindText:
		c.text(s)
	default:
		c.texture(s)
	}
}

func (c *Canvas) texture(s display.Sprite) {
	// Sand beds are a sub-cell rim, land cells already cover them.
	if s.Texture == "sandBed" {
		return
	}
	g, ok := glyphs[s.Texture]
	if !ok {
		g = unknownGlyph
	}
	fg := g.FG
	if s.Tint.A > 0 {
		fg = tcellColor(s.Tint)
	}

	if g.Fill {
		c.fill(s, g.Rune, tcell.StyleDefault.Foreground(fg).Background(g.BG))
		return
	}
	col := int((s.X + s.W/2) / CellW)
	row := int((s.Y + s.H/2) / CellH)
	c.put(col, row, g.Rune, fg)
}

// put draws r over whatever background the cell already has.
func (c *Canvas) put(col, row int, r rune, fg tcell.Color) {
	w, h := c.Screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	_, _, under, _ := c.Screen.GetContent(col, row)
	_, bg, _ := under.Decompose()
	c.Screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

func (c *Canvas) fill(s display.Sprite, r rune, style tcell.Style) {
	if s.W <= 0 || s.H <= 0 {
		return
	}
	w, h := c.Screen.Size()
	x0, y0 := max(0, floorDiv(s.X, CellW)), max(0, floorDiv(s.Y, CellH))
	x1, y1 := min(w-1, floorDiv(s.X+s.W-1, CellW)), min(h-1, floorDiv(s.Y+s.H-1, CellH))
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			c.Screen.SetContent(col, row, r, nil, style)
		}
	}
}

func (c *Canvas) text(s display.Sprite) {
	col := int(s.X / CellW)
	row := int(s.Y / CellH)
	fg := tcell.ColorWhite
	if s.Tint.A > 0 {
		fg = tcellColor(s.Tint)
	}
	for i, r := range []rune(strings.TrimSpace(s.Text)) {
		c.put(col+i, row, r, fg)
	}
}

func floorDiv(v float64, cell int) int {
	q := int(v) / cell
	if v < 0 && int(v)%cell != 0 {
		q--
	}
	return q
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
