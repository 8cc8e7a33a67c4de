package termui

import (
	"image/color"
	"testing"
	"time"

	"github.com/automoto/tidewalker/display"
	"github.com/automoto/tidewalker/level"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCanvasFillsTiles(t *testing.T) {
	screen := newScreen(t, 10, 4)
	c := &Canvas{Screen: screen}
	c.Draw(display.Sprite{Kind: display.KindTexture, Texture: "water0", X: 0, Y: 0, W: 32, H: 32})

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if r := runeAt(screen, x, y); r != '~' {
				t.Errorf("cell (%d,%d) = %q, want '~'", x, y, r)
			}
		}
	}
	if r := runeAt(screen, 4, 0); r == '~' {
		t.Error("tile spilled into the next column")
	}
}

func TestCanvasEntityKeepsBackground(t *testing.T) {
	screen := newScreen(t, 10, 4)
	c := &Canvas{Screen: screen}
	c.Draw(display.Sprite{Kind: display.KindTexture, Texture: "land0", X: 0, Y: 0, W: 32, H: 32})
	c.Draw(display.Sprite{Kind: display.KindTexture, Texture: "player", X: 6, Y: 6, W: 20, H: 20})

	r, _, style, _ := screen.GetContent(2, 1)
	if r != '@' {
		t.Fatalf("player glyph = %q, want '@'", r)
	}
	_, bg, _ := style.Decompose()
	if bg != tcell.ColorOliveDrab {
		t.Errorf("background = %v, want land colour", bg)
	}
}

func TestCanvasSkipsSandBedAndMarksUnknown(t *testing.T) {
	screen := newScreen(t, 10, 4)
	c := &Canvas{Screen: screen}
	before := runeAt(screen, 0, 0)
	c.Draw(display.Sprite{Kind: display.KindTexture, Texture: "sandBed", X: 0, Y: 0, W: 40, H: 40})
	if r := runeAt(screen, 0, 0); r != before {
		t.Errorf("sand bed drew %q", r)
	}
	c.Draw(display.Sprite{Kind: display.KindTexture, Texture: "nope", X: 0, Y: 0, W: 8, H: 16})
	if r := runeAt(screen, 0, 0); r != '?' {
		t.Errorf("unknown texture drew %q, want '?'", r)
	}
}

func TestCanvasTextAndRect(t *testing.T) {
	screen := newScreen(t, 30, 4)
	c := &Canvas{Screen: screen}
	red := color.RGBA{R: 255, A: 255}
	c.Draw(display.Sprite{Kind: display.KindRect, X: 8, Y: 0, W: 24, H: 8, Tint: red})
	_, _, style, _ := screen.GetContent(2, 0)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("rect background = %v", bg)
	}

	c.Draw(display.Sprite{Kind: display.KindText, Text: "x 3", X: 80, Y: 20})
	for i, want := range "x 3" {
		if r := runeAt(screen, 10+i, 1); r != want {
			t.Errorf("text cell %d = %q, want %q", i, r, want)
		}
	}
}

func TestCanvasDrawsLevel(t *testing.T) {
	screen := newScreen(t, 24, 4)
	vw, vh := ViewportPixels(screen.Size())
	l, err := level.New([]string{"P-C-X."}, level.Options{
		ViewportW: vw,
		ViewportH: vh,
		Variants:  func(leveldata.TileType, int) int { return 0 },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	l.Draw(&Canvas{Screen: screen})
	found := map[rune]bool{}
	w, h := screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			found[runeAt(screen, x, y)] = true
		}
	}
	for _, r := range "@$X~" {
		if !found[r] {
			t.Errorf("glyph %q missing from level render", r)
		}
	}
}

func TestKeysHoldAndExpire(t *testing.T) {
	var k Keys
	now := time.Unix(100, 0)
	if !k.Press(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), now) {
		t.Fatal("arrow key not handled")
	}
	if !k.Press(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), now) {
		t.Fatal("w not handled")
	}
	if k.Press(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now) {
		t.Error("q should not steer")
	}

	in := k.Input(now.Add(50 * time.Millisecond))
	if in.Direction.X != 1 || in.Direction.Y != -1 {
		t.Errorf("held direction = %+v", in.Direction)
	}
	in = k.Input(now.Add(HoldTime))
	if in.Direction.X != 0 || in.Direction.Y != 0 {
		t.Errorf("expired direction = %+v", in.Direction)
	}
}

func TestSamplesStreamer(t *testing.T) {
	buf := make([][2]float64, 5)

	once := samplesStreamer([]float64{0.1, 0.2, 0.3}, false)
	n, ok := once.Stream(buf)
	if n != 3 || !ok || buf[2][0] != 0.3 || buf[2][1] != 0.3 {
		t.Errorf("one-shot stream = %d %v %v", n, ok, buf[:n])
	}
	if n, ok := once.Stream(buf); n != 0 || ok {
		t.Errorf("drained stream = %d %v", n, ok)
	}

	loop := samplesStreamer([]float64{1, 2}, true)
	n, ok = loop.Stream(buf)
	if n != 5 || !ok || buf[4][0] != 1 {
		t.Errorf("looping stream = %d %v %v", n, ok, buf)
	}
}
