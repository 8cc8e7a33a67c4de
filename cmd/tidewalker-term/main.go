// Command tidewalker-term plays the levels in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/tidewalker/assets/levels"
	"github.com/automoto/tidewalker/campaign"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/level"
	"github.com/automoto/tidewalker/progress"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/termui"
	"github.com/gdamore/tcell/v2"
)

var (
	levelDir = flag.String("levels", "", "directory of .txt/.tmx levels (default: built-in levels)")
	logPath  = flag.String("log", "", "write log output to this file")
	mute     = flag.Bool("mute", false, "start with audio muted")
)

func main() {
	flag.Parse()

	// The screen owns the terminal, so logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sources, err := loadSources()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load levels: %v\n", err)
		os.Exit(1)
	}

	store, err := progress.Open("tidewalker")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		store = progress.NewMemoryStore()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	cues := termui.NewCues()
	if err := cues.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Warning: Audio initialization failed: %v", err)
	}
	defer cues.Cleanup()
	if *mute {
		cues.ToggleMute()
	}

	cols, rows := screen.Size()
	vw, vh := termui.ViewportPixels(cols, rows-1)
	c, err := campaign.New(sources, campaign.Options{
		Level: level.Options{ViewportW: vw, ViewportH: vh, Cues: cues},
		Store: store,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()
	cues.PlayCue(cfg.CueMusic)

	if err := run(screen, c, cues); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func loadSources() ([]leveldata.Source, error) {
	if *levelDir == "" {
		return levels.Load()
	}
	return leveldata.LoadAll(os.DirFS(*levelDir), ".")
}

func run(screen tcell.Screen, c *campaign.Campaign, cues *termui.Cues) error {
	frame := time.Second / time.Duration(cfg.C.TPS)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var keys termui.Keys
	canvas := &termui.Canvas{Screen: screen}
	paused := false
	status := ""

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if keys.Press(ev, time.Now()) {
					continue
				}
				if ev.Key() == tcell.KeyRune {
					switch ev.Rune() {
					case 'p':
						paused = !paused
					case 'm':
						cues.ToggleMute()
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if !paused {
				c.HandleInput(keys.Input(time.Now()))
				ev, err := c.Update(frame.Seconds())
				if err != nil {
					return err
				}
				switch ev {
				case campaign.EventRestarted:
					status = "washed ashore"
				case campaign.EventAdvanced:
					status = "island charted"
				case campaign.EventFinished:
					return nil
				}
			}

			screen.Clear()
			c.Current().Draw(canvas)
			drawStatus(screen, c, status, paused)
			screen.Show()
		}
	}
}

func drawStatus(screen tcell.Screen, c *campaign.Campaign, status string, paused bool) {
	name := c.Current().Name()
	line := fmt.Sprintf(" %d/%d %s", c.Index()+1, c.Len(), name)
	if best, ok := c.BestScore(name); ok {
		line += fmt.Sprintf("  best %d", best)
	}
	if status != "" {
		line += "  " + status
	}
	if paused {
		line += "  PAUSED"
	}
	line += "  [p]ause [m]ute [q]uit"

	_, h := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	for i, r := range []rune(line) {
		screen.SetContent(i, h-1, r, nil, style)
	}
}
