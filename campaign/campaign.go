// Package campaign sequences levels: it restarts a level that asks for it,
// advances past completed ones and records best scores.
package campaign

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/tidewalker/level"
	"github.com/automoto/tidewalker/progress"
	"github.com/automoto/tidewalker/shared/leveldata"
)

var ErrNoLevels = errors.New("campaign has no levels")

// Event reports what a Campaign.Update call did besides running a frame.
type Event int

const (
	EventNone Event = iota
	EventRestarted
	EventAdvanced
	EventFinished
)

func (e Event) String() string {
	switch e {
	case EventRestarted:
		return "restarted"
	case EventAdvanced:
		return "advanced"
	case EventFinished:
		return "finished"
	default:
		return "none"
	}
}

// Options configures every level the campaign builds. Level.Name is
// overwritten per source; Level.Engine must stay nil.
type Options struct {
	Level level.Options
	Store progress.Store // nil keeps results in memory
}

// Campaign owns the running level and the saved results.
type Campaign struct {
	sources  []leveldata.Source
	opts     level.Options
	store    progress.Store
	saved    *progress.SavedProgress
	index    int
	current  *level.Level
	restarts int
	finished bool
}

// New starts at the furthest level reached in a previous run.
func New(sources []leveldata.Source, opts Options) (*Campaign, error) {
	if len(sources) == 0 {
		return nil, ErrNoLevels
	}
	store := opts.Store
	if store == nil {
		store = progress.NewMemoryStore()
	}
	saved, err := progress.LoadProgress(store)
	if err != nil {
		log.Printf("Warning: Ignoring saved progress: %v", err)
	}
	c := &Campaign{
		sources: sources,
		opts:    opts.Level,
		store:   store,
		saved:   saved,
	}
	if saved.Unlocked > 0 && saved.Unlocked < len(sources) {
		c.index = saved.Unlocked
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Campaign) load() error {
	src := c.sources[c.index]
	opts := c.opts
	opts.Name = src.Name
	opts.Engine = nil
	l, err := level.New(src.Rows, opts)
	if err != nil {
		return fmt.Errorf("campaign level %d: %w", c.index, err)
	}
	if c.current != nil {
		c.current.Close()
	}
	c.current = l
	return nil
}

// Update runs one frame of the current level and then reacts to its outcome.
// A load failure while advancing is returned; the campaign stays on the
// finished level.
func (c *Campaign) Update(dt float64) (Event, error) {
	if c.finished {
		return EventFinished, nil
	}
	c.current.Update(dt)

	switch {
	case c.current.NeedsRestart():
		if err := c.load(); err != nil {
			return EventNone, err
		}
		c.restarts++
		return EventRestarted, nil
	case c.current.IsLevelComplete():
		c.record(c.current.Name(), c.current.Score())
		if c.index+1 >= len(c.sources) {
			c.finished = true
			return EventFinished, nil
		}
		c.index++
		if err := c.load(); err != nil {
			c.index--
			return EventNone, err
		}
		return EventAdvanced, nil
	}
	return EventNone, nil
}

func (c *Campaign) record(name string, score int) {
	if best, ok := c.saved.BestScores[name]; !ok || score > best {
		c.saved.BestScores[name] = score
	}
	// A finished campaign starts over from the first level.
	switch next := c.index + 1; {
	case next >= len(c.sources):
		c.saved.Unlocked = 0
	case next > c.saved.Unlocked:
		c.saved.Unlocked = next
	}
	if err := progress.SaveProgress(c.store, c.saved); err != nil {
		log.Printf("Warning: Could not record score for %s: %v", name, err)
	}
}

// HandleInput forwards input to the current level.
func (c *Campaign) HandleInput(in level.InputState) {
	c.current.HandleInput(in)
}

func (c *Campaign) Current() *level.Level { return c.current }
func (c *Campaign) Index() int            { return c.index }
func (c *Campaign) Len() int              { return len(c.sources) }
func (c *Campaign) Restarts() int         { return c.restarts }
func (c *Campaign) Finished() bool        { return c.finished }

// BestScore returns the recorded best for a level name.
func (c *Campaign) BestScore(name string) (int, bool) {
	best, ok := c.saved.BestScores[name]
	return best, ok
}

// Close releases the current level.
func (c *Campaign) Close() {
	if c.current != nil {
		c.current.Close()
	}
}
