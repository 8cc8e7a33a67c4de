package termui

import (
	"sync"
	"time"

	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/tones"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cues plays level cues through the speaker. It satisfies level.CuePlayer.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	cache       map[string][]float64
	initialized bool
	muted       bool
}

// NewCues creates a cue player; call Initialize before use.
func NewCues() *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
		cache: make(map[string][]float64),
	}
}

// Initialize sets up the speaker and pre-renders every cue.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	for name, spec := range cfg.Sound.Cues {
		c.cache[name] = scaled(tones.Samples(spec, int(sampleRate)), cfg.Sound.VolumeMultipliers[name])
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

func (c *Cues) PlayCue(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}
	if name == cfg.CueMusic {
		c.startMusic()
		return
	}
	samples, ok := c.cache[name]
	if !ok {
		return
	}
	speaker.Lock()
	c.mixer.Add(samplesStreamer(samples, false))
	speaker.Unlock()
}

func (c *Cues) startMusic() {
	if c.music != nil {
		return
	}
	music := tones.Sequence(cfg.Sound.Music, int(sampleRate))
	if len(music) == 0 {
		return
	}
	c.music = &beep.Ctrl{Streamer: samplesStreamer(scaled(music, cfg.Audio.DefaultMusicVol), true)}
	speaker.Lock()
	c.mixer.Add(c.music)
	speaker.Unlock()
}

// ToggleMute silences cues and pauses the music.
func (c *Cues) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.muted = !c.muted
	if c.music != nil {
		speaker.Lock()
		c.music.Paused = c.muted
		speaker.Unlock()
	}
	return c.muted
}

// Cleanup stops all sounds
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	c.music = nil
	c.initialized = false
}

// samplesStreamer plays mono samples on both channels, optionally looping.
func samplesStreamer(samples []float64, loop bool) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if len(samples) == 0 {
			return 0, false
		}
		n := 0
		for n < len(out) {
			if pos >= len(samples) {
				if !loop {
					break
				}
				pos = 0
			}
			out[n][0] = samples[pos]
			out[n][1] = samples[pos]
			pos++
			n++
		}
		return n, n > 0
	})
}

func scaled(samples []float64, volume float64) []float64 {
	if volume == 0 || volume == 1 {
		return samples
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s * volume
	}
	return out
}
