package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/tones"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesises and caches cue PCM for an audio context
type AudioLoader struct {
	sfxCache map[string][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a cue without creating a player.
// Call this at startup to avoid a hitch on first play.
func (l *AudioLoader) PreloadSFX(cue string) error {
	_, err := l.pcm(cue)
	return err
}

func (l *AudioLoader) pcm(cue string) ([]byte, error) {
	if cached, ok := l.sfxCache[cue]; ok {
		return cached, nil
	}
	spec, ok := cfg.Sound.Cues[cue]
	if !ok {
		return nil, fmt.Errorf("unknown audio cue %q", cue)
	}
	data := tones.PCM16Stereo(tones.Samples(spec, l.context.SampleRate()))
	l.sfxCache[cue] = data
	return data, nil
}

// LoadSFX returns a new player for a cue each time.
func (l *AudioLoader) LoadSFX(cue string) (*audio.Player, error) {
	data, err := l.pcm(cue)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

// LoadMusic returns a looping player for the background tune.
func (l *AudioLoader) LoadMusic() (*audio.Player, error) {
	data := tones.PCM16Stereo(tones.Sequence(cfg.Sound.Music, l.context.SampleRate()))
	if len(data) == 0 {
		return nil, fmt.Errorf("music has no notes")
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	return l.context.NewPlayer(loop)
}
