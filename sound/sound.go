// Package sound plays cues and the music loop through ebiten's audio context.
package sound

import (
	"log"
	"sync"

	"github.com/automoto/tidewalker/assets"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/progress"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every cue at startup to avoid a hitch on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for cue := range cfg.Sound.Cues {
		if err := globalAudioLoader.PreloadSFX(cue); err != nil {
			log.Printf("Warning: Could not preload cue %s: %v", cue, err)
		}
	}
}

// Cues plays level cues. It satisfies level.CuePlayer.
type Cues struct{}

func (Cues) PlayCue(name string) {
	initGlobalAudio()
	if name == cfg.CueMusic {
		PlayMusic()
		return
	}
	playSFX(name)
}

func playSFX(cue string) {
	volume := effectiveSFXVolume()
	if volume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(cue)
	if err != nil {
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[cue]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// Update advances a running music fade. Call once per frame.
func Update() {
	if globalFadeTimer <= 0 {
		return
	}
	globalFadeTimer--
	if globalFadeDuration > 0 && globalMusicPlayer != nil {
		progress := float64(globalFadeTimer) / float64(globalFadeDuration)
		globalMusicPlayer.SetVolume(globalFadeStart * progress)
	}
	if globalFadeTimer == 0 {
		StopMusic()
	}
}

// PlayMusic starts the looping tune unless it is already playing.
func PlayMusic() {
	initGlobalAudio()

	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		return
	}
	StopMusic()

	player, err := globalAudioLoader.LoadMusic()
	if err != nil {
		log.Printf("Warning: Could not start music: %v", err)
		return
	}

	player.SetVolume(effectiveMusicVolume())
	player.Play()
	globalMusicPlayer = player
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic() {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = effectiveMusicVolume()
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalFadeTimer = 0
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// ToggleMute silences or restores all audio and returns the new state.
func ToggleMute() bool {
	globalMuted = !globalMuted
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(effectiveMusicVolume())
	}
	return globalMuted
}

func effectiveMusicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

func effectiveSFXVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalSFXVolume
}

// ApplySettings restores saved audio settings.
func ApplySettings(s *progress.SavedSettings) {
	if s == nil {
		return
	}
	SetMusicVolume(s.MusicVolume)
	SetSFXVolume(s.SFXVolume)
	if s.Muted != globalMuted {
		ToggleMute()
	}
}

// CurrentSettings captures the audio settings for saving.
func CurrentSettings() *progress.SavedSettings {
	return &progress.SavedSettings{
		MusicVolume: globalMusicVolume,
		SFXVolume:   globalSFXVolume,
		Muted:       globalMuted,
	}
}
