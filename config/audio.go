package config

// Cue names understood by every audio backend.
const (
	CuePick  = "pick"
	CueBoard = "board"
	CueMusic = "music"
)

// ToneSpec describes a synthesised cue: a sine sweep with a linear fade out.
type ToneSpec struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64

	// Music fade out duration in frames
	MusicFadeDuration int
}

// SoundConfig maps cue names to their tone definitions
type SoundConfig struct {
	Music             []ToneSpec // played back to back, looped
	Cues              map[string]ToneSpec
	VolumeMultipliers map[string]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.35,
		DefaultSFXVol:   1.0,

		MusicFadeDuration: 60,
	}

	note := func(hz float64) ToneSpec {
		return ToneSpec{StartHz: hz, EndHz: hz, Duration: 0.3, Volume: 0.2}
	}

	Sound = SoundConfig{
		Music: []ToneSpec{
			note(262), note(330), note(392), note(330),
			note(294), note(349), note(440), note(349),
		},
		Cues: map[string]ToneSpec{
			CuePick:  {StartHz: 880, EndHz: 1320, Duration: 0.08, Volume: 0.5},
			CueBoard: {StartHz: 220, EndHz: 110, Duration: 0.18, Volume: 0.6},
		},
		VolumeMultipliers: map[string]float64{
			CueBoard: 1.2,
		},
	}
}
