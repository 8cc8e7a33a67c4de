// Package tones synthesises the game's cues and music from tone specs so every
// audio backend plays the same sounds without shipped sample files.
package tones

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/tidewalker/config"
)

// Samples renders a sine sweep from StartHz to EndHz with a linear fade out.
// Values are in [-Volume, Volume].
func Samples(spec cfg.ToneSpec, sampleRate int) []float64 {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(n)
		hz := spec.StartHz + (spec.EndHz-spec.StartHz)*t
		phase += 2 * math.Pi * hz / float64(sampleRate)
		out[i] = math.Sin(phase) * spec.Volume * (1 - t)
	}
	return out
}

// Sequence renders specs back to back.
func Sequence(specs []cfg.ToneSpec, sampleRate int) []float64 {
	var out []float64
	for _, s := range specs {
		out = append(out, Samples(s, sampleRate)...)
	}
	return out
}

// PCM16Stereo encodes mono samples as interleaved little-endian 16-bit
// stereo, the layout ebiten's audio context consumes.
func PCM16Stereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
