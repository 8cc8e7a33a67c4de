package tones

import (
	"encoding/binary"
	"math"
	"testing"

	cfg "github.com/automoto/tidewalker/config"
)

func TestSamplesLengthAndFade(t *testing.T) {
	got := Samples(cfg.ToneSpec{StartHz: 440, EndHz: 440, Duration: 0.5, Volume: 0.5}, 1000)
	if len(got) != 500 {
		t.Fatalf("len = %d, want 500", len(got))
	}
	for i, s := range got {
		if math.Abs(s) > 0.5 {
			t.Fatalf("sample %d = %v exceeds volume", i, s)
		}
	}
	if math.Abs(got[len(got)-1]) > 0.01 {
		t.Errorf("tail = %v, want faded", got[len(got)-1])
	}
}

func TestSamplesZeroDuration(t *testing.T) {
	if got := Samples(cfg.ToneSpec{StartHz: 440, Duration: 0}, 44100); got != nil {
		t.Errorf("got %d samples, want none", len(got))
	}
}

func TestSequenceConcatenates(t *testing.T) {
	spec := cfg.ToneSpec{StartHz: 200, EndHz: 200, Duration: 0.1, Volume: 1}
	if got := Sequence([]cfg.ToneSpec{spec, spec}, 100); len(got) != 20 {
		t.Errorf("len = %d, want 20", len(got))
	}
}

func TestPCM16Stereo(t *testing.T) {
	buf := PCM16Stereo([]float64{1, -2, 0})
	if len(buf) != 12 {
		t.Fatalf("len = %d, want 12", len(buf))
	}
	left := int16(binary.LittleEndian.Uint16(buf[0:]))
	right := int16(binary.LittleEndian.Uint16(buf[2:]))
	if left != math.MaxInt16 || right != math.MaxInt16 {
		t.Errorf("first frame = %d/%d", left, right)
	}
	if v := int16(binary.LittleEndian.Uint16(buf[4:])); v != -math.MaxInt16 {
		t.Errorf("clipped sample = %d, want %d", v, -math.MaxInt16)
	}
}
