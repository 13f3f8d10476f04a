package engine

import "testing"

func TestChorus_ZeroMixIsDry(t *testing.T) {
	c := NewChorus(48000, 3)
	c.Mix = 0

	left := []Sample{0.1, -0.2, 0.3, -0.4}
	right := []Sample{0.1, -0.2, 0.3, -0.4}
	origL := append([]Sample(nil), left...)

	c.ProcessStereo(left, right)
	for i := range left {
		if left[i] != origL[i] {
			t.Fatalf("index %d: left = %v, want dry %v at Mix=0", i, left[i], origL[i])
		}
	}
}

func TestChorus_VoiceCountClamped(t *testing.T) {
	c := NewChorus(48000, 100)
	if c.numVoices != ChorusMaxVoices {
		t.Fatalf("numVoices = %d, want clamped to %d", c.numVoices, ChorusMaxVoices)
	}

	c2 := NewChorus(48000, 0)
	if c2.numVoices != 1 {
		t.Fatalf("numVoices = %d, want clamped to at least 1", c2.numVoices)
	}
}

func TestChorus_OutputBounded(t *testing.T) {
	c := NewChorus(48000, 4)
	left := make([]Sample, 48000)
	right := make([]Sample, 48000)
	for i := range left {
		left[i] = Sample(0.5)
		right[i] = Sample(-0.5)
	}
	c.ProcessStereo(left, right)
	for i, s := range left {
		if s < -2 || s > 2 {
			t.Fatalf("sample %d = %v, unexpectedly unbounded", i, s)
		}
	}
}
