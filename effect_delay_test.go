package engine

import "testing"

func TestDelayLine_TapProducesEchoAfterDelayTime(t *testing.T) {
	const sr = 48000
	d := NewDelayLine(sr, 1.0)
	d.Mix = 1.0
	d.AddTap(0.1, 0.5, 0.5) // 100ms, centered

	n := int(0.1*sr) + 10
	left := make([]Sample, n)
	right := make([]Sample, n)
	left[0], right[0] = 1, 1

	d.ProcessStereo(left, right)

	delaySamples := int(0.1 * sr)
	if left[delaySamples] == 0 && right[delaySamples] == 0 {
		t.Fatalf("expected a non-zero echo near sample %d", delaySamples)
	}
}

func TestDelayLine_NoTapsPassesWetAsSilence(t *testing.T) {
	d := NewDelayLine(48000, 1.0)
	d.Mix = 1.0 // fully wet, but no taps means the wet signal is silence

	left := []Sample{1, 1, 1, 1}
	right := []Sample{1, 1, 1, 1}
	d.ProcessStereo(left, right)

	for i, s := range left {
		if s != 0 {
			t.Fatalf("left[%d] = %v, want 0 (no taps registered)", i, s)
		}
	}
}

func TestDelayLine_MaxTapsEnforced(t *testing.T) {
	d := NewDelayLine(48000, 1.0)
	for i := 0; i < MaxDelayTaps+4; i++ {
		d.AddTap(0.05, 0.3, 0.5)
	}
	if d.numTaps != MaxDelayTaps {
		t.Fatalf("numTaps = %d, want capped at %d", d.numTaps, MaxDelayTaps)
	}
}
