package engine

import (
	"math"
	"testing"
)

func TestPhaser_ZeroMixIsDry(t *testing.T) {
	p := NewPhaser(48000, 4)
	p.Mix = 0

	for _, x := range []Sample{0.2, -0.5, 0.8} {
		if out := p.Process(x); out != x {
			t.Fatalf("Process(%v) at Mix=0 = %v, want dry", x, out)
		}
	}
}

func TestPhaser_StageCountClamped(t *testing.T) {
	p := NewPhaser(48000, 999)
	if p.numStages != PhaserMaxStages {
		t.Fatalf("numStages = %d, want clamped to %d", p.numStages, PhaserMaxStages)
	}
	p2 := NewPhaser(48000, -3)
	if p2.numStages != 1 {
		t.Fatalf("numStages = %d, want clamped to at least 1", p2.numStages)
	}
}

func TestPhaser_StageCoefficientUsesTanApproximation(t *testing.T) {
	// Freeze the LFO at its peak (lfo=1) so freq = MaxFreq, then check
	// a1 against spec §4.2's pinned a1 = (1-tan(pi*f/sr))/(1+tan(pi*f/sr)).
	p := NewPhaser(48000, 1)
	p.Depth = 1
	p.MinFreq = 4000
	p.MaxFreq = 4000
	p.Feedback = 0
	p.lfoPhase = 0.25 // sin(2*pi*0.25) = 1, lfo = 0.5+0.5*1 = 1

	p.Process(0)

	const freq = 4000.0
	const sr = 48000.0
	w := math.Tan(math.Pi * freq / sr)
	want := float32((1 - w) / (1 + w))

	if d := p.a1[0] - want; d < -0.0005 || d > 0.0005 {
		t.Fatalf("a1 = %v, want %v (tan-prewarped per spec, not the linear w=2*pi*f/sr approximation)", p.a1[0], want)
	}
}

func TestPhaser_OutputBoundedOverTime(t *testing.T) {
	p := NewPhaser(48000, 6)
	for i := 0; i < 48000; i++ {
		out := p.Process(0.5)
		if out < -3 || out > 3 {
			t.Fatalf("sample %d = %v, unexpectedly unbounded", i, out)
		}
	}
}
