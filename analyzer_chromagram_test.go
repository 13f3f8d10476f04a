package engine

import "testing"

func TestChromagram_A440ProjectsToBinZero(t *testing.T) {
	const sr = 48000
	const fftSize = 2048

	c := NewChromagram(sr, fftSize)
	binHz := sr / float32(fftSize)

	mags := make([]float32, fftSize/2)
	bin := int(440/binHz + 0.5)
	mags[bin] = 1.0

	c.Update(mags)
	bins := c.Bins()

	if bins[0] <= 0 {
		t.Fatalf("bin 0 (A) = %v, want positive energy from a 440Hz spike", bins[0])
	}
	for i := 1; i < 12; i++ {
		if bins[i] > bins[0] {
			t.Fatalf("bin %d = %v exceeds bin 0 = %v, want bin 0 dominant", i, bins[i], bins[0])
		}
	}
}

func TestChromagram_SubAudibleBinsIgnored(t *testing.T) {
	const sr = 48000
	const fftSize = 2048
	c := NewChromagram(sr, fftSize)

	mags := make([]float32, fftSize/2)
	mags[0] = 1.0 // DC / near-0Hz bin, below the 20Hz cutoff

	c.Update(mags)
	bins := c.Bins()
	for i, v := range bins {
		if v != 0 {
			t.Fatalf("bin %d = %v, want 0 (sub-20Hz energy must be excluded)", i, v)
		}
	}
}
