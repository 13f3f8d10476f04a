package engine

import (
	"math"
	"testing"
)

func TestSpectrum_PureToneProducesDominantBinAtItsFrequency(t *testing.T) {
	const sr = 48000
	s := NewSpectrum(sr)

	buf := make([]Sample, SpectrumFFTSize)
	for i := range buf {
		buf[i] = Sample(math.Sin(2 * math.Pi * 440 * float64(i) / sr))
	}
	s.Write(buf)

	mags := s.Magnitudes()
	maxBin := 0
	for i, m := range mags {
		if m > mags[maxBin] {
			maxBin = i
		}
	}

	binHz := float32(sr) / float32(SpectrumFFTSize)
	wantBin := int(440/binHz + 0.5)
	if d := maxBin - wantBin; d < -1 || d > 1 {
		t.Fatalf("dominant bin = %d, want ~%d (440Hz)", maxBin, wantBin)
	}
}

func TestSpectrum_SilenceProducesNearZeroMagnitudes(t *testing.T) {
	s := NewSpectrum(48000)
	buf := make([]Sample, SpectrumFFTSize)
	s.Write(buf)

	for i, m := range s.Magnitudes() {
		if m > 0.0001 {
			t.Fatalf("bin %d = %v, want ~0 for silent input", i, m)
		}
	}
}

func TestSpectrum_BandsReturnsRequestedCount(t *testing.T) {
	s := NewSpectrum(48000)
	buf := make([]Sample, SpectrumFFTSize)
	for i := range buf {
		buf[i] = Sample(math.Sin(2 * math.Pi * 1000 * float64(i) / 48000))
	}
	s.Write(buf)

	bands := s.Bands(16)
	if len(bands) != 16 {
		t.Fatalf("Bands(16) returned %d bands, want 16", len(bands))
	}
}

func TestSpectrum_PeaksDecayTowardZeroAfterTransient(t *testing.T) {
	s := NewSpectrum(48000)
	s.PeakDecay = 0.5

	loud := make([]Sample, SpectrumFFTSize)
	for i := range loud {
		loud[i] = Sample(math.Sin(2 * math.Pi * 440 * float64(i) / 48000))
	}
	s.Write(loud)
	peaksLoud := s.Peaks(8)

	silent := make([]Sample, SpectrumFFTSize)
	for i := 0; i < 10; i++ {
		s.Write(silent)
	}
	peaksAfter := s.Peaks(8)

	var anyDecayed bool
	for i := range peaksLoud {
		if peaksAfter[i] < peaksLoud[i] {
			anyDecayed = true
			break
		}
	}
	if !anyDecayed {
		t.Fatalf("expected at least one band's peak to decay after silence: before=%v after=%v", peaksLoud, peaksAfter)
	}
}
