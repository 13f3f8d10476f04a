package engine

import "math"

// Chromagram projects a spectrum's magnitude bins onto the 12 pitch
// classes: each FFT bin contributes its magnitude to
// round(12*log2(freq/440)) mod 12 (spec §4.6).
type Chromagram struct {
	sampleRate float32
	fftSize    int
	bins       [12]float32
}

// NewChromagram returns a projector for spectra produced by a DFT of
// the given size at sampleRate.
func NewChromagram(sampleRate float32, fftSize int) *Chromagram {
	return &Chromagram{sampleRate: sampleRate, fftSize: fftSize}
}

// Update recomputes the 12 pitch-class bins from a magnitude vector
// (e.g. Spectrum.Magnitudes()).
func (c *Chromagram) Update(magnitudes []float32) {
	for i := range c.bins {
		c.bins[i] = 0
	}

	binHz := c.sampleRate / float32(c.fftSize)
	for i, mag := range magnitudes {
		freq := float64(i) * float64(binHz)
		if freq < 20 {
			continue
		}
		pitchClass := int(math.Round(12*math.Log2(freq/440))) % 12
		if pitchClass < 0 {
			pitchClass += 12
		}
		c.bins[pitchClass] += mag
	}
}

// Bins returns the 12 pitch-class energy bins, as produced by the
// spec's round(12*log2(freq/440)) mod 12 projection (bin 0 is A440's
// own pitch class).
func (c *Chromagram) Bins() [12]float32 { return c.bins }
