package engine

import "math"

// SpectrumFFTSize is the DFT input window length (spec §3,
// original_source's SPECTRUM_FFT_SIZE). The spec permits substituting
// an FFT; this keeps the teacher/original's direct O(N^2) DFT since no
// FFT library appears anywhere in the retrieved pack.
const SpectrumFFTSize = 2048

// Spectrum is a Hann-windowed DFT magnitude analyzer with one-pole
// smoothing and decaying peak-hold per bin (spec §4.6).
type Spectrum struct {
	Smoothing  float32 // [0, 1]
	PeakDecay  float32
	Logarithmic bool

	sampleRate float32
	window     [SpectrumFFTSize]float32
	buffer     [SpectrumFFTSize]float32
	writePos   int

	magnitudes [SpectrumFFTSize / 2]float32
	smoothed   [SpectrumFFTSize / 2]float32
	peaks      [SpectrumFFTSize / 2]float32
}

// NewSpectrum returns an analyzer with a precomputed Hann window and
// original_source's defaults (smoothing 0.8, peak_decay 0.99,
// logarithmic band aggregation).
func NewSpectrum(sampleRate float32) *Spectrum {
	s := &Spectrum{
		Smoothing:   0.8,
		PeakDecay:   0.99,
		Logarithmic: true,
		sampleRate:  sampleRate,
	}
	for i := 0; i < SpectrumFFTSize; i++ {
		s.window[i] = float32(0.5 * (1 - math.Cos(twoPi*float64(i)/float64(SpectrumFFTSize-1))))
	}
	return s
}

// computeDFT is the direct O(N^2) transform ported from
// original_source's compute_dft: a straightforward reference
// implementation, not optimized for the audio thread's bounded-work
// requirement at large block counts.
func computeDFT(input []float32, output []float32, n int) {
	for k := 0; k < n/2; k++ {
		var real, imag float64
		for t := 0; t < n; t++ {
			angle := twoPi * float64(k) * float64(t) / float64(n)
			real += float64(input[t]) * math.Cos(angle)
			imag -= float64(input[t]) * math.Sin(angle)
		}
		output[k] = float32(math.Sqrt(real*real+imag*imag)) / float32(n)
	}
}

// Write feeds one mono block into the windowed input ring, recomputes
// the DFT, and updates the smoothed/peak bin vectors (spec §4.6).
func (s *Spectrum) Write(mono []Sample) {
	for i := 0; i < len(mono) && i < SpectrumFFTSize; i++ {
		idx := (s.writePos + i) % SpectrumFFTSize
		s.buffer[idx] = float32(mono[i]) * s.window[idx]
	}
	s.writePos = (s.writePos + len(mono)) % SpectrumFFTSize

	computeDFT(s.buffer[:], s.magnitudes[:], SpectrumFFTSize)

	for i := range s.magnitudes {
		s.smoothed[i] = s.Smoothing*s.smoothed[i] + (1-s.Smoothing)*s.magnitudes[i]

		if s.magnitudes[i] > s.peaks[i] {
			s.peaks[i] = s.magnitudes[i]
		} else {
			s.peaks[i] *= s.PeakDecay
		}
	}
}

// Magnitudes returns the most recent raw (unsmoothed) magnitude
// vector; callers seeking the dominant bin for a pure tone (spec §8
// scenario 1) should use this rather than Bands.
func (s *Spectrum) Magnitudes() []float32 { return s.magnitudes[:] }

// Bands aggregates the smoothed magnitude vector into numBands bands,
// linearly or logarithmically (per Logarithmic) per original_source's
// spectrum_analyzer_get_bands.
func (s *Spectrum) Bands(numBands int) []float32 {
	bands := make([]float32, numBands)
	half := SpectrumFFTSize / 2

	if s.Logarithmic {
		logMax := math.Log(float64(half))
		for b := 0; b < numBands; b++ {
			startLog := float64(b) * logMax / float64(numBands)
			endLog := float64(b+1) * logMax / float64(numBands)
			startBin := int(math.Exp(startLog))
			endBin := int(math.Exp(endLog))

			if startBin >= half {
				startBin = half - 1
			}
			if endBin >= half {
				endBin = half
			}
			if endBin <= startBin {
				endBin = startBin + 1
			}

			var sum float32
			for i := startBin; i < endBin; i++ {
				sum += s.smoothed[i]
			}
			bands[b] = sum / float32(endBin-startBin)
		}
		return bands
	}

	binsPerBand := half / numBands
	for b := 0; b < numBands; b++ {
		var sum float32
		for i := 0; i < binsPerBand; i++ {
			sum += s.smoothed[b*binsPerBand+i]
		}
		bands[b] = sum / float32(binsPerBand)
	}
	return bands
}

// Peaks aggregates the decaying peak vector into numBands bands,
// taking the max peak within each band's bin range.
func (s *Spectrum) Peaks(numBands int) []float32 {
	peaks := make([]float32, numBands)
	half := SpectrumFFTSize / 2
	binsPerBand := half / numBands

	for b := 0; b < numBands; b++ {
		var max float32
		for i := 0; i < binsPerBand; i++ {
			idx := b*binsPerBand + i
			if idx < half && s.peaks[idx] > max {
				max = s.peaks[idx]
			}
		}
		peaks[b] = max
	}
	return peaks
}
