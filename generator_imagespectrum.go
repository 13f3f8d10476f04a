package engine

import "math"

// ImageSpectrum treats each column of a width*height luminance image
// as one time frame of an additive spectrum: row index is a harmonic
// bin whose frequency is BaseFreq + row*FreqScale and whose amplitude
// is that pixel's normalized luminance (spec §4.5).
type ImageSpectrum struct {
	BaseFreq  float32
	FreqScale float32

	width, height int
	pixels        []byte
	column        int

	sampleRate float32
	phase      []float32
}

// NewImageSpectrum returns a spectrum reader over a width*height
// luminance buffer at the given sample rate, with default BaseFreq
// 110 Hz (A2) and FreqScale 55 Hz/row.
func NewImageSpectrum(pixels []byte, width, height int, sampleRate float32) *ImageSpectrum {
	return &ImageSpectrum{
		BaseFreq:   110,
		FreqScale:  55,
		width:      width,
		height:     height,
		pixels:     pixels,
		sampleRate: sampleRate,
		phase:      make([]float32, height),
	}
}

// AdvanceColumn moves to the next time frame, wrapping at the image
// width.
func (s *ImageSpectrum) AdvanceColumn() {
	s.column = (s.column + 1) % s.width
}

// Column reports the current time-frame column.
func (s *ImageSpectrum) Column() int { return s.column }

// Process renders one sample: the sum, across every row, of that
// row's current-column amplitude times sin(2*pi*phase), then advances
// each row's phase by its row frequency (spec §4.5).
func (s *ImageSpectrum) Process() Sample {
	var out float32
	for row := 0; row < s.height; row++ {
		amp := float32(s.pixels[row*s.width+s.column]) / 255
		out += amp * float32(math.Sin(float64(s.phase[row])*twoPi))

		freq := s.BaseFreq + float32(row)*s.FreqScale
		s.phase[row] += freq / s.sampleRate
		if s.phase[row] >= 1 {
			s.phase[row] -= 1
		}
	}
	return out
}
