package engine

import "math"

// FractalMaxHarmonics bounds the harmonic count of a FractalOscillator.
const FractalMaxHarmonics = 64

// FractalOscillator derives a harmonic weight vector from a Julia-set
// escape-time sampling of a complex constant c, then sums
// weight_i * sin(2*pi*phase_i) across integer-multiple partials (spec
// §4.1).
type FractalOscillator struct {
	RealC, ImagC  float64
	MaxIterations int
	NumHarmonics  int

	sampleRate float32
	baseFreq   float32
	weights    [FractalMaxHarmonics]float32
	phases     [FractalMaxHarmonics]float32
	needsRecalc bool
}

// NewFractalOscillator builds the documented default: c = -0.7+0.27015i,
// 32 iterations, 16 harmonics, base frequency 220 Hz.
func NewFractalOscillator(sampleRate float32) *FractalOscillator {
	return &FractalOscillator{
		RealC:         -0.7,
		ImagC:         0.27015,
		MaxIterations: 32,
		NumHarmonics:  16,
		sampleRate:    sampleRate,
		baseFreq:      220,
		needsRecalc:   true,
	}
}

// SetCoordinates changes the Julia-set constant and marks the weight
// vector for recalculation on the next Process call.
func (o *FractalOscillator) SetCoordinates(real, imag float64) {
	o.RealC, o.ImagC = real, imag
	o.needsRecalc = true
}

func (o *FractalOscillator) recalculate() {
	n := o.NumHarmonics
	if n > FractalMaxHarmonics {
		n = FractalMaxHarmonics
	}
	for i := 0; i < n; i++ {
		zr := float64(i)/float64(n)*2 - 1
		zi := 0.0
		iter := 0
		for zr*zr+zi*zi < 4 && iter < o.MaxIterations {
			tmp := zr*zr - zi*zi + o.RealC
			zi = 2*zr*zi + o.ImagC
			zr = tmp
			iter++
		}
		o.weights[i] = float32(iter) / float32(o.MaxIterations)
	}
	o.needsRecalc = false
}

// SetFrequency sets the fundamental frequency.
func (o *FractalOscillator) SetFrequency(freq float32) {
	o.baseFreq = freq
}

// Process sums the Julia-derived harmonic series for one sample.
func (o *FractalOscillator) Process() Sample {
	if o.needsRecalc {
		o.recalculate()
	}

	var out float32
	baseInc := o.baseFreq / o.sampleRate

	for i := 0; i < o.NumHarmonics; i++ {
		freqRatio := float32(i + 1)
		out += o.weights[i] * float32(math.Sin(float64(o.phases[i])*2*math.Pi))

		o.phases[i] += baseInc * freqRatio
		for o.phases[i] >= 1 {
			o.phases[i] -= 1
		}
	}
	return out * 0.5
}
