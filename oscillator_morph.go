package engine

import "math"

// Waveform selects one of the five primitive shapes a MorphOscillator
// can interpolate between.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSaw
	WaveSquare
	WaveTriangle
	WavePulse
)

func generateWaveform(w Waveform, phase, pulseWidth float32) Sample {
	switch w {
	case WaveSine:
		return Sample(math.Sin(float64(phase) * twoPi))
	case WaveSaw:
		return 2*phase - 1
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	case WavePulse:
		if phase < pulseWidth {
			return 1
		}
		return -1
	default:
		return 0
	}
}

// MorphOscillator linearly interpolates between two waveforms by a
// morph coefficient, advancing phase each sample (spec §4.1).
type MorphOscillator struct {
	WaveformA, WaveformB Waveform
	Morph                float32 // [0, 1]
	PulseWidth           float32
	DetuneCents          float32

	sampleRate float32
	frequency  float32
	phase      float32 // PhasePosition, always in [0, 1)
}

// NewMorphOscillator builds a sine/saw morph oscillator at 440 Hz.
func NewMorphOscillator(sampleRate float32) *MorphOscillator {
	return &MorphOscillator{
		WaveformA:  WaveSine,
		WaveformB:  WaveSaw,
		PulseWidth: 0.5,
		sampleRate: sampleRate,
		frequency:  440,
	}
}

// SetFrequency sets the oscillator's base frequency in Hz. Takes
// effect at the next Process call.
func (o *MorphOscillator) SetFrequency(freq float32) {
	o.frequency = freq
}

func (o *MorphOscillator) Frequency() float32 { return o.frequency }

// SetMorph clamps and stores the morph coefficient.
func (o *MorphOscillator) SetMorph(m float32) {
	o.Morph = clamp(m, 0, 1)
}

// Reset zeroes the phase accumulator.
func (o *MorphOscillator) Reset() {
	o.phase = 0
}

// Process advances the oscillator by one sample and returns its output.
func (o *MorphOscillator) Process() Sample {
	a := generateWaveform(o.WaveformA, o.phase, o.PulseWidth)
	b := generateWaveform(o.WaveformB, o.phase, o.PulseWidth)
	out := lerp(a, b, o.Morph)

	detuneRatio := float32(math.Pow(2, float64(o.DetuneCents)/1200))
	inc := (o.frequency * detuneRatio) / o.sampleRate
	o.phase += inc
	for o.phase >= 1 {
		o.phase -= 1
	}
	for o.phase < 0 {
		o.phase += 1
	}
	return out
}

// ProcessBlock fills buf with frames consecutive samples.
func (o *MorphOscillator) ProcessBlock(buf []Sample) {
	for i := range buf {
		buf[i] = o.Process()
	}
}
