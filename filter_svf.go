package engine

import "math"

// FilterMode selects which tap of the state variable filter's
// simultaneous lowpass/highpass/bandpass/notch outputs Process returns.
type FilterMode int

const (
	FilterLowpass FilterMode = iota
	FilterHighpass
	FilterBandpass
	FilterNotch
)

// StateVariableFilter is a Zavalishin-style (TPT / zero-delay-feedback)
// two-pole state variable filter. All four outputs are computed every
// sample; Mode selects which one Process returns (spec §4.2).
//
// The reference implementation this was ported from also applied the
// wrong closed-form solve for hp/bp/lp (its hp/bp/lp taps did not satisfy
// hp = v0 - k*bp - lp). This implementation uses the canonical Cytomic
// zero-delay-feedback solve instead.
type StateVariableFilter struct {
	Mode FilterMode

	sampleRate float32
	cutoff     float32
	resonance  float32
	g, k       float32

	ic1eq, ic2eq float32
}

// NewStateVariableFilter returns a lowpass filter at 1kHz/Q=0.5.
func NewStateVariableFilter(sampleRate float32) *StateVariableFilter {
	f := &StateVariableFilter{sampleRate: sampleRate, resonance: 0.5}
	f.SetCutoff(1000)
	return f
}

// SetCutoff sets the corner frequency, clamped to [20Hz, 0.49*fs].
func (f *StateVariableFilter) SetCutoff(cutoff float32) {
	f.cutoff = clamp(cutoff, 20, f.sampleRate*0.49)
	f.g = float32(math.Tan(math.Pi * float64(f.cutoff) / float64(f.sampleRate)))
	f.k = 2 - 2*f.resonance
}

// SetResonance sets resonance in [0, 1]; 1 approaches self-oscillation.
func (f *StateVariableFilter) SetResonance(resonance float32) {
	f.resonance = clamp(resonance, 0, 1)
	f.k = 2 - 2*f.resonance
}

// Process runs one sample through the filter and returns the tap
// selected by Mode.
func (f *StateVariableFilter) Process(input Sample) Sample {
	v0 := input
	ic1eq := f.ic1eq
	ic2eq := f.ic2eq
	g, k := f.g, f.k

	hp := (v0 - (g+k)*ic1eq - ic2eq) / (1 + g*(g+k))
	bp := g*hp + ic1eq
	lp := g*bp + ic2eq

	f.ic1eq = 2*bp - ic1eq
	f.ic2eq = 2*lp - ic2eq

	switch f.Mode {
	case FilterHighpass:
		return hp
	case FilterBandpass:
		return bp
	case FilterNotch:
		return hp + lp
	default:
		return lp
	}
}

// ProcessBlock filters an entire buffer in place.
func (f *StateVariableFilter) ProcessBlock(buf []Sample) {
	for i := range buf {
		buf[i] = f.Process(buf[i])
	}
}
