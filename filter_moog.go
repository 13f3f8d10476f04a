package engine

// MoogFilter is a four-stage one-pole cascade with resonant feedback
// modelling the Moog transistor ladder (spec §4.2). Each stage is a
// leaky integrator; feedback is taken from the fourth stage and,
// optionally, soft-saturated before re-entering the first.
type MoogFilter struct {
	Saturate bool

	sampleRate float32
	cutoff     float32
	resonance  float32
	tune       float32
	resQuad    float32

	stage [4]float32
	delay [4]float32
}

// NewMoogFilter returns an unresonant lowpass at 1kHz with saturation
// enabled.
func NewMoogFilter(sampleRate float32) *MoogFilter {
	f := &MoogFilter{sampleRate: sampleRate, Saturate: true}
	f.SetCutoff(1000)
	return f
}

// SetCutoff sets the corner frequency, clamped to [20Hz, 0.45*fs].
func (f *MoogFilter) SetCutoff(cutoff float32) {
	f.cutoff = clamp(cutoff, 20, f.sampleRate*0.45)
	fc := f.cutoff / f.sampleRate
	f.tune = 1.16 * fc
	f.setResQuad()
}

// SetResonance sets resonance in [0, 1]; values near 1 approach
// self-oscillation.
func (f *MoogFilter) SetResonance(resonance float32) {
	f.resonance = clamp(resonance, 0, 1)
	f.setResQuad()
}

func (f *MoogFilter) setResQuad() {
	f.resQuad = 4 * f.resonance * (1 + 0.22*f.tune)
}

// Process runs one sample through the four-stage ladder.
func (f *MoogFilter) Process(input Sample) Sample {
	in := input - f.resQuad*f.delay[3]

	if f.Saturate {
		in = fastTanh(in)
	}

	f.stage[0] = in*f.tune + f.delay[0]*(1-f.tune)
	f.delay[0] = f.stage[0]

	for i := 1; i < 4; i++ {
		f.stage[i] = f.stage[i-1]*f.tune + f.delay[i]*(1-f.tune)
		f.delay[i] = f.stage[i]
	}

	return f.stage[3]
}

// ProcessBlock filters an entire buffer in place.
func (f *MoogFilter) ProcessBlock(buf []Sample) {
	for i := range buf {
		buf[i] = f.Process(buf[i])
	}
}
