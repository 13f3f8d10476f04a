package engine

// ReverbNumCombs and ReverbNumAllpass are the Schroeder-Moorer topology
// sizes: 8 parallel comb filters feeding 4 series allpass filters.
const (
	ReverbNumCombs   = 8
	ReverbNumAllpass = 4
)

// combLengths and allpassLengths are the canonical Schroeder-Moorer
// delay-line lengths in samples at 44100Hz; they are rescaled to the
// engine's actual sample rate (spec §4.2).
var (
	combLengths    = [ReverbNumCombs]int{1557, 1617, 1491, 1422, 1277, 1356, 1188, 1116}
	allpassLengths = [ReverbNumAllpass]int{225, 556, 441, 341}
)

type combFilterLine struct {
	buffer []Sample
	pos    int
}

func (c *combFilterLine) process(input, feedback Sample, damp *StateVariableFilter) Sample {
	delayed := c.buffer[c.pos]
	filtered := damp.Process(delayed)
	c.buffer[c.pos] = input + filtered*feedback
	c.pos = (c.pos + 1) % len(c.buffer)
	return delayed
}

type allpassFilterLine struct {
	buffer []Sample
	pos    int
	gain   float32
}

func (a *allpassFilterLine) process(input Sample) Sample {
	delayed := a.buffer[a.pos]
	out := -input + delayed
	a.buffer[a.pos] = input + delayed*a.gain
	a.pos = (a.pos + 1) % len(a.buffer)
	return out
}

// Reverb is an 8-comb/4-allpass Schroeder-Moorer reverb with a damping
// filter inside each comb's feedback path and adjustable stereo width
// (spec §4.2).
type Reverb struct {
	RoomSize float32
	Damping  float32
	Width    float32
	Mix      float32

	sampleRate float32
	combsL, combsR       [ReverbNumCombs]combFilterLine
	allpassL, allpassR   [ReverbNumAllpass]allpassFilterLine
	dampingFilterL, dampingFilterR *StateVariableFilter
}

// NewReverb allocates delay lines scaled from the canonical 44100Hz
// lengths to sampleRate, with room size 0.5, damping 0.5, width 1, and
// a 30% wet mix.
func NewReverb(sampleRate float32) *Reverb {
	r := &Reverb{
		RoomSize:   0.5,
		Damping:    0.5,
		Width:      1,
		Mix:        0.3,
		sampleRate: sampleRate,
	}

	scale := sampleRate / 44100.0
	for i := 0; i < ReverbNumCombs; i++ {
		size := int(float32(combLengths[i]) * scale)
		if size < 1 {
			size = 1
		}
		r.combsL[i] = combFilterLine{buffer: make([]Sample, size)}
		r.combsR[i] = combFilterLine{buffer: make([]Sample, size)}
	}
	for i := 0; i < ReverbNumAllpass; i++ {
		size := int(float32(allpassLengths[i]) * scale)
		if size < 1 {
			size = 1
		}
		r.allpassL[i] = allpassFilterLine{buffer: make([]Sample, size), gain: 0.5}
		r.allpassR[i] = allpassFilterLine{buffer: make([]Sample, size), gain: 0.5}
	}

	r.dampingFilterL = NewStateVariableFilter(sampleRate)
	r.dampingFilterR = NewStateVariableFilter(sampleRate)
	r.applyDamping()

	return r
}

// applyDamping maps Damping in [0,1] to the comb-loop lowpass cutoff:
// 0 is brightest (20kHz, clamped by SetCutoff to 0.49*fs), 1 is darkest
// (500Hz), per spec §4.2's "damping (modulates comb-loop LPF cutoff)".
func (r *Reverb) applyDamping() {
	d := clamp(r.Damping, 0, 1)
	cutoff := lerp(20000, 500, d)
	r.dampingFilterL.SetCutoff(cutoff)
	r.dampingFilterR.SetCutoff(cutoff)
}

// ProcessStereo runs the full comb-then-allpass network over an
// entire buffer in place.
func (r *Reverb) ProcessStereo(left, right []Sample) {
	feedback := 0.7 + r.RoomSize*0.28
	r.applyDamping()

	for i := range left {
		inL, inR := left[i], right[i]
		mono := (inL + inR) * 0.5

		var combOutL, combOutR Sample
		for c := 0; c < ReverbNumCombs; c++ {
			combOutL += r.combsL[c].process(mono, feedback, r.dampingFilterL)
			combOutR += r.combsR[c].process(mono, feedback, r.dampingFilterR)
		}
		combOutL /= ReverbNumCombs
		combOutR /= ReverbNumCombs

		apOutL, apOutR := combOutL, combOutR
		for a := 0; a < ReverbNumAllpass; a++ {
			apOutL = r.allpassL[a].process(apOutL)
			apOutR = r.allpassR[a].process(apOutR)
		}

		wetL := apOutL + apOutR*(1-r.Width)
		wetR := apOutR + apOutL*(1-r.Width)

		left[i] = lerp(inL, wetL, r.Mix)
		right[i] = lerp(inR, wetR, r.Mix)
	}
}
