package engine

// Voice is a single polyphonic note: two detuned MorphOscillators plus
// a noise source, summed and run through a state variable filter whose
// cutoff is modulated by its own envelope, with a separate amplitude
// envelope shaping the output (spec §4.3). This mirrors the reference
// engine's BasicSynth topology.
type Voice struct {
	Osc1Level   float32
	Osc2Level   float32
	NoiseLevel  float32

	FilterEnvAmount float32
	FilterBaseCutoff float32

	osc1  *MorphOscillator
	osc2  *MorphOscillator
	noise *NoiseSource
	filter *StateVariableFilter

	ampEnv    *ADSR
	filterEnv *ADSR

	active bool
	note   int
}

// NewVoice builds an idle voice: detuned sine oscillators (osc2 at
// +0.5% beating detune), white noise, a 1kHz/Q=0.5 lowpass, and the
// BasicSynth default envelope times.
func NewVoice(sampleRate float32, seed uint32) *Voice {
	v := &Voice{
		Osc1Level:        0.5,
		Osc2Level:        0.3,
		NoiseLevel:       0,
		FilterEnvAmount:  2000,
		FilterBaseCutoff: 500,

		osc1:   NewMorphOscillator(sampleRate),
		osc2:   NewMorphOscillator(sampleRate),
		noise:  NewNoiseSource(NoiseWhite, seed),
		filter: NewStateVariableFilter(sampleRate),

		ampEnv:    NewADSR(sampleRate),
		filterEnv: NewADSR(sampleRate),
	}
	v.filter.SetResonance(0.5)
	return v
}

// NoteOn retunes both oscillators to note's frequency (osc2 detuned
// 0.5% sharp) and opens both envelopes.
func (v *Voice) NoteOn(note int, velocity float32) {
	freq := midiToFreq(float32(note))
	v.osc1.SetFrequency(freq)
	v.osc2.SetFrequency(freq * 1.005)

	v.note = note
	v.active = true
	v.ampEnv.Gate(true)
	v.filterEnv.Gate(true)
}

// NoteOff closes both envelopes; the voice remains active (and
// audible) until its amplitude envelope decays to silence, at which
// point the owning track should call Voice.Idle to check for reuse.
func (v *Voice) NoteOff() {
	v.ampEnv.Gate(false)
	v.filterEnv.Gate(false)
}

// Idle reports whether the voice's amplitude envelope has released
// fully and the voice slot can be reassigned.
func (v *Voice) Idle() bool {
	return !v.active
}

// Note returns the MIDI note last assigned by NoteOn.
func (v *Voice) Note() int {
	return v.note
}

// Process renders one sample: sum oscillators and noise, filter with
// envelope-modulated cutoff, and scale by the amplitude envelope.
func (v *Voice) Process() Sample {
	osc := v.Osc1Level*v.osc1.Process() + v.Osc2Level*v.osc2.Process()
	osc += v.NoiseLevel * v.noise.Process()

	filterLevel := v.filterEnv.Process()
	cutoff := v.FilterBaseCutoff + filterLevel*v.FilterEnvAmount
	v.filter.SetCutoff(cutoff)

	filtered := v.filter.Process(osc)

	ampLevel := v.ampEnv.Process()
	if ampLevel < 0.0001 && !v.ampEnv.gate {
		v.active = false
	}

	return filtered * ampLevel
}
