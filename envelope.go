package engine

import "math"

// ADSR is an exponential attack/decay/sustain/release envelope driven
// by a gate. Attack/decay/release times are in seconds (spec §4.3).
type ADSR struct {
	Attack  float32
	Decay   float32
	Sustain float32
	Release float32

	sampleRate float32
	gate       bool
	level      float32
}

// NewADSR returns an envelope with the given sample rate and default
// 10ms/200ms/0.7/300ms stage times.
func NewADSR(sampleRate float32) *ADSR {
	return &ADSR{
		Attack:     0.01,
		Decay:      0.2,
		Sustain:    0.7,
		Release:    0.3,
		sampleRate: sampleRate,
	}
}

// Gate opens (true) or closes (false) the envelope.
func (e *ADSR) Gate(open bool) {
	e.gate = open
}

// Level returns the envelope's current output without advancing it.
func (e *ADSR) Level() float32 {
	return e.level
}

// Process advances the envelope by one sample and returns its level.
func (e *ADSR) Process() float32 {
	var target, coefTime float32

	if e.gate {
		if e.level < 0.99 {
			target = 1
			coefTime = e.Attack
		} else {
			target = e.Sustain
			coefTime = e.Decay
		}
	} else {
		target = 0
		coefTime = e.Release
	}

	coef := float32(math.Exp(-1 / (float64(coefTime) * float64(e.sampleRate))))
	e.level = coef*(e.level-target) + target
	return e.level
}
