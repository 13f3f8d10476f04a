package engine

import "math"

// FMMaxOperators bounds the operator count of an FMOscillator.
const FMMaxOperators = 6

// FMOperator is one node in the FM modulation network.
type FMOperator struct {
	Ratio      float32
	Detune     float32
	Amplitude  float32
	Feedback   float32
	phase      float32
	lastOutput float32
}

// FMOscillator is an up-to-6-operator modulation network; evaluation
// order matters, since later operators see earlier ones' output within
// the same sample (spec §4.1).
type FMOscillator struct {
	Operators      [FMMaxOperators]FMOperator
	NumOperators   int
	ModMatrix      [FMMaxOperators][FMMaxOperators]float32 // ModMatrix[j][i]: j modulates i
	sampleRate     float32
	baseFrequency  float32
}

// NewFMOscillator builds a network of numOps unison carriers at 1:1
// ratio, each with equal amplitude.
func NewFMOscillator(sampleRate float32, numOps int) *FMOscillator {
	if numOps > FMMaxOperators {
		numOps = FMMaxOperators
	}
	o := &FMOscillator{sampleRate: sampleRate, NumOperators: numOps, baseFrequency: 440}
	for i := 0; i < numOps; i++ {
		o.Operators[i].Ratio = 1
		o.Operators[i].Amplitude = 1 / float32(numOps)
	}
	return o
}

// SetFrequency rescales every operator's effective frequency from its
// ratio and detune.
func (o *FMOscillator) SetFrequency(freq float32) {
	o.baseFrequency = freq
}

// SetModulation sets the routing weight from operator mod onto carrier.
func (o *FMOscillator) SetModulation(mod, carrier int, amount float32) {
	if mod < FMMaxOperators && carrier < FMMaxOperators {
		o.ModMatrix[mod][carrier] = amount
	}
}

// Process evaluates all operators in index order and returns their sum.
func (o *FMOscillator) Process() Sample {
	var outputs [FMMaxOperators]float32
	phaseInc := twoPi / o.sampleRate

	for i := 0; i < o.NumOperators; i++ {
		op := &o.Operators[i]

		var modSum float32
		for m := 0; m < o.NumOperators; m++ {
			modSum += outputs[m] * o.ModMatrix[m][i]
		}
		modSum += op.lastOutput * op.Feedback

		phase := op.phase + modSum
		op.lastOutput = float32(math.Sin(float64(phase))) * op.Amplitude
		outputs[i] = op.lastOutput

		freq := o.baseFrequency*op.Ratio + op.Detune
		op.phase += freq * phaseInc
		for op.phase >= twoPi {
			op.phase -= twoPi
		}
	}

	var out float32
	for i := 0; i < o.NumOperators; i++ {
		out += outputs[i]
	}
	return out
}
