package engine

import "math"

// Bitcrusher reduces effective bit depth (quantization) and sample
// rate (sample-and-hold) independently (spec §4.2).
type Bitcrusher struct {
	BitDepth            int
	SampleRateReduction  int
	Mix                 float32
	Dither              float32

	holdCounter int
	holdSample  Sample
}

// NewBitcrusher returns a 12-bit crusher with no rate reduction and a
// full wet mix.
func NewBitcrusher() *Bitcrusher {
	return &Bitcrusher{BitDepth: 12, SampleRateReduction: 1, Mix: 1}
}

// Process holds input for SampleRateReduction samples, then quantizes
// to BitDepth bits.
func (b *Bitcrusher) Process(input Sample) Sample {
	b.holdCounter++
	if b.holdCounter >= b.SampleRateReduction {
		b.holdSample = input
		b.holdCounter = 0
	}

	quant := float32(math.Pow(2, float64(b.BitDepth-1)))
	crushed := float32(math.Round(float64(b.holdSample*quant))) / quant

	return lerp(input, crushed, b.Mix)
}
