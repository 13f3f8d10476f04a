package engine

import "math"

// PhaserMaxStages bounds the allpass stage count of a Phaser.
const PhaserMaxStages = 12

// Phaser sweeps a cascade of first-order allpass stages with a shared
// LFO-derived coefficient and feeds the last stage's smoothed output
// back into the first (spec §4.2).
type Phaser struct {
	Rate     float32 // LFO Hz
	Depth    float32
	Feedback float32
	MinFreq  float32
	MaxFreq  float32
	Mix      float32

	sampleRate float32
	numStages  int
	lfoPhase   float32
	a1         [PhaserMaxStages]float32
	zm1        [PhaserMaxStages]float32
}

// NewPhaser returns a 0.3Hz, 4-stage (by default) phaser sweeping
// 200Hz-4000Hz with 70% feedback.
func NewPhaser(sampleRate float32, numStages int) *Phaser {
	if numStages > PhaserMaxStages {
		numStages = PhaserMaxStages
	}
	if numStages < 1 {
		numStages = 1
	}
	return &Phaser{
		Rate:       0.3,
		Depth:      0.6,
		Feedback:   0.7,
		MinFreq:    200,
		MaxFreq:    4000,
		Mix:        0.5,
		sampleRate: sampleRate,
		numStages:  numStages,
	}
}

// Process sweeps the LFO by one sample and runs the allpass cascade.
func (p *Phaser) Process(input Sample) Sample {
	lfo := 0.5 + 0.5*float32(math.Sin(float64(p.lfoPhase)*2*math.Pi))
	p.lfoPhase += p.Rate / p.sampleRate
	for p.lfoPhase >= 1 {
		p.lfoPhase -= 1
	}

	freq := p.MinFreq + lfo*p.Depth*(p.MaxFreq-p.MinFreq)

	w := float32(math.Tan(math.Pi * float64(freq) / float64(p.sampleRate)))
	a1 := (1 - w) / (1 + w)
	for i := 0; i < p.numStages; i++ {
		p.a1[i] = a1
	}

	y := input + p.zm1[p.numStages-1]*p.Feedback

	for i := 0; i < p.numStages; i++ {
		x := y
		y = p.a1[i]*(x-p.zm1[i]) + p.zm1[i]
		p.zm1[i] = lerp(p.zm1[i], y, 0.9)
		y = x - p.a1[i]*y
	}

	return lerp(input, y, p.Mix)
}
