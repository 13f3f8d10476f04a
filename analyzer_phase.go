package engine

import "math"

// phaseCorrelatorResetSamples bounds how many samples the running
// sums accumulate before PhaseCorrelator resets them, matching
// original_source's phase_analyze (spec §4: supplemented feature, not
// named in spec.md's own analyzer list but present in
// original_source/native/src/visual/visual.c).
const phaseCorrelatorResetSamples = 4096

// PhaseCorrelator is a stereo correlation/width/balance meter driven
// by running L*R, L*L, R*R sums, smoothed with a one-pole filter and
// periodically reset to track recent material rather than the whole
// session.
type PhaseCorrelator struct {
	Smoothing float32

	sumLR, sumLL, sumRR float32
	sampleCount         int

	Correlation float32
	Balance     float32
	Width       float32
}

// NewPhaseCorrelator returns a correlator with original_source's
// default smoothing of 0.95.
func NewPhaseCorrelator() *PhaseCorrelator {
	return &PhaseCorrelator{Smoothing: 0.95}
}

// Reset zeroes the running sums without touching the smoothed output.
func (p *PhaseCorrelator) Reset() {
	p.sumLR, p.sumLL, p.sumRR = 0, 0, 0
	p.sampleCount = 0
}

// Analyze accumulates one stereo block's cross/auto-correlation sums
// and updates Correlation, Balance, and Width, resetting the running
// sums every phaseCorrelatorResetSamples samples.
func (p *PhaseCorrelator) Analyze(left, right []Sample) {
	for i := range left {
		l, r := float32(left[i]), float32(right[i])
		p.sumLR += l * r
		p.sumLL += l * l
		p.sumRR += r * r
		p.sampleCount++
	}

	denom := float32(math.Sqrt(float64(p.sumLL * p.sumRR)))
	var newCorr float32
	if denom > 0 {
		newCorr = p.sumLR / denom
	}
	p.Correlation = p.Smoothing*p.Correlation + (1-p.Smoothing)*newCorr

	if p.sampleCount > 0 {
		energyL := p.sumLL / float32(p.sampleCount)
		energyR := p.sumRR / float32(p.sampleCount)
		total := energyL + energyR
		if total > 0 {
			p.Balance = (energyR - energyL) / total
		}
	}

	p.Width = 1 - absf32(p.Correlation)

	if p.sampleCount > phaseCorrelatorResetSamples {
		p.Reset()
	}
}
