package engine

// StochasticMaxSteps bounds a StochasticSequencer's step count
// (original_source's STOCHASTIC_MAX).
const StochasticMaxSteps = 64

// StochasticStep is one sequencer slot: a fire probability, the note
// it emits when triggered, a base velocity, and a duration in beats.
type StochasticStep struct {
	Prob float32
	Note int
	Vel  float32
	Dur  float32
}

// StochasticSequencer is a fixed-length step sequencer where each step
// fires probabilistically (scaled by a global density) and adds
// velocity variance on trigger (spec §4.5).
type StochasticSequencer struct {
	Density     float32
	VelVariance float32

	steps       []StochasticStep
	currentStep int
	rng         xorshift32
}

// NewStochasticSequencer returns a sequencer of n steps (clamped to
// StochasticMaxSteps), each defaulting to 0.5 probability, note 60,
// velocity 0.8, duration 1 beat, with original_source's defaults
// (density 1.0, vel_variance 0.1).
func NewStochasticSequencer(n int, seed uint32) *StochasticSequencer {
	n = clampInt(n, 1, StochasticMaxSteps)
	s := &StochasticSequencer{
		Density:     1,
		VelVariance: 0.1,
		steps:       make([]StochasticStep, n),
		rng:         newXorshift32(seed),
	}
	for i := range s.steps {
		s.steps[i] = StochasticStep{Prob: 0.5, Note: 60, Vel: 0.8, Dur: 1}
	}
	return s
}

// Steps exposes the sequencer's step table for editing.
func (s *StochasticSequencer) Steps() []StochasticStep { return s.steps }

// Advance moves to (and evaluates) the next step, returning whether it
// fired along with its note, jittered velocity, and duration. Velocity
// jitter is uniform in [-VelVariance/2, +VelVariance/2], clamped to
// [0, 1] (spec §4.5).
func (s *StochasticSequencer) Advance() (fired bool, note int, vel, dur float32) {
	step := s.steps[s.currentStep]
	s.currentStep = (s.currentStep + 1) % len(s.steps)

	if s.rng.float01() > step.Prob*s.Density {
		return false, 0, 0, 0
	}

	vel = step.Vel + (s.rng.float01()-0.5)*s.VelVariance
	vel = clamp(vel, 0, 1)
	return true, step.Note, vel, step.Dur
}
