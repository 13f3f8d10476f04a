package engine

// Brownian is a bounded random-walk generator: a target-attracted,
// momentum-smoothed acceleration integrates into a position confined
// to [min, max] by elastic (energy-halving) reflection at the
// boundaries (spec §4.5).
type Brownian struct {
	Min, Max   float32
	StepSize   float32
	Momentum   float32
	Target     float32
	Attraction float32

	position float32
	velocity float32
	rng      xorshift32
}

// NewBrownian returns a walker confined to [min, max], starting at the
// midpoint with original_source's defaults: step_size = 10% of the
// range, momentum 0.5.
func NewBrownian(min, max float32, seed uint32) *Brownian {
	return &Brownian{
		Min:      min,
		Max:      max,
		StepSize: (max - min) * 0.1,
		Momentum: 0.5,
		position: (min + max) * 0.5,
		rng:      newXorshift32(seed),
	}
}

// Position returns the walker's current position without advancing.
func (b *Brownian) Position() float32 { return b.position }

// Next advances the walk by one step and returns the new position.
func (b *Brownian) Next() float32 {
	accel := (b.rng.float01() - 0.5) * 2 * b.StepSize
	if b.Attraction > 0 {
		accel += (b.Target - b.position) * b.Attraction
	}

	b.velocity = b.velocity*b.Momentum + accel*(1-b.Momentum)
	b.position += b.velocity

	if b.position < b.Min {
		b.position = b.Min
		b.velocity = -b.velocity * 0.5
	}
	if b.position > b.Max {
		b.position = b.Max
		b.velocity = -b.velocity * 0.5
	}

	return b.position
}
