package engine

// ChaosAxis selects which Lorenz-system axis a ChaosOscillator emits.
type ChaosAxis int

const (
	ChaosAxisX ChaosAxis = iota
	ChaosAxisY
	ChaosAxisZ
)

// ChaosOscillator integrates the Lorenz attractor with forward Euler at
// a fixed step and emits one axis scaled by a gain (spec §4.1).
type ChaosOscillator struct {
	Sigma, Rho, Beta float64
	OutputScale      float32
	Axis             ChaosAxis

	dt      float64
	x, y, z float64
}

// NewChaosOscillator returns a Lorenz oscillator with the classic
// sigma=10, rho=28, beta=8/3 parameters and the (0.1, 0, 0) initial
// condition.
func NewChaosOscillator() *ChaosOscillator {
	c := &ChaosOscillator{
		Sigma:       10,
		Rho:         28,
		Beta:        8.0 / 3.0,
		OutputScale: 0.05,
		dt:          0.01,
	}
	c.Reset()
	return c
}

// Reset restores the initial condition (0.1, 0, 0).
func (c *ChaosOscillator) Reset() {
	c.x, c.y, c.z = 0.1, 0, 0
}

// Process integrates one Euler step and returns the selected axis.
func (c *ChaosOscillator) Process() Sample {
	dx := c.Sigma * (c.y - c.x)
	dy := c.x*(c.Rho-c.z) - c.y
	dz := c.x*c.y - c.Beta*c.z

	c.x += dx * c.dt
	c.y += dy * c.dt
	c.z += dz * c.dt

	var out float64
	switch c.Axis {
	case ChaosAxisX:
		out = c.x
	case ChaosAxisY:
		out = c.y
	case ChaosAxisZ:
		out = c.z
	}
	return Sample(out) * c.OutputScale
}
