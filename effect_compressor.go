package engine

import "math"

// Compressor is a feedforward soft-knee compressor with an
// exponential attack/release envelope follower driven by a sidechain
// input (spec §4.2).
type Compressor struct {
	Threshold float32 // dBFS
	Ratio     float32
	Knee      float32 // dB width of the soft-knee region
	Makeup    float32 // dB

	sampleRate  float32
	attackMs    float32
	releaseMs   float32
	attackCoef  float32
	releaseCoef float32
	envelope    float32
}

// NewCompressor returns a compressor at -20dBFS threshold, 4:1 ratio,
// 10ms attack, 100ms release, 6dB knee, no makeup gain.
func NewCompressor(sampleRate float32) *Compressor {
	c := &Compressor{
		Threshold:  -20,
		Ratio:      4,
		Knee:       6,
		Makeup:     0,
		sampleRate: sampleRate,
	}
	c.SetAttack(10)
	c.SetRelease(100)
	return c
}

// SetAttack sets the attack time in milliseconds and recomputes the
// one-pole envelope coefficient.
func (c *Compressor) SetAttack(attackMs float32) {
	c.attackMs = attackMs
	c.attackCoef = float32(math.Exp(-1 / (float64(attackMs) * 0.001 * float64(c.sampleRate))))
}

// SetRelease sets the release time in milliseconds and recomputes the
// one-pole envelope coefficient.
func (c *Compressor) SetRelease(releaseMs float32) {
	c.releaseMs = releaseMs
	c.releaseCoef = float32(math.Exp(-1 / (float64(releaseMs) * 0.001 * float64(c.sampleRate))))
}

// Process applies gain reduction to input, detected from sidechain
// (pass input itself for ordinary non-sidechained compression).
func (c *Compressor) Process(input, sidechain Sample) Sample {
	levelDB := linearToDB(Sample(math.Abs(float64(sidechain))))

	var gainDB float32
	overDB := levelDB - c.Threshold

	if overDB > 0 {
		if overDB < c.Knee {
			overDB = overDB * overDB / (2 * c.Knee)
		}
		gainDB = overDB * (1 - 1/c.Ratio)
	}

	target := gainDB
	if target > c.envelope {
		c.envelope = c.attackCoef*(c.envelope-target) + target
	} else {
		c.envelope = c.releaseCoef*(c.envelope-target) + target
	}

	gain := dbToLinear(-c.envelope + c.Makeup)
	return input * gain
}
