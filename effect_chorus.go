package engine

import "math"

// ChorusMaxVoices bounds the voice count of a Chorus.
const ChorusMaxVoices = 8

// Chorus is a multi-voice modulated delay: each voice reads from a
// shared write buffer at an LFO-modulated depth and is panned across
// the stereo field (spec §4.2).
type Chorus struct {
	Rate  float32 // LFO Hz
	Depth float32 // modulation depth in seconds
	Mix   float32

	sampleRate float32
	buffer     []Sample
	writePos   int
	numVoices  int
	phases     [ChorusMaxVoices]float32
	voicePan   [ChorusMaxVoices]float32
}

// NewChorus allocates a 100ms buffer and distributes numVoices evenly
// across phase and pan, with a 0.5Hz rate and 3ms depth.
func NewChorus(sampleRate float32, numVoices int) *Chorus {
	if numVoices > ChorusMaxVoices {
		numVoices = ChorusMaxVoices
	}
	if numVoices < 1 {
		numVoices = 1
	}
	c := &Chorus{
		Rate:       0.5,
		Depth:      0.003,
		Mix:        0.5,
		sampleRate: sampleRate,
		buffer:     make([]Sample, int(sampleRate*0.1)),
		numVoices:  numVoices,
	}
	for i := 0; i < numVoices; i++ {
		c.phases[i] = float32(i) / float32(numVoices)
		if numVoices > 1 {
			c.voicePan[i] = float32(i) / float32(numVoices-1)
		}
	}
	return c
}

// ProcessStereo modulated-delays and mixes left/right in place.
func (c *Chorus) ProcessStereo(left, right []Sample) {
	phaseInc := c.Rate / c.sampleRate
	bufSize := len(c.buffer)

	for i := range left {
		in := (left[i] + right[i]) * 0.5
		c.buffer[c.writePos] = in

		var outL, outR Sample
		for v := 0; v < c.numVoices; v++ {
			lfo := 0.5 + 0.5*float32(math.Sin(float64(c.phases[v])*2*math.Pi))
			delayTime := 0.005 + c.Depth*lfo

			delaySamples := delayTime * c.sampleRate
			delayInt := int(delaySamples)
			delayFrac := delaySamples - float32(delayInt)

			pos1 := (c.writePos + bufSize - delayInt) % bufSize
			pos2 := (pos1 + bufSize - 1) % bufSize

			delayed := lerp(c.buffer[pos1], c.buffer[pos2], delayFrac)

			outL += delayed * (1 - c.voicePan[v])
			outR += delayed * c.voicePan[v]

			c.phases[v] += phaseInc
			for c.phases[v] >= 1 {
				c.phases[v] -= 1
			}
		}

		outL /= float32(c.numVoices)
		outR /= float32(c.numVoices)

		left[i] = lerp(left[i], outL, c.Mix)
		right[i] = lerp(right[i], outR, c.Mix)

		c.writePos = (c.writePos + 1) % bufSize
	}
}
