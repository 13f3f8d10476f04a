package engine

// MaxDelayTaps bounds the tap count of a DelayLine.
const MaxDelayTaps = 8

// delayTap is one read point into a DelayLine's ring buffer.
type delayTap struct {
	time     float32
	feedback float32
	pan      float32
	active   bool
}

// DelayLine is a multi-tap feedback delay with a damping filter in the
// feedback path (spec §4.2). Taps read from a shared mono write buffer
// fed by the (left+right)/2 input.
type DelayLine struct {
	Mix float32

	sampleRate     float32
	buffer         []Sample
	writePos       int
	taps           [MaxDelayTaps]delayTap
	numTaps        int
	feedbackFilter *StateVariableFilter
}

// NewDelayLine allocates a buffer long enough for maxTime seconds at
// sampleRate, with a 5kHz feedback-path damping filter.
func NewDelayLine(sampleRate float32, maxTime float32) *DelayLine {
	size := int(maxTime*sampleRate) + 1
	d := &DelayLine{
		Mix:            0.5,
		sampleRate:     sampleRate,
		buffer:         make([]Sample, size),
		feedbackFilter: NewStateVariableFilter(sampleRate),
	}
	d.feedbackFilter.SetCutoff(5000)
	return d
}

// AddTap registers a new tap at time seconds, with feedback gain and
// pan in [0 (left), 1 (right)]. No-ops once MaxDelayTaps are in use.
func (d *DelayLine) AddTap(time, feedback, pan float32) {
	if d.numTaps >= MaxDelayTaps {
		return
	}
	d.taps[d.numTaps] = delayTap{time: time, feedback: feedback, pan: pan, active: true}
	d.numTaps++
}

// ProcessStereo filters left and right in place, one frame at a time.
func (d *DelayLine) ProcessStereo(left, right []Sample) {
	n := len(left)
	bufSize := len(d.buffer)

	for i := 0; i < n; i++ {
		monoIn := (left[i] + right[i]) * 0.5

		d.buffer[d.writePos] = monoIn

		var delayedL, delayedR Sample
		for t := 0; t < d.numTaps; t++ {
			tap := &d.taps[t]
			if !tap.active {
				continue
			}
			delaySamples := int(tap.time * d.sampleRate)
			readPos := (d.writePos + bufSize - delaySamples) % bufSize

			tapOut := d.buffer[readPos] * tap.feedback
			tapOut = d.feedbackFilter.Process(tapOut)

			delayedL += tapOut * (1 - tap.pan)
			delayedR += tapOut * tap.pan
		}

		left[i] = lerp(left[i], delayedL, d.Mix)
		right[i] = lerp(right[i], delayedR, d.Mix)

		d.buffer[d.writePos] += (delayedL + delayedR) * 0.5
		d.writePos = (d.writePos + 1) % bufSize
	}
}
