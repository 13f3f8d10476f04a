package engine

// ScopeBufferSize is the fixed length of each channel's ring buffer
// (spec §3, original_source's SCOPE_BUFFER_SIZE).
const ScopeBufferSize = 4096

// Scope is a triggered waveform display: stereo ring buffers plus
// edge-trigger detection so Display can return a stable, non-jittery
// window for the UI (spec §4.6).
type Scope struct {
	TriggerLevel  float32
	TriggerRising bool
	TimeScale     float32

	bufferL, bufferR [ScopeBufferSize]Sample
	writePos         int
	triggerPos       int
}

// NewScope returns a scope triggering on rising zero-crossings at unit
// time scale.
func NewScope() *Scope {
	return &Scope{TriggerRising: true, TimeScale: 1}
}

// Write appends one block of stereo samples, updating the trigger
// position whenever the left channel crosses TriggerLevel in the
// configured direction (spec §4.6, original_source's scope_write).
func (s *Scope) Write(left, right []Sample) {
	for i := range left {
		prev := s.bufferL[(s.writePos+ScopeBufferSize-1)%ScopeBufferSize]
		l := left[i]

		var r Sample
		if right != nil {
			r = right[i]
		} else {
			r = l
		}

		s.bufferL[s.writePos] = l
		s.bufferR[s.writePos] = r

		if s.TriggerRising {
			if prev < s.TriggerLevel && l >= s.TriggerLevel {
				s.triggerPos = s.writePos
			}
		} else {
			if prev > s.TriggerLevel && l <= s.TriggerLevel {
				s.triggerPos = s.writePos
			}
		}

		s.writePos = (s.writePos + 1) % ScopeBufferSize
	}
}

// Display decimates points samples from the trigger position, spaced
// by TimeScale, for both channels.
func (s *Scope) Display(points int) (left, right []Sample) {
	left = make([]Sample, points)
	right = make([]Sample, points)

	scale := s.TimeScale
	if scale <= 0 {
		scale = 1
	}
	step := (float32(ScopeBufferSize) / scale) / float32(points)

	for i := 0; i < points; i++ {
		idx := (s.triggerPos + int(float32(i)*step)) % ScopeBufferSize
		left[i] = s.bufferL[idx]
		right[i] = s.bufferR[idx]
	}
	return left, right
}
