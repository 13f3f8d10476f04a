package engine

import "math"

// MeterHistorySize bounds LevelMeter's per-block peak history ring
// (original_source's METER_HISTORY_SIZE).
const MeterHistorySize = 256

// LevelMeter tracks per-block peak/RMS with decaying peak and
// peak-hold counters per channel (spec §4.6).
type LevelMeter struct {
	PeakDecay float32
	HoldTime  float32 // seconds

	sampleRate float32

	peakL, peakR         float32
	rmsL, rmsR           float32
	peakHoldL, peakHoldR float32
	holdCounterL         float32
	holdCounterR         float32
	clipL, clipR         bool

	historyL, historyR [MeterHistorySize]float32
	historyPos         int
}

// NewLevelMeter returns a meter at sampleRate with original_source's
// defaults (peak_decay 0.9995, hold_time 2s).
func NewLevelMeter(sampleRate float32) *LevelMeter {
	return &LevelMeter{PeakDecay: 0.9995, HoldTime: 2, sampleRate: sampleRate}
}

// Analyze updates RMS, decaying peak, and peak-hold state from one
// stereo block, latching clip flags at |sample| >= 1 (spec §4.6,
// original_source's meter_analyze).
func (m *LevelMeter) Analyze(left, right []Sample) {
	frames := len(left)
	if frames == 0 {
		return
	}

	var sumL, sumR float32
	var peakL, peakR float32

	for i := 0; i < frames; i++ {
		al := absf32(float32(left[i]))
		ar := absf32(float32(right[i]))

		sumL += float32(left[i]) * float32(left[i])
		sumR += float32(right[i]) * float32(right[i])

		if al > peakL {
			peakL = al
		}
		if ar > peakR {
			peakR = ar
		}
		if al >= 1 {
			m.clipL = true
		}
		if ar >= 1 {
			m.clipR = true
		}
	}

	m.rmsL = float32(math.Sqrt(float64(sumL / float32(frames))))
	m.rmsR = float32(math.Sqrt(float64(sumR / float32(frames))))

	if peakL > m.peakL {
		m.peakL = peakL
	} else {
		m.peakL *= m.PeakDecay
	}
	if peakR > m.peakR {
		m.peakR = peakR
	} else {
		m.peakR *= m.PeakDecay
	}

	m.updateHold(&m.peakHoldL, &m.holdCounterL, peakL, frames)
	m.updateHold(&m.peakHoldR, &m.holdCounterR, peakR, frames)

	m.historyL[m.historyPos] = m.peakL
	m.historyR[m.historyPos] = m.peakR
	m.historyPos = (m.historyPos + 1) % MeterHistorySize
}

func (m *LevelMeter) updateHold(hold *float32, counter *float32, peak float32, frames int) {
	if peak > *hold {
		*hold = peak
		*counter = m.HoldTime * m.sampleRate
	} else if *counter > 0 {
		*counter -= float32(frames)
	} else {
		*hold *= m.PeakDecay
	}
}

// LevelsDB returns peak and RMS levels in dBFS for both channels.
func (m *LevelMeter) LevelsDB() (peakL, peakR, rmsL, rmsR float32) {
	return linearToDB(m.peakL), linearToDB(m.peakR), linearToDB(m.rmsL), linearToDB(m.rmsR)
}

// PeakHold returns the latched peak-hold level for both channels.
func (m *LevelMeter) PeakHold() (left, right float32) {
	return m.peakHoldL, m.peakHoldR
}

// Clipped reports the latched per-channel clip-detected flags; call
// ResetClip to clear them.
func (m *LevelMeter) Clipped() (left, right bool) {
	return m.clipL, m.clipR
}

// ResetClip clears both channels' clip flags.
func (m *LevelMeter) ResetClip() {
	m.clipL = false
	m.clipR = false
}
