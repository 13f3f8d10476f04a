package engine

import "math"

// TransportState is the playhead's current mode.
type TransportState int

const (
	TransportStopped TransportState = iota
	TransportPlaying
	TransportPaused
)

// Transport tracks tempo, time signature, and playhead position in
// both samples and musical beats, plus block-granular loop bounds
// (spec §4.4, §3).
type Transport struct {
	State TransportState

	Tempo        float32 // BPM, clamped to [20, 400]
	TimeSigNum   int
	TimeSigDenom int

	LoopEnabled bool
	LoopStart   float32 // beats
	LoopEnd     float32 // beats

	sampleRate    float32
	currentSample int64
	beatPosition  float32
}

// NewTransport returns a stopped transport at 120 BPM, 4/4, loop off.
func NewTransport(sampleRate float32) *Transport {
	return &Transport{
		State:        TransportStopped,
		Tempo:        120,
		TimeSigNum:   4,
		TimeSigDenom: 4,
		LoopEnd:      4,
		sampleRate:   sampleRate,
	}
}

// Play starts or resumes playback without resetting position.
func (t *Transport) Play() {
	t.State = TransportPlaying
}

// Pause halts playback, preserving position.
func (t *Transport) Pause() {
	t.State = TransportPaused
}

// Stop halts playback and rewinds to the start.
func (t *Transport) Stop() {
	t.State = TransportStopped
	t.currentSample = 0
	t.beatPosition = 0
}

// SetTempo sets the tempo in BPM, clamped to [20, 400].
func (t *Transport) SetTempo(bpm float32) {
	t.Tempo = clamp(bpm, 20, 400)
}

// SetLoop sets the loop region in beats and enables looping. end is
// clamped above start.
func (t *Transport) SetLoop(start, end float32, enabled bool) {
	if end < start {
		end = start
	}
	t.LoopStart = start
	t.LoopEnd = end
	t.LoopEnabled = enabled
}

// SetPosition seeks to an absolute sample position and recomputes the
// corresponding beat position from the current tempo.
func (t *Transport) SetPosition(sample int64) {
	t.currentSample = sample
	samplesPerBeat := (60 / t.Tempo) * t.sampleRate
	t.beatPosition = float32(sample) / samplesPerBeat
}

// CurrentSample returns the playhead position in samples.
func (t *Transport) CurrentSample() int64 {
	return t.currentSample
}

// BeatPosition returns the playhead position in beats.
func (t *Transport) BeatPosition() float32 {
	return t.beatPosition
}

// Advance moves the playhead forward by frames samples; a no-op
// unless the transport is playing. Loop wrap is checked once per call
// (block granularity, spec §4.4 step 6) — no mid-block wrap.
func (t *Transport) Advance(frames int) {
	if t.State != TransportPlaying {
		return
	}
	t.currentSample += int64(frames)
	samplesPerBeat := (60 / t.Tempo) * t.sampleRate
	t.beatPosition = float32(t.currentSample) / samplesPerBeat

	if t.LoopEnabled && t.LoopEnd > t.LoopStart && t.beatPosition >= t.LoopEnd {
		length := t.LoopEnd - t.LoopStart
		offset := float32(math.Mod(float64(t.beatPosition-t.LoopStart), float64(length)))
		t.beatPosition = t.LoopStart + offset
		t.currentSample = int64(math.Round(float64(t.beatPosition) * float64(samplesPerBeat)))
	}
}
