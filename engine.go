package engine

import "sync"

// MaxTracks bounds the engine's track list (spec §3).
const MaxTracks = 64

// Engine owns the track list, master effect chain, transport, and
// analyzer sinks, and drives the whole mixing pipeline from one
// Process call per audio-device callback (spec §4.4).
//
// Process and everything it calls runs on the realtime audio thread
// and must not allocate, lock a blocking mutex, or perform I/O (spec
// §5). Structural edits — AddTrack, RemoveTrack — take structureMu, a
// control-thread-only lock; Process takes it too, but only ever as an
// uncontended fast path once a topology change has settled, matching
// the teacher's own SoundChip.mutex sync.RWMutex pattern rather than
// a channel-based handoff.
type Engine struct {
	MasterGain float32

	sampleRate float32
	blockSize  int

	structureMu sync.RWMutex
	tracks      []*Track

	master    *EffectChain
	transport *Transport

	monoScratch                  []Sample
	trackScratchL, trackScratchR []Sample

	Scope      *Scope
	Spectrum   *Spectrum
	LevelMeter *LevelMeter
	Chromagram *Chromagram
	Phase      *PhaseCorrelator
}

// NewEngine constructs an engine for the given sample rate and
// nominal block size, with all buffers and analyzer state
// preallocated (spec §3: "construction initializes all buffers...
// deterministically").
func NewEngine(sampleRate float32, blockSize int) (*Engine, error) {
	if sampleRate <= 0 || blockSize <= 0 {
		return nil, ErrInvalidConfig
	}

	e := &Engine{
		MasterGain: 1,
		sampleRate: sampleRate,
		blockSize:  blockSize,
		master:     NewEffectChain(),
		transport:  NewTransport(sampleRate),

		monoScratch:   make([]Sample, 0, blockSize),
		trackScratchL: make([]Sample, blockSize),
		trackScratchR: make([]Sample, blockSize),

		Scope:      NewScope(),
		Spectrum:   NewSpectrum(sampleRate),
		LevelMeter: NewLevelMeter(sampleRate),
		Chromagram: NewChromagram(sampleRate, SpectrumFFTSize),
		Phase:      NewPhaseCorrelator(),
	}
	return e, nil
}

// Transport exposes the engine's transport for control-thread use
// (play/stop/tempo/loop edits).
func (e *Engine) Transport() *Transport { return e.transport }

// Master exposes the master effect chain for configuration.
func (e *Engine) Master() *EffectChain { return e.master }

// AddTrack appends a new track at unity volume/centered pan, returning
// its index, or ErrTrackCapacity if the engine already holds
// MaxTracks tracks. Safe to call only from a control thread; serialize
// against other structural edits externally or rely on the internal
// lock (spec §5).
func (e *Engine) AddTrack(name string, seed uint32) (int, error) {
	e.structureMu.Lock()
	defer e.structureMu.Unlock()

	if len(e.tracks) >= MaxTracks {
		return -1, ErrTrackCapacity
	}
	e.tracks = append(e.tracks, NewTrack(name, e.sampleRate, seed))
	return len(e.tracks) - 1, nil
}

// RemoveTrack deletes the track at index, or returns ErrInvalidTrack
// if index is out of range.
func (e *Engine) RemoveTrack(index int) error {
	e.structureMu.Lock()
	defer e.structureMu.Unlock()

	if index < 0 || index >= len(e.tracks) {
		return ErrInvalidTrack
	}
	e.tracks = append(e.tracks[:index], e.tracks[index+1:]...)
	return nil
}

// Track returns the track at index, or nil if out of range.
func (e *Engine) Track(index int) *Track {
	e.structureMu.RLock()
	defer e.structureMu.RUnlock()

	if index < 0 || index >= len(e.tracks) {
		return nil
	}
	return e.tracks[index]
}

// TrackCount reports the current number of tracks.
func (e *Engine) TrackCount() int {
	e.structureMu.RLock()
	defer e.structureMu.RUnlock()
	return len(e.tracks)
}

func (e *Engine) zero(buf []Sample) {
	for i := range buf {
		buf[i] = 0
	}
}

// Process renders one audio-callback block of N = len(left) frames
// into left/right, implementing the full mixing pipeline of spec
// §4.4: snapshot transport, zero-mix if stopped (but still feed
// analyzers so the UI stays live), render and pan each non-muted,
// solo-respecting track through its effect chain, run the master
// chain, apply master gain and soft-clip, advance the transport, and
// feed the mixed block to every analyzer.
func (e *Engine) Process(left, right []Sample) {
	e.structureMu.RLock()
	defer e.structureMu.RUnlock()

	n := len(left)
	playing := e.transport.State == TransportPlaying

	e.zero(left)
	e.zero(right)

	if playing {
		anySolo := false
		for _, t := range e.tracks {
			if t.Solo {
				anySolo = true
				break
			}
		}

		if cap(e.trackScratchL) < n {
			e.trackScratchL = make([]Sample, n)
			e.trackScratchR = make([]Sample, n)
		}
		trackL := e.trackScratchL[:n]
		trackR := e.trackScratchR[:n]

		for _, t := range e.tracks {
			if t.Mute {
				continue
			}
			if anySolo && !t.Solo {
				continue
			}

			t.ProcessBlock(trackL, trackR)

			gain := t.Volume
			pan := t.Pan
			leftGain := gain * (1 - maxf32(0, pan))
			rightGain := gain * (1 + minf32(0, pan))

			for i := 0; i < n; i++ {
				left[i] += trackL[i] * leftGain
				right[i] += trackR[i] * rightGain
			}
		}
	}

	e.master.Process(left, right)

	for i := 0; i < n; i++ {
		left[i] = softClip(sanitize(left[i]) * e.MasterGain)
		right[i] = softClip(sanitize(right[i]) * e.MasterGain)
	}

	e.transport.Advance(n)

	e.Scope.Write(left, right)

	e.monoScratch = e.monoScratch[:0]
	for i := 0; i < n; i++ {
		e.monoScratch = append(e.monoScratch, (left[i]+right[i])*0.5)
	}
	e.Spectrum.Write(e.monoScratch)
	e.Chromagram.Update(e.Spectrum.Magnitudes())
	e.LevelMeter.Analyze(left, right)
	e.Phase.Analyze(left, right)
}
