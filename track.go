package engine

// MaxVoicesPerTrack bounds a Track's polyphony. When a NoteOn arrives
// with no idle voice available, the oldest active voice is stolen.
const MaxVoicesPerTrack = 16

// Track is one mixer channel: a polyphonic voice pool plus a
// background oscillator bank (for drones and generative layers not
// tied to note events), run through its own effect chain and mixed
// into the master bus by volume and pan (spec §4.4).
type Track struct {
	Name   string
	Volume float32 // 0..2
	Pan    float32 // -1 (left) .. +1 (right)
	Mute   bool
	Solo   bool

	oscillators *OscillatorBank
	effects     *EffectChain
	events      EventQueue

	voices    [MaxVoicesPerTrack]*Voice
	voiceAge  [MaxVoicesPerTrack]uint64
	ageCounter uint64

	sampleRate float32
	seed       uint32
}

// NewTrack builds an empty track at unity volume and centered pan.
func NewTrack(name string, sampleRate float32, seed uint32) *Track {
	t := &Track{
		Name:        name,
		Volume:      1,
		Pan:         0,
		oscillators: NewOscillatorBank(),
		effects:     NewEffectChain(),
		sampleRate:  sampleRate,
		seed:        seed,
	}
	for i := range t.voices {
		t.voices[i] = NewVoice(sampleRate, seed+uint32(i)*7919+1)
	}
	return t
}

// Oscillators exposes the track's background oscillator bank for
// generative or drone layers not addressed by note events.
func (t *Track) Oscillators() *OscillatorBank {
	return t.oscillators
}

// Effects exposes the track's effect chain for configuration.
func (t *Track) Effects() *EffectChain {
	return t.effects
}

// NoteOn queues a note-on event for the render thread. Safe to call
// from a control thread.
func (t *Track) NoteOn(note int, velocity float32) {
	t.events.Push(NoteEvent{Kind: EventNoteOn, Note: note, Velocity: velocity})
}

// NoteOff queues a note-off event for the render thread.
func (t *Track) NoteOff(note int) {
	t.events.Push(NoteEvent{Kind: EventNoteOff, Note: note})
}

// AllNotesOff queues an immediate release of every active voice.
func (t *Track) AllNotesOff() {
	t.events.Push(NoteEvent{Kind: EventAllNotesOff})
}

func (t *Track) applyEvent(e NoteEvent) {
	switch e.Kind {
	case EventNoteOn:
		v := t.allocateVoice(e.Note)
		v.NoteOn(e.Note, e.Velocity)
	case EventNoteOff:
		for _, v := range t.voices {
			if v.active && v.Note() == e.Note {
				v.NoteOff()
			}
		}
	case EventAllNotesOff:
		for _, v := range t.voices {
			v.NoteOff()
		}
	}
}

// allocateVoice returns an idle voice, or steals the oldest active one
// if the pool is full.
func (t *Track) allocateVoice(note int) *Voice {
	for i, v := range t.voices {
		if v.Idle() {
			t.ageCounter++
			t.voiceAge[i] = t.ageCounter
			return v
		}
	}

	oldest := 0
	for i := 1; i < len(t.voices); i++ {
		if t.voiceAge[i] < t.voiceAge[oldest] {
			oldest = i
		}
	}
	t.ageCounter++
	t.voiceAge[oldest] = t.ageCounter
	return t.voices[oldest]
}

// ProcessBlock drains pending note events, renders the voice pool and
// background oscillators into left/right, filters through the track's
// effect chain, and returns the two buffers ready for master-bus
// mixing (caller applies Volume/Pan).
func (t *Track) ProcessBlock(left, right []Sample) {
	t.events.Drain(t.applyEvent)

	for i := range left {
		left[i] = 0
		right[i] = 0
	}

	for _, v := range t.voices {
		if v.Idle() {
			continue
		}
		for i := range left {
			s := v.Process()
			left[i] += s
			right[i] += s
		}
	}

	for i := range left {
		bl, br := t.oscillators.Process()
		left[i] += bl
		right[i] += br
	}

	t.effects.Process(left, right)
}
