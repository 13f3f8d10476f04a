package engine

// MidiEvent is a single MIDI-style message an ExternalProcessor's
// ProcessMIDI receives alongside an audio block (spec §6).
type MidiEvent struct {
	FrameOffset int
	Status      byte
	Data1       byte
	Data2       byte
}

// ExternalProcessor is the abstract contract an out-of-core plugin
// node (CLAP/VST3/Faust/PureData, or any future host-supplied
// processor) must satisfy to slot into an EffectChain alongside the
// built-in effects (spec §6: "the core defines an abstract 'processor
// node' interface they may later satisfy"). The core never implements
// this itself; it only defines the shape and treats a conforming node
// identically to a built-in effect slot.
type ExternalProcessor interface {
	// Init prepares the processor for the given sample rate and the
	// largest block size it will ever be asked to process.
	Init(sampleRate float32, maxBlock int) error

	// Activate and Deactivate bracket a period of active processing,
	// letting the processor allocate/release resources outside the
	// realtime path.
	Activate()
	Deactivate()

	// Reset clears internal state (filter memory, envelope followers)
	// without a full re-Init.
	Reset()

	// ProcessAudio runs one block: inputs and outputs are per-channel
	// sample slices, every slice len(frames) long. Implementations
	// must not allocate or block.
	ProcessAudio(inputs, outputs [][]Sample, frames int)

	// ProcessMIDI delivers the events queued for this block, in
	// ascending FrameOffset order.
	ProcessMIDI(events []MidiEvent)

	// GetParameter and SetParameter expose the processor's parameter
	// set by index; out-of-range indices are a no-op/zero return
	// rather than a panic (spec §7: argument-domain errors never
	// panic the audio thread).
	GetParameter(index int) float32
	SetParameter(index int, value float32)
}

// externalProcessorSlot adapts an ExternalProcessor to the
// EffectChain's stereo interface, mirroring built-in stereo effects
// (spec §6: "The core treats such nodes identically to built-in
// effect slots").
type externalProcessorSlot struct {
	proc ExternalProcessor
	in   [2][]Sample
	out  [2][]Sample
}

// newExternalProcessorSlot wraps proc for insertion into an
// EffectChain via AddStereo.
func newExternalProcessorSlot(proc ExternalProcessor) *externalProcessorSlot {
	return &externalProcessorSlot{proc: proc}
}

// ProcessStereo satisfies stereoEffect by routing left/right through
// the wrapped processor's two-channel ProcessAudio.
func (s *externalProcessorSlot) ProcessStereo(left, right []Sample) {
	s.in[0], s.in[1] = left, right
	s.out[0], s.out[1] = left, right
	s.proc.ProcessAudio(s.in[:], s.out[:], len(left))
}

// AddExternalProcessor appends an ExternalProcessor-satisfying node to
// the chain, treating it as any other stereo slot (spec §6).
func (c *EffectChain) AddExternalProcessor(name string, proc ExternalProcessor) error {
	return c.AddStereo(name, newExternalProcessorSlot(proc))
}
