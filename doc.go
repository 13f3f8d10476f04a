// Package engine implements the core digital signal processing engine of
// a rule-free music workstation: oscillators, effects, a note-gated
// synth voice, a sample-accurate mixing transport, and a family of
// generative note sources, plus the visual analyzers that read the
// mixed output for a UI.
//
// The package draws a hard line between the realtime audio thread (the
// Engine.Process method and everything it calls) and control threads
// (everything else). See Engine for the concurrency contract.
package engine
