//go:build headless

// player_headless.go - no-op audio output for headless builds/tests,
// mirroring the teacher's audio_backend_headless.go dual-backend split.
package main

import (
	"sync/atomic"

	engine "github.com/mitchlabeetch/Intuitive-Music"
)

// Player is a no-op stand-in for the oto backend, letting the demo
// host build and run its engine without a real audio device.
type Player struct {
	eng atomic.Pointer[engine.Engine]
}

// NewPlayer returns a headless player; sampleRate is accepted for
// interface parity with the oto-backed Player and otherwise unused.
func NewPlayer(sampleRate int) (*Player, error) {
	return &Player{}, nil
}

// SetEngine stores the engine driving (non-existent) playback.
func (p *Player) SetEngine(e *engine.Engine) {
	p.eng.Store(e)
}

// Start is a no-op in the headless backend.
func (p *Player) Start() {}

// Close is a no-op in the headless backend.
func (p *Player) Close() error { return nil }
