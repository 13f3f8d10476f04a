//go:build !headless

// player_oto.go - oto v3 stereo audio output, the default audio device
// callback boundary for the demo host.
package main

import (
	"sync/atomic"

	"github.com/ebitengine/oto/v3"

	engine "github.com/mitchlabeetch/Intuitive-Music"
)

// Player adapts an *engine.Engine to oto's io.Reader-driven callback,
// interleaving its stereo Process output into little-endian float32
// frames (spec §6: "The sample format is 32-bit float; channel count
// is exactly 2").
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	eng    atomic.Pointer[engine.Engine]

	left, right []engine.Sample
}

// NewPlayer opens an oto context at sampleRate, stereo float32.
func NewPlayer(sampleRate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	p := &Player{ctx: ctx}
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// SetEngine atomically swaps the engine driving playback. Safe to call
// from a control thread while Read runs concurrently on oto's internal
// audio goroutine (spec §5: single-word atomic handoff).
func (p *Player) SetEngine(e *engine.Engine) {
	p.eng.Store(e)
}

// Read fills p with interleaved stereo float32 frames rendered by the
// current engine, or silence if none is set yet.
func (p *Player) Read(p2 []byte) (int, error) {
	e := p.eng.Load()
	if e == nil {
		for i := range p2 {
			p2[i] = 0
		}
		return len(p2), nil
	}

	frames := len(p2) / 8 // 2 channels * 4 bytes
	if cap(p.left) < frames {
		p.left = make([]engine.Sample, frames)
		p.right = make([]engine.Sample, frames)
	}
	left := p.left[:frames]
	right := p.right[:frames]

	e.Process(left, right)

	for i := 0; i < frames; i++ {
		putFloat32LE(p2[i*8:], left[i])
		putFloat32LE(p2[i*8+4:], right[i])
	}
	return frames * 8, nil
}

// Start begins playback.
func (p *Player) Start() { p.player.Play() }

// Close stops playback and releases the player.
func (p *Player) Close() error {
	p.player.Close()
	return nil
}
