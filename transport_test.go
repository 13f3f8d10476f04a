package engine

import "testing"

func TestTransport_TempoClampRange(t *testing.T) {
	tr := NewTransport(48000)

	tr.SetTempo(10)
	if tr.Tempo != 20 {
		t.Fatalf("SetTempo(10) = %v, want clamped to 20", tr.Tempo)
	}

	tr.SetTempo(1000)
	if tr.Tempo != 400 {
		t.Fatalf("SetTempo(1000) = %v, want clamped to 400", tr.Tempo)
	}

	tr.SetTempo(140)
	if tr.Tempo != 140 {
		t.Fatalf("SetTempo(140) = %v, want 140 unclamped", tr.Tempo)
	}
}

// TestTransport_LoopIdempotence covers spec §8: advancing exactly one
// loop-length's worth of samples returns the beat position to
// loop_start, independent of block size granularity.
func TestTransport_LoopIdempotence(t *testing.T) {
	const sr = 48000

	tr := NewTransport(sr)
	tr.SetTempo(120)
	tr.SetLoop(1, 5, true) // 4-beat loop starting at beat 1
	tr.Play()

	samplesPerBeat := (60 / tr.Tempo) * sr
	loopLenSamples := int(4 * samplesPerBeat)

	// Seed the playhead into the loop region first.
	tr.Advance(int(samplesPerBeat)) // one beat in, beatPosition == 1 == LoopStart

	tr.Advance(loopLenSamples)

	if d := tr.BeatPosition() - tr.LoopStart; d < -0.01 || d > 0.01 {
		t.Fatalf("beat position = %v, want ~%v (loop start)", tr.BeatPosition(), tr.LoopStart)
	}
}

func TestTransport_StoppedDoesNotAdvance(t *testing.T) {
	tr := NewTransport(48000)
	tr.Advance(48000)
	if tr.CurrentSample() != 0 || tr.BeatPosition() != 0 {
		t.Fatalf("stopped transport advanced: sample=%d beat=%v", tr.CurrentSample(), tr.BeatPosition())
	}
}

func TestTransport_StopRewinds(t *testing.T) {
	tr := NewTransport(48000)
	tr.Play()
	tr.Advance(48000)
	tr.Stop()
	if tr.CurrentSample() != 0 || tr.BeatPosition() != 0 {
		t.Fatalf("Stop did not rewind: sample=%d beat=%v", tr.CurrentSample(), tr.BeatPosition())
	}
	if tr.State != TransportStopped {
		t.Fatalf("State = %v, want TransportStopped", tr.State)
	}
}
