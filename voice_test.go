package engine

import "testing"

func TestVoice_IdleBeforeNoteOn(t *testing.T) {
	v := NewVoice(48000, 1)
	if !v.Idle() {
		t.Fatalf("new voice Idle() = false, want true")
	}
}

func TestVoice_NoteOnActivatesAndSetsNote(t *testing.T) {
	v := NewVoice(48000, 1)
	v.NoteOn(60, 1)

	if v.Idle() {
		t.Fatalf("Idle() = true immediately after NoteOn, want false")
	}
	if v.Note() != 60 {
		t.Fatalf("Note() = %d, want 60", v.Note())
	}
}

func TestVoice_NoteOffEventuallyReturnsToIdle(t *testing.T) {
	v := NewVoice(48000, 1)
	v.NoteOn(60, 1)
	v.NoteOff()

	// Release is 300ms default; run well beyond that at 48kHz.
	for i := 0; i < 48000*2; i++ {
		v.Process()
	}
	if !v.Idle() {
		t.Fatalf("Idle() = false after NoteOff and 2s of processing, want true (envelope should have released)")
	}
}

func TestVoice_ProcessOutputBounded(t *testing.T) {
	v := NewVoice(48000, 7)
	v.NoteOn(69, 1)
	for i := 0; i < 48000; i++ {
		out := v.Process()
		if out < -1.5 || out > 1.5 {
			t.Fatalf("sample %d = %v, unexpectedly unbounded", i, out)
		}
	}
}

func TestVoice_SilentWhenIdleAndNeverTriggered(t *testing.T) {
	v := NewVoice(48000, 1)
	for i := 0; i < 100; i++ {
		if out := v.Process(); out != 0 {
			t.Fatalf("sample %d = %v, want 0 (no NoteOn issued yet, amp envelope gate closed at zero level)", i, out)
		}
	}
}
