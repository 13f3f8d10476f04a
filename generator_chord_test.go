package engine

import "testing"

func TestChordProgression_NextReturnsKnownChordType(t *testing.T) {
	c := NewChordProgression(60, false, 11)
	for i := 0; i < 50; i++ {
		root, notes := c.Next()
		intervals := chordIntervals[c.CurrentType()]

		wantLen := 0
		for _, iv := range intervals {
			if iv < 0 {
				break
			}
			wantLen++
		}
		if len(notes) != wantLen {
			t.Fatalf("step %d: len(notes) = %d, want %d for chord type %v", i, len(notes), wantLen, c.CurrentType())
		}
		for j, iv := range intervals {
			if iv < 0 {
				break
			}
			if notes[j] != root+iv {
				t.Fatalf("step %d: notes[%d] = %d, want %d", i, j, notes[j], root+iv)
			}
		}
		if c.CurrentDegree() < 0 || c.CurrentDegree() > 7 {
			t.Fatalf("CurrentDegree() = %d, out of [0,7]", c.CurrentDegree())
		}
	}
}

func TestChordProgression_DeterministicForSameSeed(t *testing.T) {
	a := NewChordProgression(60, false, 42)
	b := NewChordProgression(60, false, 42)
	for i := 0; i < 20; i++ {
		rootA, notesA := a.Next()
		rootB, notesB := b.Next()
		if rootA != rootB || len(notesA) != len(notesB) {
			t.Fatalf("step %d diverged: (%d,%v) vs (%d,%v)", i, rootA, notesA, rootB, notesB)
		}
		for j := range notesA {
			if notesA[j] != notesB[j] {
				t.Fatalf("step %d note %d diverged: %d vs %d", i, j, notesA[j], notesB[j])
			}
		}
	}
}
