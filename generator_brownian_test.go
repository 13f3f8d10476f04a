package engine

import "testing"

func TestBrownian_StaysWithinBounds(t *testing.T) {
	b := NewBrownian(-1, 1, 5)
	for i := 0; i < 10000; i++ {
		p := b.Next()
		if p < -1.0001 || p > 1.0001 {
			t.Fatalf("step %d: position = %v, out of [-1,1]", i, p)
		}
	}
}

func TestBrownian_AttractsTowardTarget(t *testing.T) {
	b := NewBrownian(-10, 10, 3)
	b.Attraction = 0.9
	b.Target = 8
	b.StepSize = 0.01 // keep the random component small relative to attraction

	var last float32
	for i := 0; i < 500; i++ {
		last = b.Next()
	}
	if d := last - b.Target; d < -1 || d > 1 {
		t.Fatalf("final position = %v, want near target %v", last, b.Target)
	}
}

func TestBrownian_DeterministicForSameSeed(t *testing.T) {
	a := NewBrownian(0, 1, 77)
	b := NewBrownian(0, 1, 77)
	for i := 0; i < 200; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("step %d diverged for identical seeds", i)
		}
	}
}
