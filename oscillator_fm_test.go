package engine

import "testing"

func TestFMOscillator_UnisonCarriersSumToBoundedOutput(t *testing.T) {
	o := NewFMOscillator(48000, 3)
	o.SetFrequency(440)

	for i := 0; i < 4800; i++ {
		out := o.Process()
		if out < -1.1 || out > 1.1 {
			t.Fatalf("sample %d = %v, expected unison carriers (equal amplitude summing to 1) to stay near [-1,1]", i, out)
		}
	}
}

func TestFMOscillator_OperatorCountClamped(t *testing.T) {
	o := NewFMOscillator(48000, 100)
	if o.NumOperators != FMMaxOperators {
		t.Fatalf("NumOperators = %d, want clamped to %d", o.NumOperators, FMMaxOperators)
	}
}

func TestFMOscillator_ModulationChangesOutput(t *testing.T) {
	a := NewFMOscillator(48000, 2)
	a.SetFrequency(220)

	b := NewFMOscillator(48000, 2)
	b.SetFrequency(220)
	b.SetModulation(1, 0, 2.0) // operator 1 modulates operator 0

	var diverged bool
	for i := 0; i < 200; i++ {
		if a.Process() != b.Process() {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Fatalf("expected modulation routing to change output vs an unmodulated network")
	}
}
