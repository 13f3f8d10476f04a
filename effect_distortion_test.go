package engine

import "testing"

func TestDistortion_HardClipBounded(t *testing.T) {
	d := NewDistortion(48000)
	d.Type = DistortHardClip
	d.Drive = 10
	d.Mix = 1

	for _, x := range []Sample{-5, -1, 0, 1, 5} {
		out := d.Process(x)
		if out < -1.0001 || out > 1.0001 {
			t.Fatalf("DistortHardClip(%v) = %v, out of [-1,1]", x, out)
		}
	}
}

func TestDistortion_MixZeroIsDry(t *testing.T) {
	d := NewDistortion(48000)
	d.Type = DistortFoldback
	d.Mix = 0

	for _, x := range []Sample{-0.7, 0, 0.3, 0.9} {
		if out := d.Process(x); out != x {
			t.Fatalf("Process(%v) at Mix=0 = %v, want dry passthrough", x, out)
		}
	}
}

func TestDistortion_BitcrushQuantizes(t *testing.T) {
	d := NewDistortion(48000)
	d.Type = DistortBitcrush
	d.BitDepth = 2 // coarse, 2-bit: quant levels at +/-1, +/-0.5 scale
	d.Mix = 1

	// Run a few samples through; output should be one of a small set
	// of quantized levels (not a continuum), though the tone filter
	// smooths it afterward so we only check it stays within range.
	for _, x := range []Sample{-0.9, -0.1, 0.1, 0.9} {
		out := d.Process(x)
		if out < -1.5 || out > 1.5 {
			t.Fatalf("bitcrush(%v) = %v, unexpectedly large", x, out)
		}
	}
}

func TestDistortion_RectifySettlesPositiveForNegativeDCInput(t *testing.T) {
	d := NewDistortion(48000)
	d.Type = DistortRectify
	d.Mix = 1
	d.Drive = 1
	d.toneFilter.SetCutoff(20000) // keep the tone filter near-transparent

	var out Sample
	for i := 0; i < 2000; i++ {
		out = d.Process(-0.8)
	}
	if out < 0 {
		t.Fatalf("rectified settle for constant negative input = %v, want >= 0", out)
	}
}
