package engine

import "testing"

// TestChromasynesthesia_NoteToColor covers spec §8 scenario 5: note 60
// (middle C, octave 5) maps to hue 0 deg / sat 0.8 / brightness 0.65,
// a dominantly red color with low, roughly equal green and blue.
func TestChromasynesthesia_NoteToColor(t *testing.T) {
	var cs Chromasynesthesia
	c := cs.NoteToColor(60)

	if c.R <= c.G || c.R <= c.B {
		t.Fatalf("NoteToColor(60) = %+v, want R dominant", c)
	}
	if c.R < 155 || c.R > 175 {
		t.Fatalf("NoteToColor(60).R = %d, want ~165", c.R)
	}
	if c.G < 25 || c.G > 40 {
		t.Fatalf("NoteToColor(60).G = %d, want ~33", c.G)
	}
	if c.B != c.G {
		t.Fatalf("NoteToColor(60) G=%d B=%d, want equal (hue 0 has zero blue chroma)", c.G, c.B)
	}
}

// TestChromasynesthesia_OctaveBrightens covers spec §4.6: brightness
// rises monotonically with octave for a fixed pitch class.
func TestChromasynesthesia_OctaveBrightens(t *testing.T) {
	var cs Chromasynesthesia
	low := cs.NoteToColor(24)  // pitch class 0, octave 2
	high := cs.NoteToColor(108) // pitch class 0, octave 9

	lumLow := int(low.R) + int(low.G) + int(low.B)
	lumHigh := int(high.R) + int(high.G) + int(high.B)
	if lumHigh <= lumLow {
		t.Fatalf("higher octave did not brighten: low=%+v high=%+v", low, high)
	}
}

// TestChromasynesthesia_HueRoundTrip covers spec §4.6's hsbToRGB /
// rgbToHSB pair used by ColorHarmony: converting a pure hue to RGB
// and back recovers approximately the same hue.
func TestChromasynesthesia_HueRoundTrip(t *testing.T) {
	for _, hue := range []float32{0, 60, 120, 180, 240, 300} {
		rgb := hsbToRGB(hue, 0.8, 0.65)
		gotHue, _, _ := rgbToHSB(rgb)
		diff := absf32(gotHue - hue)
		if diff > 180 {
			diff = 360 - diff
		}
		if diff > 2 {
			t.Fatalf("hue %v round-tripped to %v (diff %v)", hue, gotHue, diff)
		}
	}
}
