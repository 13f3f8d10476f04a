package engine

import "math"

// RGB is an 8-bit-per-channel sRGB color, the wire shape for
// Chromasynesthesia's note-to-color mapping and for PatternNote.Color
// (spec §4.6).
type RGB struct {
	R, G, B uint8
}

// hsbToRGB converts hue (degrees, wrapped to [0,360)), saturation, and
// brightness (both [0,1]) to 8-bit RGB, ported from original_source's
// hsb_to_rgb.
func hsbToRGB(hue, saturation, brightness float32) RGB {
	h := float32(math.Mod(float64(hue), 360))
	if h < 0 {
		h += 360
	}

	c := brightness * saturation
	x := c * (1 - absf32(float32(math.Mod(float64(h/60), 2))-1))
	m := brightness - c

	var rf, gf, bf float32
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return RGB{
		R: uint8(clamp((rf+m)*255, 0, 255)),
		G: uint8(clamp((gf+m)*255, 0, 255)),
		B: uint8(clamp((bf+m)*255, 0, 255)),
	}
}

// rgbToHSB is the inverse conversion, used by ColorHarmony to derive a
// musical key from an RGB input.
func rgbToHSB(c RGB) (hue, saturation, brightness float32) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255

	maxV := maxf32(r, maxf32(g, b))
	minV := minf32(r, minf32(g, b))
	delta := maxV - minV

	brightness = maxV
	if maxV > 0 {
		saturation = delta / maxV
	}

	if delta == 0 {
		hue = 0
		return
	}
	switch maxV {
	case r:
		hue = 60 * float32(math.Mod(float64((g-b)/delta), 6))
	case g:
		hue = 60 * ((b-r)/delta + 2)
	default:
		hue = 60 * ((r-g)/delta + 4)
	}
	if hue < 0 {
		hue += 360
	}
	return
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Chromasynesthesia is a deterministic MIDI-note -> sRGB mapping: hue
// is the pitch class times 30 degrees, saturation is pinned at 0.8,
// and brightness rises with octave (spec §4.6).
type Chromasynesthesia struct{}

// NoteToColor maps a MIDI note to its synesthesia color.
func (Chromasynesthesia) NoteToColor(note int) RGB {
	pitchClass := ((note % 12) + 12) % 12
	octave := note / 12

	hue := float32(pitchClass) * 30
	saturation := float32(0.8)
	brightness := clamp(0.3+float32(octave)/10*0.7, 0, 1)

	return hsbToRGB(hue, saturation, brightness)
}

// FrequencyToColor converts a frequency in Hz to its nearest MIDI
// note's synesthesia color.
func (c Chromasynesthesia) FrequencyToColor(freqHz float32) RGB {
	midi := int(math.Round(69 + 12*math.Log2(float64(freqHz)/440)))
	return c.NoteToColor(midi)
}

// SpectrumToColors maps each magnitude bin of a spectrum to a color:
// sub-20Hz bins render dark gray, ultrasonic (>20kHz) bins render
// white, and audible bins take their frequency's synesthesia color
// scaled by the bin's magnitude (spec §4.6, original_source's
// chroma_spectrum_to_colors).
func (c Chromasynesthesia) SpectrumToColors(magnitudes []float32, sampleRate float32) []RGB {
	bins := len(magnitudes)
	if bins == 0 {
		return nil
	}
	binFreq := sampleRate / float32(bins*2)

	colors := make([]RGB, bins)
	for i, mag := range magnitudes {
		freq := float32(i) * binFreq
		switch {
		case freq < 20:
			colors[i] = RGB{R: 30, G: 30, B: 30}
		case freq > 20000:
			colors[i] = RGB{R: 255, G: 255, B: 255}
		default:
			base := c.FrequencyToColor(freq)
			scale := clamp(mag*10, 0, 1)
			colors[i] = RGB{
				R: uint8(float32(base.R) * scale),
				G: uint8(float32(base.G) * scale),
				B: uint8(float32(base.B) * scale),
			}
		}
	}
	return colors
}
