package engine

// ColorHarmony derives a chord from an RGB color: hue selects the
// root pitch class, brightness selects major/minor quality, and
// saturation layers on extended tones (spec §4.5).
type ColorHarmony struct {
	Octave int
}

// NewColorHarmony returns a mapper at the given base octave.
func NewColorHarmony(octave int) *ColorHarmony {
	return &ColorHarmony{Octave: octave}
}

// Chord converts c to a root note and its chord tones: hue/30 plus
// octave*12 gives the root; brightness > 0.5 yields a major triad,
// else minor; saturation > 0.5 adds a 7th (major7 if bright, minor7
// otherwise); saturation > 0.75 additionally adds a 9th (spec §4.5).
func (h *ColorHarmony) Chord(c RGB) (root int, notes []int) {
	hue, saturation, brightness := rgbToHSB(c)

	root = int(hue/30) + h.Octave*12
	major := brightness > 0.5

	var third, fifth int
	if major {
		third, fifth = 4, 7
	} else {
		third, fifth = 3, 7
	}
	notes = []int{root, root + third, root + fifth}

	if saturation > 0.5 {
		if major {
			notes = append(notes, root+11)
		} else {
			notes = append(notes, root+10)
		}
	}
	if saturation > 0.75 {
		notes = append(notes, root+14)
	}

	return root, notes
}
