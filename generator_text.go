package engine

// TextMelody maps character codes to notes. In scale mode each
// character's degree and octave are derived from its code against a
// fixed scale; in raw mode the code maps directly into two octaves
// above middle C (spec §4.5).
type TextMelody struct {
	Scale      []int
	OctaveBase int
	Raw        bool
}

// NewTextMelody returns a mapper using the major scale and octave
// base 4.
func NewTextMelody() *TextMelody {
	return &TextMelody{Scale: []int{0, 2, 4, 5, 7, 9, 11}, OctaveBase: 4}
}

// noteForCode maps a single character code to a MIDI note per the
// mapper's current mode.
func (t *TextMelody) noteForCode(code int) int {
	if t.Raw {
		return 36 + code%48
	}
	scaleSize := len(t.Scale)
	degree := code % scaleSize
	octave := t.OctaveBase + (code/scaleSize)%3 - 1
	return octave*12 + t.Scale[degree]
}

// ToMelody maps each byte of text to a note via noteForCode, in order.
func (t *TextMelody) ToMelody(text string) []int {
	notes := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		notes[i] = t.noteForCode(int(text[i]))
	}
	return notes
}
