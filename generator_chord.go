package engine

// ChordType selects an interval set for ChordProgression.Next.
type ChordType int

const (
	ChordMajor ChordType = iota
	ChordMinor
	ChordDiminished
	ChordMajor7
	ChordMinor7
	ChordDominant7
)

// chordIntervals mirrors original_source's CHORD_INTERVALS table; -1
// terminates a shorter interval list.
var chordIntervals = [...][4]int{
	ChordMajor:      {0, 4, 7, -1},
	ChordMinor:      {0, 3, 7, -1},
	ChordDiminished: {0, 3, 6, -1},
	ChordMajor7:     {0, 4, 7, 11},
	ChordMinor7:     {0, 3, 7, 10},
	ChordDominant7:  {0, 4, 7, 10},
}

// chordProgressionDegrees and chordProgressionTypes encode the fixed
// I-IV-V-I major progression from original_source's chord_gen_next.
var chordProgressionDegrees = [8]int{0, 5, 7, 0, 4, 5, 7, 0}
var chordProgressionTypes = [8]ChordType{
	ChordMajor, ChordMajor, ChordMajor, ChordMajor,
	ChordMinor, ChordMajor, ChordMajor, ChordMajor,
}

// ChordProgression walks a fixed major I-IV-V-I degree progression,
// picking a random degree each call and emitting the chord built from
// the key root plus that degree's interval set (spec §4.5).
type ChordProgression struct {
	KeyRoot int
	IsMinor bool

	currentDegree int
	currentType   ChordType
	rng           xorshift32
}

// NewChordProgression returns a progression rooted at root, seeded
// with the given RNG seed.
func NewChordProgression(root int, minor bool, seed uint32) *ChordProgression {
	t := ChordMajor
	if minor {
		t = ChordMinor
	}
	return &ChordProgression{
		KeyRoot:     root,
		IsMinor:     minor,
		currentType: t,
		rng:         newXorshift32(seed),
	}
}

// Next picks a progression step and returns the chord's root note and
// constituent notes (root + each interval in the chosen chord type).
func (c *ChordProgression) Next() (root int, notes []int) {
	step := c.rng.intRange(0, 7)
	root = c.KeyRoot + chordProgressionDegrees[step]
	chordType := chordProgressionTypes[step]

	intervals := chordIntervals[chordType]
	for _, iv := range intervals {
		if iv < 0 {
			break
		}
		notes = append(notes, root+iv)
	}

	c.currentDegree = step
	c.currentType = chordType
	return root, notes
}

// CurrentDegree and CurrentType report the progression step picked by
// the most recent Next call.
func (c *ChordProgression) CurrentDegree() int     { return c.currentDegree }
func (c *ChordProgression) CurrentType() ChordType { return c.currentType }
