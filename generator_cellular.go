package engine

// CellularMaxWidth bounds CellularAutomaton's cell row, matching
// original_source's CELLULAR_MAX_WIDTH.
const CellularMaxWidth = 64

// CellularAutomaton is a one-dimensional elementary cellular automaton
// used as a rhythm trigger source: each cell's next value is read from
// an 8-bit Wolfram rule number indexed by its 3-neighbour
// (left,center,right) pattern, with cyclic boundary wrap (spec §4.5).
type CellularAutomaton struct {
	Rule int // 0-255

	width int
	cells [CellularMaxWidth]bool
	next  [CellularMaxWidth]bool
	step  int64
	rng   xorshift32
}

// NewCellularAutomaton returns an automaton of the given width
// (clamped to CellularMaxWidth) and rule, seeded with a single live
// cell at the center.
func NewCellularAutomaton(width, rule int) *CellularAutomaton {
	width = clampInt(width, 1, CellularMaxWidth)
	ca := &CellularAutomaton{Rule: rule & 0xFF, width: width, rng: newXorshift32(12345)}
	ca.cells[width/2] = true
	return ca
}

// Width reports the automaton's configured cell count.
func (ca *CellularAutomaton) Width() int { return ca.width }

// Randomize reseeds every cell independently live with probability
// density, using the automaton's own RNG (deterministic given seed).
func (ca *CellularAutomaton) Randomize(density float32) {
	for i := 0; i < ca.width; i++ {
		ca.cells[i] = ca.rng.float01() < density
	}
}

// SetSeed reseeds the automaton's internal RNG (used by Randomize),
// for deterministic reproduction independent of construction order.
func (ca *CellularAutomaton) SetSeed(seed uint32) {
	ca.rng = newXorshift32(seed)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Step advances the automaton one generation: every cell's next state
// is bit (left<<2 | center<<1 | right) of Rule, with cyclic wrap at
// the edges.
func (ca *CellularAutomaton) Step() {
	for i := 0; i < ca.width; i++ {
		left := ca.cells[(i-1+ca.width)%ca.width]
		center := ca.cells[i]
		right := ca.cells[(i+1)%ca.width]
		pattern := b2i(left)<<2 | b2i(center)<<1 | b2i(right)
		ca.next[i] = (ca.Rule>>uint(pattern))&1 != 0
	}
	copy(ca.cells[:ca.width], ca.next[:ca.width])
	ca.step++
}

// GetTriggers writes the first n cells (n clamped to the automaton's
// width) as booleans into triggers.
func (ca *CellularAutomaton) GetTriggers(triggers []bool) {
	n := len(triggers)
	if n > ca.width {
		n = ca.width
	}
	for i := 0; i < n; i++ {
		triggers[i] = ca.cells[i]
	}
}
