package engine

import "strings"

// LSystemMaxLength caps the rewritten string length (spec §3:
// unbounded-growth guard; original_source's LSYSTEM_MAX_STR).
const LSystemMaxLength = 4096

// lsystemRule is one predecessor-to-successor rewrite rule.
type lsystemRule struct {
	pred byte
	succ string
}

// LSystem is a string-rewriting (Lindenmayer) melody generator: an
// axiom is iteratively rewritten by a rule table, capped at
// LSystemMaxLength characters, and the resulting string is walked to
// emit a melody via turtle-graphics-style note stepping (spec §4.5).
type LSystem struct {
	NoteStep int

	axiom     string
	current   string
	rules     []lsystemRule
	iteration int
}

// NewLSystem returns a generator at the given axiom with no rules and
// the original_source default step of 2 semitones.
func NewLSystem(axiom string) *LSystem {
	return &LSystem{NoteStep: 2, axiom: axiom, current: axiom}
}

// AddRule registers a predecessor->successor rewrite rule.
func (l *LSystem) AddRule(pred byte, succ string) {
	l.rules = append(l.rules, lsystemRule{pred: pred, succ: succ})
}

// Iterate rewrites the current string once, stopping early if the
// result would exceed LSystemMaxLength (spec §3: reject expansions
// that would overflow rather than growing silently).
func (l *LSystem) Iterate() {
	var b strings.Builder
	b.Grow(len(l.current) * 2)

	for i := 0; i < len(l.current); i++ {
		c := l.current[i]
		matched := false
		for _, r := range l.rules {
			if r.pred == c {
				if b.Len()+len(r.succ) > LSystemMaxLength {
					l.current = b.String()
					l.iteration++
					return
				}
				b.WriteString(r.succ)
				matched = true
				break
			}
		}
		if !matched {
			if b.Len()+1 > LSystemMaxLength {
				break
			}
			b.WriteByte(c)
		}
	}

	l.current = b.String()
	l.iteration++
}

// Iteration reports how many Iterate calls have completed.
func (l *LSystem) Iteration() int { return l.iteration }

// String returns the current rewritten string.
func (l *LSystem) String() string { return l.current }

// ToMelody walks the current string and emits a note sequence: F/G
// emits the current note and advances it by NoteStep; + forces
// NoteStep positive; - forces it negative; [ transposes down an
// octave; ] transposes up an octave (spec §4.5).
func (l *LSystem) ToMelody() []int {
	var notes []int
	note := 60
	step := l.NoteStep

	for i := 0; i < len(l.current); i++ {
		switch l.current[i] {
		case 'F', 'G':
			notes = append(notes, note)
			note += step
		case '+':
			if step < 0 {
				step = -step
			}
		case '-':
			if step > 0 {
				step = -step
			}
		case '[':
			note -= 12
		case ']':
			note += 12
		}
	}

	return notes
}
