package engine

import "math"

// WavetableSize is the sample count of each table.
const WavetableSize = 2048

// MaxWavetables bounds the number of tables a WavetableOscillator owns.
const MaxWavetables = 16

// WavetableOscillator bilinearly interpolates between adjacent tables
// (by a continuous table-position parameter) and between adjacent
// samples within each table (spec §4.1).
type WavetableOscillator struct {
	tables     [MaxWavetables][WavetableSize]float32
	numTables  int
	sampleRate float32
	frequency  float32
	phase      float32

	TablePosition float32
}

// NewWavetableOscillator builds the default bank: sine, and
// band-limited saw/square/triangle built from the first 16 harmonics.
func NewWavetableOscillator(sampleRate float32) *WavetableOscillator {
	o := &WavetableOscillator{sampleRate: sampleRate, frequency: 440}
	o.generateDefaultTables()
	return o
}

func (o *WavetableOscillator) generateDefaultTables() {
	for i := 0; i < WavetableSize; i++ {
		phase := float64(i) / float64(WavetableSize)
		o.tables[0][i] = float32(math.Sin(phase * 2 * math.Pi))
	}
	for i := 0; i < WavetableSize; i++ {
		phase := float64(i) / float64(WavetableSize)
		var saw float64
		for h := 1; h <= 16; h++ {
			saw += (1.0 / float64(h)) * math.Sin(float64(h)*phase*2*math.Pi)
		}
		o.tables[1][i] = float32(saw) * 0.5
	}
	for i := 0; i < WavetableSize; i++ {
		phase := float64(i) / float64(WavetableSize)
		var sq float64
		for h := 1; h <= 16; h += 2 {
			sq += (1.0 / float64(h)) * math.Sin(float64(h)*phase*2*math.Pi)
		}
		o.tables[2][i] = float32(sq) * 0.8
	}
	for i := 0; i < WavetableSize; i++ {
		phase := float64(i) / float64(WavetableSize)
		var tri float64
		for h := 1; h <= 16; h += 2 {
			sign := 1.0
			if ((h-1)/2)%2 != 0 {
				sign = -1.0
			}
			tri += (1.0 / float64(h*h)) * math.Sin(float64(h)*phase*2*math.Pi) * sign
		}
		o.tables[3][i] = float32(tri) * 0.8
	}
	o.numTables = 4
}

// SetFrequency sets the oscillator's base frequency in Hz.
func (o *WavetableOscillator) SetFrequency(freq float32) {
	o.frequency = freq
}

// SetPosition clamps the continuous table-position parameter to the
// valid range of populated tables.
func (o *WavetableOscillator) SetPosition(pos float32) {
	o.TablePosition = clamp(pos, 0, float32(o.numTables-1))
}

// Process returns one bilinearly-interpolated sample and advances phase.
func (o *WavetableOscillator) Process() Sample {
	tableA := int(o.TablePosition)
	tableB := tableA + 1
	if tableB >= o.numTables {
		tableB = tableA
	}
	tableFrac := o.TablePosition - float32(tableA)

	index := o.phase * float32(WavetableSize)
	idxA := int(index) % WavetableSize
	idxB := (idxA + 1) % WavetableSize
	frac := index - float32(int(index))

	valA := lerp(o.tables[tableA][idxA], o.tables[tableA][idxB], frac)
	valB := lerp(o.tables[tableB][idxA], o.tables[tableB][idxB], frac)
	out := lerp(valA, valB, tableFrac)

	o.phase += o.frequency / o.sampleRate
	for o.phase >= 1 {
		o.phase -= 1
	}
	return out
}
