package engine

// vowelFormants holds the first three formant frequencies (Hz) for the
// vowels A, E, I, O, U, sampled from a typical adult speaker (spec
// §4.2).
var vowelFormants = [5][3]float32{
	{800, 1150, 2900}, // A
	{350, 2000, 2800}, // E
	{270, 2140, 2950}, // I
	{450, 800, 2830},  // O
	{325, 700, 2700},  // U
}

// FormantFilter runs three parallel bandpass filters tuned to a
// continuously blended vowel position, producing vocal-tract-like
// resonances (spec §4.2).
type FormantFilter struct {
	filters    [3]*StateVariableFilter
	gains      [3]float32
	vowelBlend float32
}

// NewFormantFilter returns a formant filter parked on vowel "A".
func NewFormantFilter(sampleRate float32) *FormantFilter {
	f := &FormantFilter{}
	for i := range f.filters {
		f.filters[i] = NewStateVariableFilter(sampleRate)
		f.filters[i].Mode = FilterBandpass
		f.gains[i] = 1.0 / 3.0
	}
	f.SetVowel(0)
	return f
}

// SetVowel blends continuously across the five-vowel table; 0=A,
// 1=E, 2=I, 3=O, 4=U, with linear interpolation between neighbors.
func (f *FormantFilter) SetVowel(vowel float32) {
	f.vowelBlend = clamp(vowel, 0, 4)

	v1 := int(f.vowelBlend)
	v2 := v1 + 1
	if v2 > 4 {
		v2 = 4
	}
	frac := f.vowelBlend - float32(v1)

	for i := 0; i < 3; i++ {
		freq := lerp(vowelFormants[v1][i], vowelFormants[v2][i], frac)
		f.filters[i].SetCutoff(freq)
		f.filters[i].SetResonance(0.8)
	}
}

// Process sums the three formant bands for one sample.
func (f *FormantFilter) Process(input Sample) Sample {
	var out Sample
	for i := 0; i < 3; i++ {
		out += f.filters[i].Process(input) * f.gains[i]
	}
	return out
}
