package engine

import "math"

// DistortionType selects the waveshaping algorithm a Distortion applies.
type DistortionType int

const (
	DistortSoftClip DistortionType = iota
	DistortHardClip
	DistortTube
	DistortFoldback
	DistortBitcrush
	DistortRectify
	DistortChebyshev
	DistortAsymmetric
)

// Distortion applies one of eight waveshaping algorithms followed by a
// tone-control lowpass (spec §4.2).
type Distortion struct {
	Type      DistortionType
	Drive     float32
	Mix       float32
	BitDepth  int
	Order     int
	Bias      float32

	toneFilter *StateVariableFilter
}

// NewDistortion returns a soft-clip distortion at unity drive, full
// wet mix, 8-bit crush depth, and a 3rd-order Chebyshev default order,
// with an 8kHz tone filter.
func NewDistortion(sampleRate float32) *Distortion {
	d := &Distortion{
		Type:     DistortSoftClip,
		Drive:    1,
		Mix:      1,
		BitDepth: 8,
		Order:    3,
	}
	d.toneFilter = NewStateVariableFilter(sampleRate)
	d.toneFilter.SetCutoff(8000)
	return d
}

func chebyshev(x Sample, order int) Sample {
	switch order {
	case 1:
		return x
	case 2:
		return 2*x*x - 1
	case 3:
		return 4*x*x*x - 3*x
	case 4:
		return 8*x*x*x*x - 8*x*x + 1
	case 5:
		return 16*x*x*x*x*x - 20*x*x*x + 5*x
	default:
		return x
	}
}

// Process waveshapes one sample, then applies the tone filter and
// dry/wet mix.
func (d *Distortion) Process(input Sample) Sample {
	in := input * d.Drive
	var out Sample

	switch d.Type {
	case DistortSoftClip:
		out = fastTanh(in)

	case DistortHardClip:
		out = clamp(in, -1, 1)

	case DistortTube:
		if in >= 0 {
			out = 1 - float32(math.Exp(-float64(in)))
		} else {
			out = -1 + float32(math.Exp(float64(in)))
		}
		out = out*0.9 + in*0.1

	case DistortFoldback:
		threshold := Sample(1)
		for in > threshold || in < -threshold {
			if in > threshold {
				in = 2*threshold - in
			}
			if in < -threshold {
				in = -2*threshold - in
			}
		}
		out = in

	case DistortBitcrush:
		quant := float32(math.Pow(2, float64(d.BitDepth-1)))
		out = float32(math.Round(float64(in*quant))) / quant

	case DistortRectify:
		out = Sample(math.Abs(float64(in)))

	case DistortChebyshev:
		out = chebyshev(clamp(in, -1, 1), d.Order)

	case DistortAsymmetric:
		out = fastTanh(in+d.Bias) - fastTanh(d.Bias)

	default:
		out = in
	}

	out = d.toneFilter.Process(out)

	return lerp(input, out, d.Mix)
}
