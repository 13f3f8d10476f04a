package engine

// EffectChainCapacity bounds the number of slots in an EffectChain.
const EffectChainCapacity = 16

// stereoEffect is implemented by every effect type an EffectChain can
// host; mono effects adapt via the per-sample processing in
// EffectChain.Process.
type stereoEffect interface {
	ProcessStereo(left, right []Sample)
}

// monoEffect processes one channel sample at a time; EffectChain runs
// it independently across the left and right buffers.
type monoEffect interface {
	Process(input Sample) Sample
}

// EffectSlot is one entry in an EffectChain.
type EffectSlot struct {
	Name    string
	Bypass  bool
	stereo  stereoEffect
	mono    monoEffect
	sidechainAware bool
	compressor *Compressor
}

// EffectChain runs a fixed-capacity ordered list of effects over a
// stereo buffer, honoring per-slot bypass (spec §4.2, §4.4).
type EffectChain struct {
	slots []EffectSlot
}

// NewEffectChain returns an empty chain.
func NewEffectChain() *EffectChain {
	return &EffectChain{slots: make([]EffectSlot, 0, EffectChainCapacity)}
}

// AddStereo appends a stereo-native effect (delay, reverb, chorus).
func (c *EffectChain) AddStereo(name string, e stereoEffect) error {
	if len(c.slots) >= EffectChainCapacity {
		return ErrEffectCapacity
	}
	c.slots = append(c.slots, EffectSlot{Name: name, stereo: e})
	return nil
}

// AddMono appends a per-channel effect (filter, distortion, phaser,
// bitcrusher) applied independently to left and right.
func (c *EffectChain) AddMono(name string, e monoEffect) error {
	if len(c.slots) >= EffectChainCapacity {
		return ErrEffectCapacity
	}
	c.slots = append(c.slots, EffectSlot{Name: name, mono: e})
	return nil
}

// AddCompressor appends a compressor, sidechained from the
// (left+right)/2 mono sum of each frame.
func (c *EffectChain) AddCompressor(name string, comp *Compressor) error {
	if len(c.slots) >= EffectChainCapacity {
		return ErrEffectCapacity
	}
	c.slots = append(c.slots, EffectSlot{Name: name, compressor: comp, sidechainAware: true})
	return nil
}

// SetBypass toggles bypass on the named slot, if present.
func (c *EffectChain) SetBypass(name string, bypass bool) {
	for i := range c.slots {
		if c.slots[i].Name == name {
			c.slots[i].Bypass = bypass
			return
		}
	}
}

// Process runs every non-bypassed slot in order over the buffer.
func (c *EffectChain) Process(left, right []Sample) {
	for i := range c.slots {
		slot := &c.slots[i]
		if slot.Bypass {
			continue
		}
		switch {
		case slot.stereo != nil:
			slot.stereo.ProcessStereo(left, right)
		case slot.compressor != nil:
			for j := range left {
				sc := (left[j] + right[j]) * 0.5
				left[j] = slot.compressor.Process(left[j], sc)
				right[j] = slot.compressor.Process(right[j], sc)
			}
		case slot.mono != nil:
			for j := range left {
				left[j] = slot.mono.Process(left[j])
				right[j] = slot.mono.Process(right[j])
			}
		}
	}
}
