package gacha

// PityCounters maps each pity tier to the number of rolls since that tier was
// last awarded. The caller owns it; the engine only reads it.
type PityCounters map[Rarity]int

// NewPityCounters returns zeroed counters for every pity tier.
func NewPityCounters() PityCounters {
	pc := make(PityCounters, len(PityTiers))
	for _, t := range PityTiers {
		pc[t] = 0
	}
	return pc
}

// Get returns the counter for t; missing tiers count as 0.
func (pc PityCounters) Get(t Rarity) int { return pc[t] }

func (pc PityCounters) Clone() PityCounters {
	out := make(PityCounters, len(pc))
	for k, v := range pc {
		out[k] = v
	}
	return out
}

// Advance returns the counters after one roll:
// - every pity tier increments by one, awarded or not
// - then the reset tier, if it has a counter, goes back to 0
// The receiver is left untouched.
func (pc PityCounters) Advance(reset Rarity) PityCounters {
	next := pc.Clone()
	for _, t := range PityTiers {
		next[t] = pc[t] + 1
	}
	if reset.PityEligible() {
		next[reset] = 0
	}
	return next
}

// Due reports whether the counter for t has reached its threshold in rates.
func (pc PityCounters) Due(t Rarity, rates Rates) bool {
	th, ok := rates.PityThresholds[t]
	return ok && pc[t] >= th
}
