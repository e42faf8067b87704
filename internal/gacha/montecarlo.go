package gacha

import (
	"math"
	"sort"
)

// SimParams describes one simulated play session.
type SimParams struct {
	Luck     float64  // luck multiplier passed to every roll
	Rolls    int      // number of consecutive rolls
	Exclude  []Rarity // optional rarities skipped on every roll
	Seed     uint64   // seed for a reproducible run; 0 means the engine's own source
	Counters PityCounters
}

// Stats summarizes integer samples.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	Max    int     `json:"max"`
	// Optional: raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// SimReport is what a simulated session produced.
type SimReport struct {
	Rolls     int                `json:"rolls"`
	Counts    map[Rarity]int     `json:"counts"`
	Rates     map[Rarity]float64 `json:"rates"`
	PityHits  map[Rarity]int     `json:"pity_hits"`
	Fallbacks int                `json:"fallbacks"`
	// Gaps holds, per pity tier, the number of rolls between consecutive
	// awards of that tier (a counter reset by any means).
	Gaps     map[Rarity]Stats `json:"gaps"`
	Counters PityCounters     `json:"counters"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	// mean
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)
	stddev := math.Sqrt(variance)

	// percentiles
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  stddev,
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Max:     cp[n-1],
		Samples: xs,
	}
}

// Simulate runs p.Rolls rolls, threading the pity counters the same way a
// player session does: roll, then Advance with the reported reset.
func Simulate(e *Engine, p SimParams) SimReport {
	rng := e.rng
	if p.Seed != 0 {
		rng = NewSeededRNG(p.Seed)
	}
	counters := p.Counters
	if counters == nil {
		counters = NewPityCounters()
	}

	rep := SimReport{
		Counts:   make(map[Rarity]int, len(RarityOrder)),
		Rates:    make(map[Rarity]float64, len(RarityOrder)),
		PityHits: make(map[Rarity]int, len(PityTiers)),
		Gaps:     make(map[Rarity]Stats, len(PityTiers)),
	}
	gaps := make(map[Rarity][]int, len(PityTiers))

	for i := 0; i < p.Rolls; i++ {
		res := e.RollWith(rng, p.Luck, counters, p.Exclude...)
		next := counters.Advance(res.PityReset)
		for _, t := range PityTiers {
			if next[t] == 0 {
				gaps[t] = append(gaps[t], counters[t]+1)
			}
		}
		counters = next

		rep.Rolls++
		rep.Counts[res.Item.Rarity]++
		switch res.Source {
		case SourcePity:
			rep.PityHits[res.PityReset]++
		case SourceFallback:
			rep.Fallbacks++
		}
	}

	if rep.Rolls > 0 {
		for _, r := range RarityOrder {
			rep.Rates[r] = float64(rep.Counts[r]) / float64(rep.Rolls)
		}
	}
	for t, xs := range gaps {
		rep.Gaps[t] = calcStats(xs)
	}
	rep.Counters = counters
	return rep
}
