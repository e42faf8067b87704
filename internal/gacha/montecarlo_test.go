package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcStats(t *testing.T) {
	s := calcStats([]int{4, 1, 3, 2})
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	assert.InDelta(t, 1.25, s.Var, 1e-9)
	assert.InDelta(t, 2.5, s.P50, 1e-9)
	assert.Equal(t, 4, s.Max)
	assert.Equal(t, Stats{}, calcStats(nil))
}

func TestSimulateIsReproducible(t *testing.T) {
	e := newTestEngine(t, fullItems(), nil)
	p := SimParams{Luck: 1, Rolls: 5000, Seed: 77}
	a := Simulate(e, p)
	b := Simulate(e, p)
	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.Counters, b.Counters)
}

func TestSimulateAccounting(t *testing.T) {
	e := newTestEngine(t, fullItems(), nil)
	rep := Simulate(e, SimParams{Luck: 0.1, Rolls: 20000, Seed: 4})

	total := 0
	for _, c := range rep.Counts {
		total += c
	}
	require.Equal(t, 20000, total)
	assert.Equal(t, 20000, rep.Rolls)

	// low luck leaves pity doing the work
	assert.Positive(t, rep.PityHits[Mythic])
	assert.Positive(t, rep.PityHits[Rare])
	assert.LessOrEqual(t, rep.Gaps[Mythic].Max, DefaultRates().Threshold(Mythic)+1)
	assert.LessOrEqual(t, rep.Counters[Mythic], DefaultRates().Threshold(Mythic))
}

func TestSimulateExclusion(t *testing.T) {
	e := newTestEngine(t, fullItems(), nil)
	rep := Simulate(e, SimParams{Luck: 5, Rolls: 3000, Seed: 9, Exclude: []Rarity{Legendary}})
	assert.Zero(t, rep.Counts[Legendary])
	assert.Zero(t, rep.PityHits[Legendary])
}
