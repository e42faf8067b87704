package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPityCountersAdvance(t *testing.T) {
	pc := NewPityCounters()

	// nine misses
	for i := 0; i < 9; i++ {
		pc = pc.Advance(NoRarity)
	}
	assert.Equal(t, PityCounters{Rare: 9, Legendary: 9, Mythic: 9}, pc)

	// a Rare award resets only Rare, after the shared increment
	pc = pc.Advance(Rare)
	assert.Equal(t, PityCounters{Rare: 0, Legendary: 10, Mythic: 10}, pc)

	// tiers without a counter reset nothing
	pc = pc.Advance(Epic)
	assert.Equal(t, PityCounters{Rare: 1, Legendary: 11, Mythic: 11}, pc)
}

func TestPityCountersAdvanceDoesNotMutate(t *testing.T) {
	pc := PityCounters{Rare: 3, Legendary: 4, Mythic: 5}
	_ = pc.Advance(Mythic)
	assert.Equal(t, PityCounters{Rare: 3, Legendary: 4, Mythic: 5}, pc)
}

func TestPityCountersMissingTiers(t *testing.T) {
	var pc PityCounters
	assert.Equal(t, 0, pc.Get(Mythic))
	assert.Equal(t, PityCounters{Rare: 1, Legendary: 1, Mythic: 0}, pc.Advance(Mythic))
}

func TestPityCountersDue(t *testing.T) {
	rates := DefaultRates()
	pc := PityCounters{Rare: 39, Legendary: 100, Mythic: 351}
	assert.False(t, pc.Due(Rare, rates))
	assert.True(t, pc.Due(Legendary, rates))
	assert.True(t, pc.Due(Mythic, rates))
	assert.False(t, pc.Due(Epic, rates))
}
