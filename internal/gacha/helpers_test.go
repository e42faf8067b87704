package gacha

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRNG replays fixed values, then repeats tail forever.
type scriptedRNG struct {
	floats []float64
	tail   float64
	picks  int
}

func (s *scriptedRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return s.tail
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRNG) IntN(n int) int {
	s.picks++
	return 0
}

// alwaysMiss makes every percentage check fail (v = 99.99).
func alwaysMiss() *scriptedRNG { return &scriptedRNG{tail: 0.9999} }

func item(id string, r Rarity) Item {
	return Item{ID: id, Name: id, Rarity: r, Category: CategoryWeapon, BaseChance: 1, SellValue: 1}
}

// fullItems has at least one item for every tier.
func fullItems() []Item {
	return []Item{
		item("rusty_sword", Common),
		item("old_coin", Common),
		item("iron_dagger", Uncommon),
		item("sapphire_wand", Rare),
		item("shadow_blade", Epic),
		item("midas_hand", Legendary),
		item("fate_key", Legendary),
		item("blood_moon_scythe", Mythic),
		item("neon_katana", Exotic),
		item("zeus_bolt", Divine),
		item("developer_error", Impossible),
	}
}

func without(items []Item, tiers ...Rarity) []Item {
	var out []Item
	for _, it := range items {
		if !containsRarity(tiers, it.Rarity) {
			out = append(out, it)
		}
	}
	return out
}

func newTestEngine(t *testing.T, items []Item, rng RandomSource) *Engine {
	t.Helper()
	cat, err := NewCatalog(items)
	require.NoError(t, err)
	e, err := NewEngine(cat, DefaultRates(), rng)
	require.NoError(t, err)
	return e
}
