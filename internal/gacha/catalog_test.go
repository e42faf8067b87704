package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRequiresCommonItem(t *testing.T) {
	_, err := NewCatalog(without(fullItems(), Common))
	require.ErrorIs(t, err, ErrInvalidCatalog)
	assert.ErrorIs(t, err, ErrNoCommonItems)
}

func TestNewCatalogRejectsMalformedItems(t *testing.T) {
	bad := []Item{
		{ID: "", Rarity: Common, Category: CategoryWeapon},
		{ID: "x", Rarity: "Shiny", Category: CategoryWeapon},
		{ID: "x", Rarity: Common, Category: "Hat"},
		{ID: "x", Rarity: Common, Category: CategoryWeapon, BaseChance: 101},
		{ID: "x", Rarity: Common, Category: CategoryWeapon, SellValue: -1},
	}
	for _, it := range bad {
		_, err := NewCatalog(append(fullItems(), it))
		assert.ErrorIs(t, err, ErrInvalidCatalog, "%+v", it)
	}

	_, err := NewCatalog(append(fullItems(), item("rusty_sword", Common)))
	assert.ErrorContains(t, err, "duplicate")
}

func TestItemsOfRarityKeepsDeclarationOrder(t *testing.T) {
	c, err := NewCatalog(fullItems())
	require.NoError(t, err)

	got := c.ItemsOfRarity(Legendary)
	require.Len(t, got, 2)
	assert.Equal(t, "midas_hand", got[0].ID)
	assert.Equal(t, "fate_key", got[1].ID)

	// callers cannot reach into the catalog
	got[0].ID = "changed"
	assert.Equal(t, "midas_hand", c.ItemsOfRarity(Legendary)[0].ID)
}

func TestRandomItemOfRarity(t *testing.T) {
	c, err := NewCatalog(without(fullItems(), Exotic))
	require.NoError(t, err)

	_, ok := c.RandomItemOfRarity(Exotic, nil)
	assert.False(t, ok)

	rng := NewSeededRNG(8)
	seen := map[string]int{}
	for i := 0; i < 10000; i++ {
		it, ok := c.RandomItemOfRarity(Common, rng)
		require.True(t, ok)
		require.Equal(t, Common, it.Rarity)
		seen[it.ID]++
	}
	assert.Len(t, seen, 2)
	assert.InDelta(t, 5000, seen["rusty_sword"], 300)
}

func TestCatalogFilterAndLookup(t *testing.T) {
	items := fullItems()
	candy := item("rotten_candy", Common)
	candy.EventOnly = true
	c, err := NewCatalog(append(items, candy))
	require.NoError(t, err)

	assert.Equal(t, []Item{candy}, c.EventItems())
	assert.Len(t, c.Filter(func(it Item) bool { return it.Rarity == Common }), 3)

	got, ok := c.Lookup("zeus_bolt")
	assert.True(t, ok)
	assert.Equal(t, Divine, got.Rarity)
	_, ok = c.Lookup("nope")
	assert.False(t, ok)
	assert.Equal(t, len(items)+1, c.Len())
}
