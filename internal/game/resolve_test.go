package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

func TestBuild(t *testing.T) {
	l, _ := newTestLoader(t)
	cfg, err := l.LoadMerged("relic", "haunted")
	require.NoError(t, err)

	b, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Catalog.Len())
	assert.Equal(t, "2", b.Version)
	assert.Equal(t, "haunted", b.Params.Pool)
	assert.InDelta(t, 0.2, b.Params.LuckBonus, 1e-12)
	assert.Equal(t, 5.0, b.Rates.BaseChances[gacha.Epic])

	_, err = gacha.NewEngine(b.Catalog, b.Rates, gacha.NewSeededRNG(1))
	assert.NoError(t, err)
}

func TestBuildRejectsInvalid(t *testing.T) {
	_, err := Build(RawConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestResolveOverrides(t *testing.T) {
	l, _ := newTestLoader(t)

	dp, err := l.Resolve("relic", "haunted", Overrides{})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, dp.LuckBonus, 1e-12)

	bonus := 0.3
	extra := []gacha.Rarity{gacha.Divine, gacha.Impossible}
	dp, err = l.Resolve("relic", "haunted", Overrides{LuckBonus: &bonus, Exclude: &extra})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dp.LuckBonus, 1e-12)
	assert.Equal(t, []gacha.Rarity{gacha.Impossible, gacha.Divine}, dp.Exclude)
}

func TestResolveRejectsCommonExclusion(t *testing.T) {
	l, _ := newTestLoader(t)
	bad := []gacha.Rarity{gacha.Common}
	_, err := l.Resolve("relic", "", Overrides{Exclude: &bad})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	neg := -1.0
	_, err = l.Resolve("relic", "", Overrides{LuckBonus: &neg})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestResolveUnknownPool(t *testing.T) {
	l, _ := newTestLoader(t)
	_, err := l.Resolve("relic", "missing", Overrides{})
	assert.ErrorIs(t, err, ErrUnknownPool)
}
