package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

func validRaw() RawConfig {
	r := gacha.DefaultRates()
	return RawConfig{
		Rates: &RatesConfig{PityThresholds: r.PityThresholds, BaseChances: r.BaseChances},
		Items: []gacha.Item{{ID: "rusty_sword", Name: "Rusty Sword", Rarity: gacha.Common, Category: gacha.CategoryWeapon}},
	}
}

func TestValidateRaw(t *testing.T) {
	require.NoError(t, ValidateRaw(validRaw()))

	tests := []struct {
		name   string
		mutate func(*RawConfig)
		want   string
	}{
		{"missing rates", func(c *RawConfig) { c.Rates = nil }, "rates is required"},
		{"no items", func(c *RawConfig) { c.Items = nil }, "items must not be empty"},
		{"no common", func(c *RawConfig) { c.Items[0].Rarity = gacha.Rare }, "at least one Common item"},
		{"thresholds not increasing", func(c *RawConfig) { c.Rates.PityThresholds[gacha.Mythic] = 50 }, "must exceed the lower tier"},
		{"negative luck bonus", func(c *RawConfig) {
			v := -0.1
			c.Pool = &PoolConfig{LuckBonus: &v}
		}, "pool.luck_bonus"},
		{"excludes common", func(c *RawConfig) { c.Pool = &PoolConfig{Exclude: []gacha.Rarity{gacha.Common}} }, "cannot be excluded"},
		{"unknown exclude", func(c *RawConfig) { c.Pool = &PoolConfig{Exclude: []gacha.Rarity{"Shiny"}} }, "unknown rarity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validRaw()
			tt.mutate(&cfg)
			err := ValidateRaw(cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateRawCollectsAll(t *testing.T) {
	err := ValidateRaw(RawConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rates is required; items must not be empty")
}
