// types.go
package game

import "github.com/xtding233/relic-gacha/internal/gacha"

// Raw config loaded from YAML; mirrors the files under games/.
type RawConfig struct {
	Version string       `yaml:"version"`
	Rates   *RatesConfig `yaml:"rates,omitempty"`
	Items   []gacha.Item `yaml:"items,omitempty"`
	Pool    *PoolConfig  `yaml:"pool,omitempty"`
	Notes   string       `yaml:"notes,omitempty"`
}

type RatesConfig struct {
	PityThresholds map[gacha.Rarity]int     `yaml:"pity_thresholds,omitempty"`
	BaseChances    map[gacha.Rarity]float64 `yaml:"base_chances,omitempty"`
}

// PoolConfig narrows a draw: an event luck bonus and tiers to skip.
type PoolConfig struct {
	Name      string         `yaml:"name,omitempty"`
	LuckBonus *float64       `yaml:"luck_bonus,omitempty"`
	Exclude   []gacha.Rarity `yaml:"exclude,omitempty"`
}

// DrawParams are the per-draw knobs handed to the roll engine.
type DrawParams struct {
	Pool      string         `json:"pool"`
	LuckBonus float64        `json:"luck_bonus"`
	Exclude   []gacha.Rarity `json:"exclude,omitempty"`
}

// Bundle is a resolved configuration ready to build an engine from.
type Bundle struct {
	Catalog *gacha.Catalog
	Rates   gacha.Rates
	Params  DrawParams
	Version string // effective config version for tracing
}
