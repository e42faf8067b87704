package gacha

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRates = errors.New("invalid rates")

// Rates holds the static pity threshold table and the base chance table.
// Example: Mythic threshold 350 → the roll after 350 misses is a guaranteed Mythic.
type Rates struct {
	PityThresholds map[Rarity]int     `yaml:"pity_thresholds" json:"pity_thresholds"`
	BaseChances    map[Rarity]float64 `yaml:"base_chances" json:"base_chances"` // percentage per tier
}

// DefaultRates returns the stock configuration.
func DefaultRates() Rates {
	return Rates{
		PityThresholds: map[Rarity]int{
			Rare:      40,
			Legendary: 100,
			Mythic:    350,
		},
		BaseChances: map[Rarity]float64{
			Common:     65,
			Uncommon:   20,
			Rare:       10,
			Epic:       3.5,
			Legendary:  1,
			Mythic:     0.3,
			Exotic:     0.1,
			Divine:     0.05,
			Impossible: 0.009,
		},
	}
}

// Validate checks that thresholds exist for exactly the pity tiers and grow
// strictly with rarity, and that every tier has a chance in [0,100].
func (r Rates) Validate() error {
	var errs []string

	for t := range r.PityThresholds {
		if !t.PityEligible() {
			errs = append(errs, fmt.Sprintf("pity_thresholds: %q has no pity counter", t))
		}
	}
	prev := 0
	for _, t := range PityTiers {
		th, ok := r.PityThresholds[t]
		if !ok {
			errs = append(errs, fmt.Sprintf("pity_thresholds: missing %s", t))
			continue
		}
		if th <= 0 {
			errs = append(errs, fmt.Sprintf("pity_thresholds: %s must be >= 1", t))
		}
		if th <= prev {
			errs = append(errs, fmt.Sprintf("pity_thresholds: %s (%d) must exceed the lower tier (%d)", t, th, prev))
		}
		prev = th
	}

	for t := range r.BaseChances {
		if !t.Valid() {
			errs = append(errs, fmt.Sprintf("base_chances: unknown rarity %q", t))
		}
	}
	for _, t := range RarityOrder {
		c, ok := r.BaseChances[t]
		if !ok {
			errs = append(errs, fmt.Sprintf("base_chances: missing %s", t))
			continue
		}
		if !validPercent(c) {
			errs = append(errs, fmt.Sprintf("base_chances: %s must be in [0,100]", t))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRates, strings.Join(errs, "; "))
	}
	return nil
}

// Threshold returns the pity threshold of t, or 0 if t has none.
func (r Rates) Threshold(t Rarity) int { return r.PityThresholds[t] }

// EffectiveChance scales the base chance of t by luck. The rarest tier is
// exempt, which caps the best achievable rate for it.
func (r Rates) EffectiveChance(t Rarity, luck float64) float64 {
	c := r.BaseChances[t]
	if t == rarestTier() {
		return c
	}
	return c * luck
}

// Clone returns a deep copy.
func (r Rates) Clone() Rates {
	out := Rates{
		PityThresholds: make(map[Rarity]int, len(r.PityThresholds)),
		BaseChances:    make(map[Rarity]float64, len(r.BaseChances)),
	}
	for k, v := range r.PityThresholds {
		out.PityThresholds[k] = v
	}
	for k, v := range r.BaseChances {
		out.BaseChances[k] = v
	}
	return out
}
