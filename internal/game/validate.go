package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

var ErrInvalidConfig = errors.New("config validation failed")

// ValidateRaw checks semantic constraints of a merged RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	// rates
	if cfg.Rates == nil {
		errs = append(errs, "rates is required")
	} else {
		rates := gacha.Rates{PityThresholds: cfg.Rates.PityThresholds, BaseChances: cfg.Rates.BaseChances}
		if err := rates.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}

	// items
	if len(cfg.Items) == 0 {
		errs = append(errs, "items must not be empty")
	} else {
		hasLowest := false
		for _, it := range cfg.Items {
			if it.Rarity == gacha.RarityOrder[0] {
				hasLowest = true
				break
			}
		}
		if !hasLowest {
			errs = append(errs, fmt.Sprintf("items must include at least one %s item", gacha.RarityOrder[0]))
		}
	}

	// pool
	if cfg.Pool != nil {
		if cfg.Pool.LuckBonus != nil && *cfg.Pool.LuckBonus < 0 {
			errs = append(errs, "pool.luck_bonus must be >= 0")
		}
		for i, r := range cfg.Pool.Exclude {
			if !r.Valid() {
				errs = append(errs, fmt.Sprintf("pool.exclude[%d]: unknown rarity %q", i, r))
			}
			// the fallback always awards the lowest tier
			if r == gacha.RarityOrder[0] {
				errs = append(errs, fmt.Sprintf("pool.exclude[%d]: %s cannot be excluded", i, r))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}
	return nil
}
