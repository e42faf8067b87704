// resolve.go
package game

import (
	"fmt"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

// Overrides carries per-request adjustments applied on top of a pool.
type Overrides struct {
	LuckBonus *float64
	Exclude   *[]gacha.Rarity
}

type Resolver interface {
	// Returns the draw parameters of a pool with overrides applied.
	Resolve(game, pool string, o Overrides) (DrawParams, error)
}

// Build validates a merged config and turns it into engine inputs.
func Build(cfg RawConfig) (Bundle, error) {
	if err := ValidateRaw(cfg); err != nil {
		return Bundle{}, err
	}
	cat, err := gacha.NewCatalog(cfg.Items)
	if err != nil {
		return Bundle{}, fmt.Errorf("build catalog: %w", err)
	}
	return Bundle{
		Catalog: cat,
		Rates: gacha.Rates{
			PityThresholds: cfg.Rates.PityThresholds,
			BaseChances:    cfg.Rates.BaseChances,
		}.Clone(),
		Params:  paramsOf(cfg.Pool),
		Version: cfg.Version,
	}, nil
}

func paramsOf(p *PoolConfig) DrawParams {
	if p == nil {
		return DrawParams{}
	}
	dp := DrawParams{Pool: p.Name, Exclude: append([]gacha.Rarity(nil), p.Exclude...)}
	if p.LuckBonus != nil {
		dp.LuckBonus = *p.LuckBonus
	}
	return dp
}

// Resolve merges the pool and validates it before applying overrides.
func (l *Loader) Resolve(game, pool string, o Overrides) (DrawParams, error) {
	cfg, err := l.LoadMerged(game, pool)
	if err != nil {
		return DrawParams{}, err
	}
	if err := ValidateRaw(cfg); err != nil {
		return DrawParams{}, err
	}
	dp := paramsOf(cfg.Pool)
	if o.LuckBonus != nil {
		if *o.LuckBonus < 0 {
			return DrawParams{}, fmt.Errorf("%w: luck bonus must be >= 0", ErrInvalidConfig)
		}
		dp.LuckBonus += *o.LuckBonus
	}
	if o.Exclude != nil {
		for _, r := range *o.Exclude {
			if !r.Valid() || r == gacha.RarityOrder[0] {
				return DrawParams{}, fmt.Errorf("%w: cannot exclude %q", ErrInvalidConfig, r)
			}
		}
		dp.Exclude = mergeExclude(dp.Exclude, *o.Exclude)
	}
	return dp, nil
}

func mergeExclude(a, b []gacha.Rarity) []gacha.Rarity {
	out := append([]gacha.Rarity(nil), a...)
	for _, r := range b {
		dup := false
		for _, x := range out {
			if x == r {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}
