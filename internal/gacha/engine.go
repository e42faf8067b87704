package gacha

import "fmt"

// Source tells which stage of the roll produced the item.
type Source string

const (
	SourcePity     Source = "pity"
	SourceWeighted Source = "weighted"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one roll.
type Result struct {
	Item      Item   `json:"item"`
	PityReset Rarity `json:"pity_reset,omitempty"` // NoRarity when nothing resets
	Source    Source `json:"source"`
}

// Engine is the stateless roll algorithm over a fixed catalog and rate table.
type Engine struct {
	catalog *Catalog
	rates   Rates
	rng     RandomSource
}

// NewEngine validates the configuration once; a bad catalog or rate table
// must stop startup rather than surface on a roll.
func NewEngine(catalog *Catalog, rates Rates, rng RandomSource) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidCatalog)
	}
	if len(catalog.byRarity[lowestTier()]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, ErrNoCommonItems)
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Engine{catalog: catalog, rates: rates.Clone(), rng: orDefault(rng)}, nil
}

func (e *Engine) Catalog() *Catalog { return e.catalog }

func (e *Engine) Rates() Rates { return e.rates.Clone() }

// Roll selects exactly one item using the engine's random source.
//
// Preconditions, not checked: luck >= 0, counters >= 0, and the lowest tier
// is never in exclude (the fallback always targets it).
func (e *Engine) Roll(luck float64, counters PityCounters, exclude ...Rarity) Result {
	return e.RollWith(e.rng, luck, counters, exclude...)
}

// RollWith is Roll with an explicit random source.
func (e *Engine) RollWith(rng RandomSource, luck float64, counters PityCounters, exclude ...Rarity) Result {
	rng = orDefault(rng)

	// 1) hard guarantees, rarest pity tier first; only one can fire
	for i := len(PityTiers) - 1; i >= 0; i-- {
		t := PityTiers[i]
		if containsRarity(exclude, t) || !counters.Due(t, e.rates) {
			continue
		}
		if it, ok := e.catalog.RandomItemOfRarity(t, rng); ok {
			return Result{Item: it, PityReset: t, Source: SourcePity}
		}
	}

	// 2) independent trials from rarest to most common
	for _, t := range rarestFirst() {
		if containsRarity(exclude, t) {
			continue
		}
		hit, err := RollPercent(e.rates.EffectiveChance(t, luck), rng)
		if err != nil || !hit {
			continue
		}
		if it, ok := e.catalog.RandomItemOfRarity(t, rng); ok {
			return Result{Item: it, PityReset: resetFor(t), Source: SourceWeighted}
		}
	}

	// 3) fallback; NewEngine guarantees this pool is non-empty
	it, _ := e.catalog.RandomItemOfRarity(lowestTier(), rng)
	return Result{Item: it, PityReset: NoRarity, Source: SourceFallback}
}

// resetFor maps an awarded tier to the counter it clears. Tiers without a
// counter (the lowest tier included) clear nothing.
func resetFor(t Rarity) Rarity {
	if !t.PityEligible() {
		return NoRarity
	}
	return t
}
