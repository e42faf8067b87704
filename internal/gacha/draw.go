package gacha

import "errors"

var ErrInvalidChance = errors.New("invalid chance; must be a finite percentage")

// RollPercent draws one value v in [0,100) and reports whether v <= chance.
// A non-positive chance never hits, but the draw is still consumed so seeded
// streams stay aligned whatever the luck multiplier is.
func RollPercent(chance float64, rng RandomSource) (bool, error) {
	if err := validateChance(chance); err != nil {
		return false, err
	}
	v := orDefault(rng).Float64() * 100
	if chance <= 0 {
		return false, nil
	}
	return v <= chance, nil
}
