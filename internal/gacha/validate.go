package gacha

import (
	"math"
)

func validateChance(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return ErrInvalidChance
	}
	return nil
}

// validPercent reports whether c is a finite value in [0,100].
func validPercent(c float64) bool {
	return validateChance(c) == nil && c >= 0 && c <= 100
}
