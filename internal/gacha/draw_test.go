package gacha

import (
	"math"
	"testing"
)

func TestRollPercentBounds(t *testing.T) {
	got, err := RollPercent(0, NewSeededRNG(1))
	if err != nil || got {
		t.Fatalf("chance=0 should never hit; got=%v err=%v", got, err)
	}
	got, err = RollPercent(100, NewSeededRNG(1))
	if err != nil || !got {
		t.Fatalf("chance=100 should always hit; got=%v err=%v", got, err)
	}
	if _, err := RollPercent(math.NaN(), nil); err == nil {
		t.Fatalf("NaN chance must error")
	}
	if _, err := RollPercent(math.Inf(1), nil); err == nil {
		t.Fatalf("Inf chance must error")
	}
}

func TestRollPercentZeroStillConsumesDraw(t *testing.T) {
	rng := &scriptedRNG{floats: []float64{0, 0.5}}
	if hit, _ := RollPercent(0, rng); hit {
		t.Fatalf("zero chance hit on v=0")
	}
	if len(rng.floats) != 1 {
		t.Fatalf("expected one draw consumed, %d left", len(rng.floats))
	}
}

func TestRollPercentStatApprox(t *testing.T) {
	const chance = 30.0
	const n = 100000
	rng := NewSeededRNG(42)
	hit := 0
	for i := 0; i < n; i++ {
		ok, err := RollPercent(chance, rng)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			hit++
		}
	}
	freq := float64(hit) / float64(n)
	// should be around 0.3
	if diff := freq - chance/100; diff > 0.01 || diff < -0.01 {
		t.Fatalf("freq=%f not close to %f", freq, chance/100)
	}
}
