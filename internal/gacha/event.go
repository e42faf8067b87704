package gacha

import (
	"errors"
	"fmt"
	"math"
	mathrand "math/rand"

	"github.com/mroth/weightedrand/v2"
)

var ErrEmptyEventPool = errors.New("event pool has no weighted items")

// eventWeightScale turns a percentage into an integer weight (1/1000 %).
const eventWeightScale = 1000

// EventPool draws event-only items weighted by their base chance.
// It bypasses the rarity cascade and never touches pity counters.
type EventPool struct {
	chooser *weightedrand.Chooser[Item, int]
	items   []Item
}

// NewEventPool builds a pool from the catalog's event items.
func NewEventPool(c *Catalog) (*EventPool, error) {
	items := c.EventItems()
	choices := make([]weightedrand.Choice[Item, int], 0, len(items))
	for _, it := range items {
		w := int(math.Round(it.BaseChance * eventWeightScale))
		if w <= 0 {
			continue
		}
		choices = append(choices, weightedrand.NewChoice(it, w))
	}
	if len(choices) == 0 {
		return nil, ErrEmptyEventPool
	}
	ch, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyEventPool, err)
	}
	return &EventPool{chooser: ch, items: items}, nil
}

// Draw returns one event item.
func (p *EventPool) Draw(rng RandomSource) Item {
	return p.chooser.PickSource(mathrand.New(sourceAdapter{orDefault(rng)}))
}

// Items lists the pool in catalog order.
func (p *EventPool) Items() []Item { return append([]Item(nil), p.items...) }

// sourceAdapter lets a RandomSource drive a math/rand generator.
type sourceAdapter struct{ rng RandomSource }

func (a sourceAdapter) Int63() int64 {
	hi := int64(a.rng.IntN(1 << 31))
	lo := int64(a.rng.IntN(1 << 32))
	return hi<<32 | lo
}

func (sourceAdapter) Seed(int64) {}
