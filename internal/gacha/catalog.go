package gacha

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrNoCommonItems  = errors.New("catalog has no item of the lowest tier")
)

// Category tags what kind of item a catalog entry is.
type Category string

const (
	CategoryWeapon   Category = "Weapon"
	CategoryAura     Category = "Aura"
	CategoryCharm    Category = "Charm"
	CategoryCatalyst Category = "Catalyst"
	CategoryKey      Category = "Key"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWeapon, CategoryAura, CategoryCharm, CategoryCatalyst, CategoryKey:
		return true
	}
	return false
}

// Item is one immutable catalog entry.
type Item struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Rarity        Rarity   `yaml:"rarity" json:"rarity"`
	BaseChance    float64  `yaml:"base_chance" json:"base_chance"` // percentage, weights event pools
	Power         int      `yaml:"power" json:"power"`
	Category      Category `yaml:"category" json:"category"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty"`
	SpecialEffect string   `yaml:"special_effect,omitempty" json:"special_effect,omitempty"`
	SellValue     int      `yaml:"sell_value" json:"sell_value"`
	Secret        bool     `yaml:"secret,omitempty" json:"secret,omitempty"`
	EventOnly     bool     `yaml:"event_only,omitempty" json:"event_only,omitempty"`
}

// Catalog is the read-only registry of obtainable items, grouped by rarity.
// It is safe for concurrent use because nothing mutates it after NewCatalog.
type Catalog struct {
	items    []Item
	byRarity map[Rarity][]int
	byID     map[string]int
}

// NewCatalog copies items into a new catalog.
// It fails when an entry is malformed or when the lowest tier has no item,
// since the roll fallback depends on that tier.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items:    append([]Item(nil), items...),
		byRarity: make(map[Rarity][]int),
		byID:     make(map[string]int, len(items)),
	}
	for i, it := range c.items {
		if err := validateItem(it); err != nil {
			return nil, fmt.Errorf("%w: item[%d]: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %q", ErrInvalidCatalog, it.ID)
		}
		c.byID[it.ID] = i
		c.byRarity[it.Rarity] = append(c.byRarity[it.Rarity], i)
	}
	if len(c.byRarity[lowestTier()]) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, ErrNoCommonItems)
	}
	return c, nil
}

func validateItem(it Item) error {
	switch {
	case it.ID == "":
		return errors.New("empty id")
	case !it.Rarity.Valid():
		return fmt.Errorf("%q: unknown rarity %q", it.ID, it.Rarity)
	case !it.Category.Valid():
		return fmt.Errorf("%q: unknown category %q", it.ID, it.Category)
	case !validPercent(it.BaseChance):
		return fmt.Errorf("%q: base_chance must be in [0,100]", it.ID)
	case it.SellValue < 0:
		return fmt.Errorf("%q: sell_value must be >= 0", it.ID)
	}
	return nil
}

// ItemsOfRarity returns every item of rarity r in declaration order.
func (c *Catalog) ItemsOfRarity(r Rarity) []Item {
	idx := c.byRarity[r]
	out := make([]Item, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.items[i])
	}
	return out
}

// RandomItemOfRarity picks uniformly among the items of rarity r.
// ok is false when the tier is empty; that is not an error.
func (c *Catalog) RandomItemOfRarity(r Rarity, rng RandomSource) (Item, bool) {
	idx := c.byRarity[r]
	if len(idx) == 0 {
		return Item{}, false
	}
	return c.items[idx[orDefault(rng).IntN(len(idx))]], true
}

// Filter returns the items matching pred in declaration order.
func (c *Catalog) Filter(pred func(Item) bool) []Item {
	var out []Item
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Catalog) EventItems() []Item {
	return c.Filter(func(it Item) bool { return it.EventOnly })
}

func (c *Catalog) Lookup(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the whole catalog.
func (c *Catalog) Items() []Item { return append([]Item(nil), c.items...) }

func (c *Catalog) Len() int { return len(c.items) }
