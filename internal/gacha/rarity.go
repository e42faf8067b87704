package gacha

import "strings"

// Rarity is one of the nine ordered scarcity tiers.
type Rarity string

const (
	Common     Rarity = "Common"
	Uncommon   Rarity = "Uncommon"
	Rare       Rarity = "Rare"
	Epic       Rarity = "Epic"
	Legendary  Rarity = "Legendary"
	Mythic     Rarity = "Mythic"
	Exotic     Rarity = "Exotic"
	Divine     Rarity = "Divine"
	Impossible Rarity = "Impossible"

	// NoRarity marks a roll that resets no pity counter.
	NoRarity Rarity = ""
)

// RarityOrder lists every tier from most common to rarest.
var RarityOrder = []Rarity{
	Common,
	Uncommon,
	Rare,
	Epic,
	Legendary,
	Mythic,
	Exotic,
	Divine,
	Impossible,
}

// PityTiers are the tiers backed by a hard guarantee, lowest first.
var PityTiers = []Rarity{Rare, Legendary, Mythic}

// Rank returns the position of r in RarityOrder, or -1 if r is unknown.
func (r Rarity) Rank() int {
	for i, o := range RarityOrder {
		if o == r {
			return i
		}
	}
	return -1
}

func (r Rarity) Valid() bool { return r.Rank() >= 0 }

// PityEligible reports whether r has a pity counter.
func (r Rarity) PityEligible() bool {
	for _, t := range PityTiers {
		if t == r {
			return true
		}
	}
	return false
}

func (r Rarity) String() string {
	if r == NoRarity {
		return "none"
	}
	return string(r)
}

// ParseRarity matches a tier name case-insensitively.
func ParseRarity(s string) (Rarity, bool) {
	s = strings.TrimSpace(s)
	for _, r := range RarityOrder {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return NoRarity, false
}

// rarestFirst returns RarityOrder reversed.
func rarestFirst() []Rarity {
	out := make([]Rarity, len(RarityOrder))
	for i, r := range RarityOrder {
		out[len(RarityOrder)-1-i] = r
	}
	return out
}

func lowestTier() Rarity { return RarityOrder[0] }

func rarestTier() Rarity { return RarityOrder[len(RarityOrder)-1] }

func containsRarity(set []Rarity, r Rarity) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}
