package session

import (
	"sort"
	"time"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

const (
	// DefaultBaseLuck is the luck multiplier of a fresh player.
	DefaultBaseLuck = 1.0
	// AuraLuckPerStack is added to luck for every equipped aura stack.
	AuraLuckPerStack = 0.05
)

// Session is one player's roll state. The store hands out copies only.
type Session struct {
	PlayerID   string              `json:"player_id"`
	Counters   gacha.PityCounters  `json:"counters"`
	TotalRolls int                 `json:"total_rolls"`
	BaseLuck   float64             `json:"base_luck"`
	Discovered map[string]struct{} `json:"-"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func newSession(playerID string, baseLuck float64, now time.Time) *Session {
	return &Session{
		PlayerID:   playerID,
		Counters:   gacha.NewPityCounters(),
		BaseLuck:   baseLuck,
		Discovered: make(map[string]struct{}),
		UpdatedAt:  now,
	}
}

// Luck composes the multiplier for one roll: base luck, aura stacks and a
// flat bonus (event pools, request overrides).
func (s *Session) Luck(auraStacks int, bonus float64) float64 {
	return s.BaseLuck + AuraLuckPerStack*float64(auraStacks) + bonus
}

// DiscoveredIDs lists discovered item IDs in sorted order.
func (s *Session) DiscoveredIDs() []string {
	out := make([]string, 0, len(s.Discovered))
	for id := range s.Discovered {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *Session) clone() *Session {
	c := *s
	c.Counters = s.Counters.Clone()
	c.Discovered = make(map[string]struct{}, len(s.Discovered))
	for id := range s.Discovered {
		c.Discovered[id] = struct{}{}
	}
	return &c
}

// apply records one roll: counters advance, the item joins the codex.
// It reports whether the item was seen for the first time.
func (s *Session) apply(res gacha.Result, now time.Time) bool {
	s.Counters = s.Counters.Advance(res.PityReset)
	s.TotalRolls++
	s.UpdatedAt = now
	if _, seen := s.Discovered[res.Item.ID]; seen {
		return false
	}
	s.Discovered[res.Item.ID] = struct{}{}
	return true
}
