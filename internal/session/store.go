package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

// MaxMultiRoll caps RollMany.
const MaxMultiRoll = 10

const defaultCacheSize = 10000

var (
	ErrEmptyPlayerID = errors.New("player id is required")
	ErrInvalidLuck   = errors.New("luck must be a finite value >= 0")
	ErrInvalidCount  = errors.New("roll count out of range")
	ErrInvalidPool   = errors.New("lowest tier cannot be excluded")
)

// Roller is the part of the roll engine the store needs.
type Roller interface {
	Roll(luck float64, counters gacha.PityCounters, exclude ...gacha.Rarity) gacha.Result
}

// RollRequest carries the per-roll inputs that do not live in the session.
type RollRequest struct {
	AuraStacks int
	LuckBonus  float64
	Exclude    []gacha.Rarity
}

// Outcome is one applied roll.
type Outcome struct {
	gacha.Result
	Luck       float64            `json:"luck"`
	Counters   gacha.PityCounters `json:"counters"` // after the roll
	TotalRolls int                `json:"total_rolls"`
	New        bool               `json:"new"`
}

// Options configures a Store.
type Options struct {
	Size     int           // max cached sessions; <= 0 uses the default
	TTL      time.Duration // idle expiry; 0 keeps sessions until evicted
	BaseLuck float64       // luck of a new session; 0 uses DefaultBaseLuck
}

// Store keeps player sessions in an expiring LRU and serializes rolls per
// player, so one player's counters are never read stale by a second roll.
type Store struct {
	roller   Roller
	cache    *expirable.LRU[string, *Session]
	locks    *LockManager
	baseLuck float64
	now      func() time.Time
}

// NewStore creates a session store in front of roller.
func NewStore(roller Roller, opts Options) *Store {
	if opts.Size <= 0 {
		opts.Size = defaultCacheSize
	}
	if opts.BaseLuck <= 0 {
		opts.BaseLuck = DefaultBaseLuck
	}
	return &Store{
		roller:   roller,
		cache:    expirable.NewLRU[string, *Session](opts.Size, nil, opts.TTL),
		locks:    NewLockManager(),
		baseLuck: opts.BaseLuck,
		now:      time.Now,
	}
}

// Roll performs one roll for playerID.
func (s *Store) Roll(ctx context.Context, playerID string, req RollRequest) (Outcome, error) {
	out, err := s.RollMany(ctx, playerID, 1, req)
	if err != nil {
		return Outcome{}, err
	}
	return out[0], nil
}

// RollMany performs n sequential rolls under one player lock. The session is
// stored once all n rolls are applied.
func (s *Store) RollMany(ctx context.Context, playerID string, n int, req RollRequest) ([]Outcome, error) {
	if playerID == "" {
		return nil, ErrEmptyPlayerID
	}
	if n < 1 || n > MaxMultiRoll {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCount, n, MaxMultiRoll)
	}
	for _, r := range req.Exclude {
		if r == gacha.RarityOrder[0] {
			return nil, ErrInvalidPool
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	sess := s.load(playerID)
	luck := sess.Luck(req.AuraStacks, req.LuckBonus)
	if luck < 0 || math.IsNaN(luck) || math.IsInf(luck, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLuck, luck)
	}

	out := make([]Outcome, 0, n)
	for i := 0; i < n; i++ {
		res := s.roller.Roll(luck, sess.Counters, req.Exclude...)
		isNew := sess.apply(res, s.now())
		out = append(out, Outcome{
			Result:     res,
			Luck:       luck,
			Counters:   sess.Counters.Clone(),
			TotalRolls: sess.TotalRolls,
			New:        isNew,
		})
	}
	s.cache.Add(playerID, sess)
	return out, nil
}

// load returns a private copy of the cached session, or a fresh one.
// Callers hold the player lock.
func (s *Store) load(playerID string) *Session {
	if cur, ok := s.cache.Get(playerID); ok {
		return cur.clone()
	}
	return newSession(playerID, s.baseLuck, s.now())
}

// Snapshot returns a copy of the player's session. Unknown players get a
// fresh session and false.
func (s *Store) Snapshot(playerID string) (Session, bool) {
	if cur, ok := s.cache.Peek(playerID); ok {
		return *cur.clone(), true
	}
	return *newSession(playerID, s.baseLuck, s.now()), false
}

// Reset drops the player's session and reports whether one existed.
func (s *Store) Reset(playerID string) bool {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()
	return s.cache.Remove(playerID)
}

// Len is the number of live sessions.
func (s *Store) Len() int { return s.cache.Len() }
