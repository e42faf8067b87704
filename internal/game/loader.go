package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

var ErrUnknownPool = errors.New("unknown pool")

// Paths helper for default/game/pool files.
type Paths struct {
	BaseDir string // base directory, e.g., /opt/app/configs
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "games", "default.yaml")
}
func (p Paths) GamePath(game string) string {
	return filepath.Join(p.BaseDir, "games", game+".yaml")
}
func (p Paths) PoolPath(game, pool string) string {
	return filepath.Join(p.BaseDir, "games", game, "pools", pool+".yaml")
}

// Loader reads YAML configs and merges default → game → pool.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: "game" or "game/pool"
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

func cacheKey(game, pool string) string {
	if pool == "" {
		return game
	}
	return game + "/" + pool
}

// LoadMerged loads and merges default → game → pool (pool optional).
// A named pool must have its own file; the game file may be absent.
// It returns the merged RawConfig (without validation).
func (l *Loader) LoadMerged(game, pool string) (RawConfig, error) {
	key := cacheKey(game, pool)
	l.mu.RLock()
	if cfg, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defCfg, err := readYAML(l.paths.DefaultPath())
	if err != nil {
		return RawConfig{}, fmt.Errorf("read default: %w", err)
	}
	gameCfg, err := readYAML(l.paths.GamePath(game))
	if err != nil {
		return RawConfig{}, fmt.Errorf("read game %q: %w", game, err)
	}
	var poolCfg RawConfig
	if pool != "" {
		path := l.paths.PoolPath(game, pool)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return RawConfig{}, fmt.Errorf("%w: %q", ErrUnknownPool, pool)
			}
			return RawConfig{}, err
		}
		if poolCfg, err = readYAML(path); err != nil {
			return RawConfig{}, fmt.Errorf("read pool %q: %w", pool, err)
		}
		if poolCfg.Pool == nil {
			poolCfg.Pool = &PoolConfig{}
		}
		if poolCfg.Pool.Name == "" {
			poolCfg.Pool.Name = pool
		}
	}

	// Merge: default <- game <- pool
	gameMerged := mergeRaw(defCfg, gameCfg)
	merged := mergeRaw(gameMerged, poolCfg)

	l.mu.Lock()
	l.cache[game] = gameMerged
	l.cache[key] = merged
	l.mu.Unlock()

	return merged, nil
}

// Invalidate clears loader's cache.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file into RawConfig. Missing files return zero cfg, no error.
func readYAML(path string) (RawConfig, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw overlays 'b' onto 'a': maps merge per key, scalars and the pool
// section are replaced where 'b' sets them, and a non-empty item list in 'b'
// replaces the whole list.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	// top-level scalars
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// rates
	switch {
	case out.Rates == nil && b.Rates != nil:
		out.Rates = copyRates(b.Rates)
	case out.Rates != nil && b.Rates != nil:
		r := copyRates(out.Rates)
		for k, v := range b.Rates.PityThresholds {
			r.PityThresholds[k] = v
		}
		for k, v := range b.Rates.BaseChances {
			r.BaseChances[k] = v
		}
		out.Rates = r
	}

	// items
	if len(b.Items) > 0 {
		out.Items = append([]gacha.Item(nil), b.Items...)
	}

	// pool
	switch {
	case out.Pool == nil && b.Pool != nil:
		c := *b.Pool
		out.Pool = &c
	case out.Pool != nil && b.Pool != nil:
		c := *out.Pool
		if b.Pool.Name != "" {
			c.Name = b.Pool.Name
		}
		if b.Pool.LuckBonus != nil {
			c.LuckBonus = b.Pool.LuckBonus
		}
		if len(b.Pool.Exclude) > 0 {
			c.Exclude = append([]gacha.Rarity(nil), b.Pool.Exclude...)
		}
		out.Pool = &c
	}

	return out
}

func copyRates(r *RatesConfig) *RatesConfig {
	c := &RatesConfig{
		PityThresholds: make(map[gacha.Rarity]int, len(r.PityThresholds)),
		BaseChances:    make(map[gacha.Rarity]float64, len(r.BaseChances)),
	}
	for k, v := range r.PityThresholds {
		c.PityThresholds[k] = v
	}
	for k, v := range r.BaseChances {
		c.BaseChances[k] = v
	}
	return c
}
