package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xtding233/relic-gacha/internal/game"
	"github.com/xtding233/relic-gacha/internal/gacha"
	"github.com/xtding233/relic-gacha/internal/logger"
	"github.com/xtding233/relic-gacha/internal/metrics"
	"github.com/xtding233/relic-gacha/internal/session"
)

// Deps are the collaborators the HTTP API serves.
type Deps struct {
	Engine      *gacha.Engine
	Store       *session.Store
	Events      *gacha.EventPool // nil when the catalog has no event items
	Pools       game.Resolver
	Game        string
	DefaultPool string
	RNG         gacha.RandomSource // event draws; nil means crypto randomness
}

// Handlers serves the gacha API.
type Handlers struct {
	deps Deps
}

func NewHandlers(deps Deps) *Handlers {
	return &Handlers{deps: deps}
}

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// CatalogResponse lists catalog items.
type CatalogResponse struct {
	Items []gacha.Item `json:"items"`
	Count int          `json:"count"`
}

// HandleCatalog lists items. ?rarity= narrows to one tier; secret items are
// hidden unless ?secret=true.
func (h *Handlers) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	var want gacha.Rarity
	if s := r.URL.Query().Get("rarity"); s != "" {
		rr, ok := gacha.ParseRarity(s)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRarity)
			return
		}
		want = rr
	}
	showSecret, _, msg := parseBool(r, "secret")
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	items := h.deps.Engine.Catalog().Filter(func(it gacha.Item) bool {
		if want != gacha.NoRarity && it.Rarity != want {
			return false
		}
		return showSecret || !it.Secret
	})
	respondJSON(w, http.StatusOK, CatalogResponse{Items: items, Count: len(items)})
}

// RatesResponse describes the rate table.
type RatesResponse struct {
	RarityOrder    []gacha.Rarity           `json:"rarity_order"`
	PityTiers      []gacha.Rarity           `json:"pity_tiers"`
	PityThresholds map[gacha.Rarity]int     `json:"pity_thresholds"`
	BaseChances    map[gacha.Rarity]float64 `json:"base_chances"`
}

func (h *Handlers) HandleRates(w http.ResponseWriter, _ *http.Request) {
	rates := h.deps.Engine.Rates()
	respondJSON(w, http.StatusOK, RatesResponse{
		RarityOrder:    gacha.RarityOrder,
		PityTiers:      gacha.PityTiers,
		PityThresholds: rates.PityThresholds,
		BaseChances:    rates.BaseChances,
	})
}

// RollResponse is the result of POST /players/{id}/roll.
type RollResponse struct {
	PlayerID string            `json:"player_id"`
	Pool     string            `json:"pool"`
	Results  []session.Outcome `json:"results"`
}

func (h *Handlers) HandleRoll(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "id")
	var req RollRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	log := logger.FromContext(r.Context())

	pool := req.Pool
	if pool == "" {
		pool = h.deps.DefaultPool
	}
	o := game.Overrides{LuckBonus: req.LuckBonus}
	if len(req.Exclude) > 0 {
		ex := parseRarities(req.Exclude)
		o.Exclude = &ex
	}
	params, err := h.deps.Pools.Resolve(h.deps.Game, pool, o)
	if err != nil {
		status, msg := mapError(err)
		log.Warn("Pool resolution failed", "pool", pool, "error", err)
		respondError(w, status, msg)
		return
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	outs, err := h.deps.Store.RollMany(r.Context(), playerID, count, session.RollRequest{
		AuraStacks: req.AuraStacks,
		LuckBonus:  params.LuckBonus,
		Exclude:    params.Exclude,
	})
	if err != nil {
		status, msg := mapError(err)
		log.Warn("Roll failed", "player_id", playerID, "error", err)
		respondError(w, status, msg)
		return
	}

	for _, out := range outs {
		metrics.RecordRoll(out.Result)
		if out.Source == gacha.SourcePity {
			log.Info("Pity guarantee fired", "player_id", playerID, "rarity", out.PityReset, "item", out.Item.ID)
		}
	}
	metrics.ActiveSessions.Set(float64(h.deps.Store.Len()))
	respondJSON(w, http.StatusOK, RollResponse{PlayerID: playerID, Pool: params.Pool, Results: outs})
}

// PityResponse reports a player's counters.
type PityResponse struct {
	PlayerID   string               `json:"player_id"`
	Counters   gacha.PityCounters   `json:"counters"`
	Thresholds map[gacha.Rarity]int `json:"thresholds"`
	Remaining  map[gacha.Rarity]int `json:"remaining"` // rolls until each guarantee
	TotalRolls int                  `json:"total_rolls"`
	BaseLuck   float64              `json:"base_luck"`
	Discovered []string             `json:"discovered"`
}

func (h *Handlers) HandlePity(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "id")
	snap, _ := h.deps.Store.Snapshot(playerID)
	rates := h.deps.Engine.Rates()

	remaining := make(map[gacha.Rarity]int, len(gacha.PityTiers))
	for _, t := range gacha.PityTiers {
		remaining[t] = max(rates.Threshold(t)-snap.Counters.Get(t)+1, 1)
	}
	respondJSON(w, http.StatusOK, PityResponse{
		PlayerID:   playerID,
		Counters:   snap.Counters,
		Thresholds: rates.PityThresholds,
		Remaining:  remaining,
		TotalRolls: snap.TotalRolls,
		BaseLuck:   snap.BaseLuck,
		Discovered: snap.DiscoveredIDs(),
	})
}

func (h *Handlers) HandleResetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "id")
	if !h.deps.Store.Reset(playerID) {
		respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
		return
	}
	metrics.ActiveSessions.Set(float64(h.deps.Store.Len()))
	w.WriteHeader(http.StatusNoContent)
}

// EventDrawResponse is one event pool item.
type EventDrawResponse struct {
	Item gacha.Item `json:"item"`
}

func (h *Handlers) HandleEventDraw(w http.ResponseWriter, _ *http.Request) {
	if h.deps.Events == nil {
		respondError(w, http.StatusNotFound, ErrMsgNoEventPool)
		return
	}
	it := h.deps.Events.Draw(h.deps.RNG)
	metrics.RecordEventDraw(it)
	respondJSON(w, http.StatusOK, EventDrawResponse{Item: it})
}

func (h *Handlers) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	exclude := parseRarities(req.Exclude)
	for _, ex := range exclude {
		if ex == gacha.RarityOrder[0] {
			respondError(w, http.StatusBadRequest, ErrMsgCannotExclude)
			return
		}
	}

	rep := gacha.Simulate(h.deps.Engine, gacha.SimParams{
		Luck:    req.Luck,
		Rolls:   req.Trials,
		Exclude: exclude,
		Seed:    req.Seed,
	})
	metrics.SimulationsTotal.Inc()
	logger.FromContext(r.Context()).Debug("Simulation finished",
		"trials", req.Trials, "luck", req.Luck, "fallbacks", rep.Fallbacks)
	respondJSON(w, http.StatusOK, rep)
}
