package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/xtding233/relic-gacha/internal/gacha"
)

func TestRecordRoll(t *testing.T) {
	pity := gacha.Result{Item: gacha.Item{ID: "x", Rarity: gacha.Mythic}, PityReset: gacha.Mythic, Source: gacha.SourcePity}
	before := testutil.ToFloat64(PityTriggersTotal.WithLabelValues("Mythic"))
	beforeRolls := testutil.ToFloat64(RollsTotal.WithLabelValues("Mythic", "pity"))

	RecordRoll(pity)
	RecordRoll(gacha.Result{Item: gacha.Item{ID: "y", Rarity: gacha.Common}, Source: gacha.SourceFallback})

	assert.Equal(t, before+1, testutil.ToFloat64(PityTriggersTotal.WithLabelValues("Mythic")))
	assert.Equal(t, beforeRolls+1, testutil.ToFloat64(RollsTotal.WithLabelValues("Mythic", "pity")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/players/{id}", "418"))
	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodGet, "/players/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/players/{id}", "418")))
}
