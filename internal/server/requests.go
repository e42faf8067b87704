package server

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// RollRequest is the body of POST /api/v1/players/{id}/roll.
type RollRequest struct {
	LuckBonus  *float64 `json:"luck_bonus" validate:"omitempty,gte=0,lte=100"`
	AuraStacks int      `json:"aura_stacks" validate:"gte=0,lte=1000"`
	Count      int      `json:"count" validate:"gte=0,lte=10"` // 0 means one roll
	Pool       string   `json:"pool" validate:"omitempty,max=64,slug"`
	Exclude    []string `json:"exclude" validate:"omitempty,max=9,dive,rarity"`
}

// SimulateRequest is the body of POST /api/v1/simulate.
type SimulateRequest struct {
	Luck    float64  `json:"luck" validate:"gte=0,lte=1000"`
	Trials  int      `json:"trials" validate:"required,min=1,max=1000000"`
	Exclude []string `json:"exclude" validate:"omitempty,max=9,dive,rarity"`
	Seed    uint64   `json:"seed"`
}

// decodeAndValidate reads a JSON body into req. On failure it writes the
// response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}
	if err := validate.Struct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  ErrMsgInvalidRequest,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// parseBool reads an optional boolean query parameter.
func parseBool(r *http.Request, key string) (bool, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return false, false, ""
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false, "invalid " + key
	}
	return v, true, ""
}
