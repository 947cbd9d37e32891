package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	pairsvc "github.com/voydwalkr/fungible/internal/services/pairs"
	"github.com/voydwalkr/fungible/pkg/fungible"
)

// PairsController exposes the pair index.
//
// Pairs appear in paths as base/quote text, e.g.
// /v1/pairs/Coin(uluna)/Token(whDAI).
type PairsController struct {
	svc *pairsvc.Service
}

// NewPairsController creates a new pairs controller.
func NewPairsController(svc *pairsvc.Service) *PairsController {
	return &PairsController{svc: svc}
}

// RegisterRoutes registers pair routes with the given mux.
func (c *PairsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/pairs", c.handleList)
	mux.HandleFunc("/v1/pairs/", c.handlePair)
}

// handleList serves GET /v1/pairs?base=&kind=&filter=&limit=. base takes
// precedence over kind.
func (c *PairsController) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	q := r.URL.Query()
	kind, ok := parseKindParam(q.Get("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, "kind must be Coin or Token")
		return
	}
	opts := pairsvc.ListOptions{BaseKind: kind, Filter: q.Get("filter"), Limit: parseLimit(q.Get("limit"))}
	if b := q.Get("base"); b != "" {
		base, err := fungible.Parse(b)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		opts.Base = &base
	}
	list, err := c.svc.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []pairsvc.PairInfo{}
	}
	writeJSON(w, listPairsResp{Pairs: list})
}

// handlePair serves GET, PUT and DELETE on /v1/pairs/{base}/{quote}.
func (c *PairsController) handlePair(w http.ResponseWriter, r *http.Request) {
	p, err := fungible.ParsePair(strings.TrimPrefix(r.URL.Path, "/v1/pairs/"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	switch r.Method {
	case http.MethodGet:
		info, err := c.svc.Get(r.Context(), p)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, info)
	case http.MethodPut:
		var req pairReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		info, err := c.svc.Create(r.Context(), pairsvc.PairInfo{
			Pair: p, Contract: req.Contract, LiquidityToken: req.LiquidityToken, Labels: req.Labels,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeCreated(w, info)
	case http.MethodDelete:
		if err := c.svc.Remove(r.Context(), p); err != nil {
			writeServiceError(w, err)
			return
		}
		writeNoContent(w)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}
