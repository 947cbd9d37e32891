package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	assetsvc "github.com/voydwalkr/fungible/internal/services/assets"
	"github.com/voydwalkr/fungible/pkg/fungible"
)

// AssetsController exposes the asset registry.
//
// Identifiers appear in paths in text form, e.g. /v1/assets/Coin(uluna).
type AssetsController struct {
	svc *assetsvc.Service
}

// NewAssetsController creates a new assets controller.
func NewAssetsController(svc *assetsvc.Service) *AssetsController {
	return &AssetsController{svc: svc}
}

// RegisterRoutes registers asset routes with the given mux.
func (c *AssetsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/assets", c.handleList)
	mux.HandleFunc("/v1/assets/", c.handleAsset)
}

// handleList serves GET /v1/assets?kind=&filter=&limit=&order=value|store.
func (c *AssetsController) handleList(w http.ResponseWriter, r *http.Request) {
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
	opts := assetsvc.ListOptions{Kind: kind, Filter: q.Get("filter"), Limit: parseLimit(q.Get("limit"))}
	var (
		list []assetsvc.Asset
		err  error
	)
	switch q.Get("order") {
	case "", "store":
		list, err = c.svc.List(r.Context(), opts)
	case "value":
		list, err = c.svc.Sorted(r.Context(), opts)
	default:
		writeError(w, http.StatusBadRequest, "order must be store or value")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if list == nil {
		list = []assetsvc.Asset{}
	}
	writeJSON(w, listAssetsResp{Assets: list})
}

// handleAsset serves GET, PUT and DELETE on /v1/assets/{id}.
func (c *AssetsController) handleAsset(w http.ResponseWriter, r *http.Request) {
	id, err := fungible.Parse(strings.TrimPrefix(r.URL.Path, "/v1/assets/"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	switch r.Method {
	case http.MethodGet:
		a, err := c.svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, a)
	case http.MethodPut:
		var req assetReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		a, err := c.svc.Register(r.Context(), assetsvc.Asset{
			ID: id, Symbol: req.Symbol, Decimals: req.Decimals, Label: req.Label, Labels: req.Labels,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, a)
	case http.MethodDelete:
		if err := c.svc.Remove(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeNoContent(w)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}
