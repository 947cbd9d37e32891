package controllers

import (
	"net/http"

	"github.com/voydwalkr/fungible/internal/runtime"
	assetsvc "github.com/voydwalkr/fungible/internal/services/assets"
	pairsvc "github.com/voydwalkr/fungible/internal/services/pairs"
)

// ControllerRegistry manages all HTTP controllers.
type ControllerRegistry struct {
	general *GeneralController
	assets  *AssetsController
	pairs   *PairsController
	changes *ChangesController
}

// NewControllerRegistry creates a new controller registry.
func NewControllerRegistry(rt *runtime.Runtime, assets *assetsvc.Service, pairs *pairsvc.Service) *ControllerRegistry {
	return &ControllerRegistry{
		general: NewGeneralController(rt),
		assets:  NewAssetsController(assets),
		pairs:   NewPairsController(pairs),
		changes: NewChangesController(rt.Changes(), rt.Config().Registry.MaxListLimit),
	}
}

// RegisterAllRoutes registers all controller routes with the given mux.
func (r *ControllerRegistry) RegisterAllRoutes(mux *http.ServeMux) {
	r.general.RegisterRoutes(mux)
	r.assets.RegisterRoutes(mux)
	r.pairs.RegisterRoutes(mux)
	r.changes.RegisterRoutes(mux)
}
