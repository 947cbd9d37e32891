package controllers

import (
	assetsvc "github.com/voydwalkr/fungible/internal/services/assets"
	pairsvc "github.com/voydwalkr/fungible/internal/services/pairs"
)

// Common request/response types for HTTP controllers

// assetReq is the body of PUT /v1/assets/{id}. The identifier comes from the
// path.
type assetReq struct {
	Symbol   string            `json:"symbol"`
	Decimals uint8             `json:"decimals"`
	Label    string            `json:"label"`
	Labels   map[string]string `json:"labels"`
}

// pairReq is the body of PUT /v1/pairs/{base}/{quote}.
type pairReq struct {
	Contract       string            `json:"contract"`
	LiquidityToken string            `json:"liquidityToken"`
	Labels         map[string]string `json:"labels"`
}

type listAssetsResp struct {
	Assets []assetsvc.Asset `json:"assets"`
}

type listPairsResp struct {
	Pairs []pairsvc.PairInfo `json:"pairs"`
}
