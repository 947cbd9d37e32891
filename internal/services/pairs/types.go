package pairsvc

import (
	"errors"

	"github.com/voydwalkr/fungible/pkg/fungible"
)

// PairInfo is the index record for one pair.
type PairInfo struct {
	Pair           fungible.Pair     `json:"pair"`
	Contract       string            `json:"contract,omitempty"`
	LiquidityToken string            `json:"liquidityToken,omitempty"`
	Labels         map[string]string `json:"labels,omitempty"`
	CreatedAtMs    int64             `json:"createdAtMs"`
}

// ListOptions narrows List.
type ListOptions struct {
	// Base restricts results to pairs with this base when non-nil.
	Base *fungible.Fungible
	// BaseKind restricts results to pairs whose base has this kind. Ignored
	// when Base is set.
	BaseKind *fungible.Kind
	// Filter is a CEL expression; see internal/filter.
	Filter string
	// Limit caps the number of results after filtering.
	Limit int
}

var (
	// ErrNotFound is returned when no pair is stored under a key.
	ErrNotFound = errors.New("pairs: not found")
	// ErrExists is returned by Create when the pair is already indexed.
	ErrExists = errors.New("pairs: already exists")
	// ErrInvalidPair is returned by Create for pairs that fail validation.
	ErrInvalidPair = errors.New("pairs: invalid pair")
)
