package assetsvc

import (
	"errors"

	"github.com/voydwalkr/fungible/pkg/fungible"
)

// Asset is the registry record for one identifier.
type Asset struct {
	ID       fungible.Fungible `json:"id"`
	Symbol   string            `json:"symbol,omitempty"`
	Decimals uint8             `json:"decimals"`
	Label    string            `json:"label,omitempty"`
	Labels   map[string]string `json:"labels,omitempty"`

	CreatedAtMs int64 `json:"createdAtMs"`
	UpdatedAtMs int64 `json:"updatedAtMs"`
}

// ListOptions narrows List and Sorted.
type ListOptions struct {
	// Kind restricts results to one variant when non-nil.
	Kind *fungible.Kind
	// Filter is a CEL expression; see internal/filter.
	Filter string
	// Limit caps the number of results after filtering. Zero or values over
	// the configured maximum use the maximum.
	Limit int
}

// MaxDecimals bounds Asset.Decimals.
const MaxDecimals = 38

var (
	// ErrNotFound is returned when no asset is registered under an identifier.
	ErrNotFound = errors.New("assets: not found")
	// ErrInvalidAsset is returned by Register for records that fail validation.
	ErrInvalidAsset = errors.New("assets: invalid asset")
)
