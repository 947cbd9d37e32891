package namespace

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pebblestore "github.com/voydwalkr/fungible/internal/storage/pebble"
)

// KeyLayoutVersion identifies the segmented key layout written by
// internal/store. Bump it when the layout changes.
const KeyLayoutVersion = 1

// ErrLayoutMismatch is returned when a namespace was created for a different
// key type or layout than the one requested.
var ErrLayoutMismatch = errors.New("namespace: key layout mismatch")

// Meta holds namespace metadata.
type Meta struct {
	Name          string `json:"name"`
	CreatedAtMs   int64  `json:"createdAtMs"`
	KeyType       string `json:"keyType"`
	KeySegments   int    `json:"keySegments"`
	LayoutVersion int    `json:"layoutVersion"`
}

var nsMetaPrefix = []byte("nsmeta/")

// nsMetaKey builds metadata key for a namespace.
func nsMetaKey(ns string) []byte {
	k := make([]byte, 0, len(nsMetaPrefix)+len(ns))
	k = append(k, nsMetaPrefix...)
	k = append(k, ns...)
	return k
}

// EnsureNamespace creates a namespace meta record if absent and returns the
// effective meta. An existing record must describe the same key type and
// segment count.
func EnsureNamespace(db *pebblestore.DB, name, keyType string, segments int) (Meta, error) {
	key := nsMetaKey(name)
	if b, err := db.Get(key); err == nil && len(b) > 0 {
		var m Meta
		if err := json.Unmarshal(b, &m); err == nil {
			if m.KeyType != keyType || m.KeySegments != segments || m.LayoutVersion != KeyLayoutVersion {
				return m, fmt.Errorf("%w: %q holds %s/%d (v%d), want %s/%d (v%d)", ErrLayoutMismatch,
					name, m.KeyType, m.KeySegments, m.LayoutVersion, keyType, segments, KeyLayoutVersion)
			}
			return m, nil
		}
		// fallthrough to rewrite if corrupted
	} else if err != nil && !errors.Is(err, pebblestore.ErrNotFound) {
		return Meta{}, err
	}
	m := Meta{
		Name:          name,
		CreatedAtMs:   time.Now().UnixMilli(),
		KeyType:       keyType,
		KeySegments:   segments,
		LayoutVersion: KeyLayoutVersion,
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return Meta{}, err
	}
	if err := db.Set(key, bytes); err != nil {
		return Meta{}, err
	}
	return m, nil
}

// Get returns the meta record for name.
func Get(db *pebblestore.DB, name string) (Meta, error) {
	b, err := db.Get(nsMetaKey(name))
	if err != nil {
		return Meta{}, err
	}
	var m Meta
	if err := json.Unmarshal(b, &m); err != nil {
		return Meta{}, err
	}
	return m, nil
}
