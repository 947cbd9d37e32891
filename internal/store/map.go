package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pebblestore "github.com/voydwalkr/fungible/internal/storage/pebble"
)

// ErrNotFound is returned by Load when no value is stored under the key.
var ErrNotFound = errors.New("store: not found")

// ErrPrefixTooLong is returned by Range when the prefix names as many
// segments as the key itself.
var ErrPrefixTooLong = errors.New("store: prefix must be shorter than the key")

// Entry is one decoded key/value pair.
type Entry[K Key, V any] struct {
	Key   K
	Value V
}

// Map is a typed view over one namespace of the store.
type Map[K Key, V any] struct {
	db        *pebblestore.DB
	namespace []byte
	codec     KeyCodec[K]
}

// NewMap returns a map over namespace. Maps with different namespaces never
// share keys.
func NewMap[K Key, V any](db *pebblestore.DB, namespace string, codec KeyCodec[K]) *Map[K, V] {
	return &Map[K, V]{db: db, namespace: []byte(namespace), codec: codec}
}

func (m *Map[K, V]) key(k K) ([]byte, error) {
	segs := k.KeySegments()
	if len(segs) != m.codec.Segments {
		return nil, fmt.Errorf("store: key has %d segments, want %d", len(segs), m.codec.Segments)
	}
	return JoinKey(m.namespace, segs)
}

// Save stores v under k, replacing any previous value.
func (m *Map[K, V]) Save(ctx context.Context, k K, v V) error {
	key, err := m.key(k)
	if err != nil {
		return err
	}
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode value: %w", err)
	}
	b := m.db.NewBatch()
	defer b.Close()
	if err := b.Set(key, val, nil); err != nil {
		return err
	}
	return m.db.CommitBatch(ctx, b)
}

// Load returns the value stored under k.
func (m *Map[K, V]) Load(k K) (V, error) {
	var v V
	key, err := m.key(k)
	if err != nil {
		return v, err
	}
	raw, err := m.db.Get(key)
	if errors.Is(err, pebblestore.ErrNotFound) {
		return v, ErrNotFound
	}
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("store: decode value: %w", err)
	}
	return v, nil
}

// Has reports whether a value is stored under k.
func (m *Map[K, V]) Has(k K) (bool, error) {
	key, err := m.key(k)
	if err != nil {
		return false, err
	}
	return m.db.Has(key)
}

// Remove deletes k. Removing an absent key is not an error.
func (m *Map[K, V]) Remove(ctx context.Context, k K) error {
	key, err := m.key(k)
	if err != nil {
		return err
	}
	b := m.db.NewBatch()
	defer b.Close()
	if err := b.Delete(key, nil); err != nil {
		return err
	}
	return m.db.CommitBatch(ctx, b)
}

// Range calls fn for every entry whose leading key segments equal prefix, in
// ascending key byte order, stopping after limit entries (0 means no limit)
// or when fn returns false.
func (m *Map[K, V]) Range(prefix [][]byte, limit int, fn func(k K, v V) bool) error {
	if len(prefix) >= m.codec.Segments {
		return ErrPrefixTooLong
	}
	p, err := PrefixKey(m.namespace, prefix)
	if err != nil {
		return err
	}
	var rangeErr error
	n := 0
	err = m.db.ScanPrefix(p, func(key, raw []byte) bool {
		_, segs, err := SplitKey(key, m.codec.Segments)
		if err != nil {
			rangeErr = err
			return false
		}
		k, err := m.codec.Decode(segs)
		if err != nil {
			rangeErr = fmt.Errorf("store: decode key %x: %w", key, err)
			return false
		}
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			rangeErr = fmt.Errorf("store: decode value for %x: %w", key, err)
			return false
		}
		n++
		return fn(k, v) && (limit <= 0 || n < limit)
	})
	if err != nil {
		return err
	}
	return rangeErr
}

// Entries collects Range results.
func (m *Map[K, V]) Entries(prefix [][]byte, limit int) ([]Entry[K, V], error) {
	var out []Entry[K, V]
	err := m.Range(prefix, limit, func(k K, v V) bool {
		out = append(out, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return out, err
}

// Keys collects the keys of Range results.
func (m *Map[K, V]) Keys(prefix [][]byte, limit int) ([]K, error) {
	var out []K
	err := m.Range(prefix, limit, func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out, err
}
