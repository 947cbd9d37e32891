package changelog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	pebblestore "github.com/voydwalkr/fungible/internal/storage/pebble"
)

// Log is a single append-only change feed.
type Log struct {
	db     *pebblestore.DB
	name   string
	retain uint64

	mu       sync.Mutex
	meta     meta
	notifyCh chan struct{}
}

// Open loads the feed called name. retain bounds the number of entries kept;
// zero keeps everything.
func Open(db *pebblestore.DB, name string, retain int) (*Log, error) {
	if retain < 0 {
		return nil, fmt.Errorf("changelog: negative retention %d", retain)
	}
	l := &Log{db: db, name: name, retain: uint64(retain), notifyCh: make(chan struct{})}
	b, err := db.Get(KeyMeta(name))
	switch {
	case err == nil:
		m, ok := decodeMeta(b)
		if !ok {
			return nil, fmt.Errorf("%w: metadata of %q", ErrCorrupt, name)
		}
		l.meta = m
	case !errors.Is(err, pebblestore.ErrNotFound):
		return nil, err
	}
	return l, nil
}

// Name returns the feed name.
func (l *Log) Name() string { return l.name }

// Bounds returns the oldest retained and the newest sequence. Both are zero
// for a feed that never had an append.
func (l *Log) Bounds() (first, last uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.meta.first, l.meta.last
}

// Append stores changes as a single atomic batch, assigning each the next
// sequence number, and trims entries beyond the retention in the same batch.
func (l *Log) Append(ctx context.Context, changes ...Change) ([]uint64, error) {
	if len(changes) == 0 {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.db.NewBatch()
	defer b.Close()

	next := l.meta
	seqs := make([]uint64, len(changes))
	for i, c := range changes {
		next.last++
		if next.first == 0 {
			next.first = next.last
		}
		c.Seq = next.last
		payload, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		if err := b.Set(KeyEntry(l.name, c.Seq), encodeRecord([]byte(c.Op), payload), nil); err != nil {
			return nil, err
		}
		seqs[i] = c.Seq
	}
	if l.retain > 0 && next.last-next.first+1 > l.retain {
		keepFrom := next.last - l.retain + 1
		if err := b.DeleteRange(KeyEntry(l.name, next.first), KeyEntry(l.name, keepFrom), nil); err != nil {
			return nil, err
		}
		next.first = keepFrom
	}
	if err := b.Set(KeyMeta(l.name), next.encode(), nil); err != nil {
		return nil, err
	}
	if err := l.db.CommitBatch(ctx, b); err != nil {
		return nil, err
	}
	l.meta = next
	close(l.notifyCh)
	l.notifyCh = make(chan struct{})
	return seqs, nil
}
