package changelog

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// ReadOptions selects a page of the feed.
type ReadOptions struct {
	// After is the last sequence the reader has seen; reading starts at
	// After+1. Zero starts at the oldest retained entry.
	After uint64
	// Limit caps the page size. Zero means no cap.
	Limit int
}

// Page is one slice of the feed.
type Page struct {
	Changes []Change `json:"changes"`
	// Next is the After value for the following read.
	Next uint64 `json:"next"`
	// First is the oldest retained sequence. A reader whose After+1 is below
	// First has missed trimmed entries.
	First uint64 `json:"first"`
	Last  uint64 `json:"last"`
}

// Read returns up to opts.Limit changes with sequence greater than opts.After.
func (l *Log) Read(opts ReadOptions) (Page, error) {
	first, last := l.Bounds()
	page := Page{Changes: []Change{}, Next: opts.After, First: first, Last: last}
	if opts.After >= last {
		return page, nil
	}
	iter, err := l.db.NewIter(&pebble.IterOptions{
		LowerBound: KeyEntry(l.name, opts.After+1),
		UpperBound: KeyEntry(l.name, last+1),
	})
	if err != nil {
		return page, err
	}
	for ok := iter.First(); ok && (opts.Limit <= 0 || len(page.Changes) < opts.Limit); ok = iter.Next() {
		seq := seqFromKey(iter.Key())
		_, payload, err := decodeRecord(iter.Value())
		if err != nil {
			_ = iter.Close()
			return page, fmt.Errorf("%w: seq %d", err, seq)
		}
		var c Change
		if err := json.Unmarshal(payload, &c); err != nil {
			_ = iter.Close()
			return page, fmt.Errorf("changelog: decode seq %d: %w", seq, err)
		}
		c.Seq = seq
		page.Changes = append(page.Changes, c)
		page.Next = seq
	}
	if err := iter.Error(); err != nil {
		_ = iter.Close()
		return page, err
	}
	return page, iter.Close()
}
