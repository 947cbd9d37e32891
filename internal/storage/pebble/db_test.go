package pebblestore

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

type testMetrics struct {
	wrote        int
	read         int
	batchCommits int
	batchOps     int
}

func (m *testMetrics) ObserveWrite(d time.Duration, bytes int) { m.wrote += bytes }
func (m *testMetrics) ObserveRead(d time.Duration, bytes int)  { m.read += bytes }
func (m *testMetrics) ObserveBatchCommit(d time.Duration, numOps int, bytes int) {
	m.batchCommits++
	m.batchOps += numOps
}

func newTestDB(t *testing.T) (*DB, *testMetrics) {
	t.Helper()
	metrics := &testMetrics{}
	db, err := Open(Options{
		DataDir:       t.TempDir(),
		Fsync:         FsyncModeInterval,
		FsyncInterval: 2 * time.Millisecond,
		Metrics:       metrics,
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, metrics
}

func TestOpenRequiresDataDir(t *testing.T) {
	if _, err := Open(Options{}); err == nil {
		t.Fatalf("expected error without DataDir")
	}
}

func TestCRUD(t *testing.T) {
	db, metrics := newTestDB(t)

	key := []byte("\x00uluna")
	val := []byte("v1")
	if err := db.Set(key, val); err != nil {
		t.Fatalf("set: %v", err)
	}
	if metrics.wrote != len(key)+len(val) {
		t.Fatalf("write metrics: %d", metrics.wrote)
	}

	got, err := db.Get(key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != string(val) {
		t.Fatalf("got %q want %q", got, val)
	}
	if metrics.read == 0 {
		t.Fatalf("expected read metrics to record bytes")
	}

	ok, err := db.Has(key)
	if err != nil || !ok {
		t.Fatalf("has: %v %v", ok, err)
	}

	if err := db.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.Get(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if ok, _ := db.Has(key); ok {
		t.Fatalf("has after delete")
	}
}

func TestBatchCommitMetrics(t *testing.T) {
	db, metrics := newTestDB(t)

	b := db.NewBatch()
	if err := b.Set([]byte("a"), []byte("1"), nil); err != nil {
		t.Fatalf("batch set: %v", err)
	}
	if err := b.Set([]byte("b"), []byte("2"), nil); err != nil {
		t.Fatalf("batch set: %v", err)
	}
	if err := db.CommitBatch(context.Background(), b); err != nil {
		t.Fatalf("commit: %v", err)
	}
	b.Close()

	if metrics.batchCommits != 1 || metrics.batchOps != 2 {
		t.Fatalf("want 1 commit of 2 ops, got %d/%d", metrics.batchCommits, metrics.batchOps)
	}
}

func TestCommitBatchCancelled(t *testing.T) {
	db, _ := newTestDB(t)
	b := db.NewBatch()
	defer b.Close()
	_ = b.Set([]byte("a"), []byte("1"), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := db.CommitBatch(ctx, b); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ok, _ := db.Has([]byte("a")); ok {
		t.Fatalf("cancelled batch must not be applied")
	}
}

func TestSnapshotConsistency(t *testing.T) {
	db, _ := newTestDB(t)

	key := []byte("k2")
	if err := db.Set(key, []byte("old")); err != nil {
		t.Fatalf("set: %v", err)
	}
	snap := db.NewSnapshot()
	defer snap.Close()

	if err := db.Set(key, []byte("new")); err != nil {
		t.Fatalf("set: %v", err)
	}

	valOld, closer, err := snap.Get(key)
	if err != nil {
		t.Fatalf("snap get: %v", err)
	}
	if string(valOld) != "old" {
		t.Fatalf("snapshot saw %q want %q", valOld, "old")
	}
	closer.Close()

	valNew, err := db.Get(key)
	if err != nil {
		t.Fatalf("db get: %v", err)
	}
	if string(valNew) != "new" {
		t.Fatalf("db saw %q want %q", valNew, "new")
	}
}

func TestScanPrefix(t *testing.T) {
	db, _ := newTestDB(t)
	for _, k := range []string{"\x00a", "\x00b", "\x01a", "\x01b", "\x02"} {
		if err := db.Set([]byte(k), []byte("v")); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	var got []string
	err := db.ScanPrefix([]byte{0x01}, func(k, _ []byte) bool {
		got = append(got, string(k))
		return true
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 || got[0] != "\x01a" || got[1] != "\x01b" {
		t.Fatalf("got %q", got)
	}

	n := 0
	_ = db.ScanPrefix(nil, func(_, _ []byte) bool { n++; return n < 3 })
	if n != 3 {
		t.Fatalf("early stop: %d", n)
	}
}

func TestPrefixEnd(t *testing.T) {
	tests := []struct {
		in, want []byte
	}{
		{[]byte{0x00}, []byte{0x01}},
		{[]byte("ab"), []byte("ac")},
		{[]byte{0x01, 0xff}, []byte{0x02}},
		{[]byte{0xff, 0xff}, nil},
		{nil, nil},
	}
	for _, tt := range tests {
		if got := PrefixEnd(tt.in); !bytes.Equal(got, tt.want) {
			t.Fatalf("PrefixEnd(%x) = %x want %x", tt.in, got, tt.want)
		}
	}
}

func TestParseFsyncMode(t *testing.T) {
	for in, want := range map[string]FsyncMode{"always": FsyncModeAlways, "interval": FsyncModeInterval, "never": FsyncModeNever, "": FsyncModeUnspecified} {
		got, err := ParseFsyncMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseFsyncMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFsyncMode("sometimes"); err == nil {
		t.Fatalf("expected error")
	}
}
