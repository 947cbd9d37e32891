// Package changelog implements the registry's append-only change feed.
//
// # Overview
//
// Every asset registration or removal and every pair creation or removal
// appends one Change with a strictly increasing sequence number. Readers page
// forward from a sequence they have already seen and may block until the next
// append. The oldest entries are trimmed once the feed holds more than its
// retention.
//
// Keys are lexicographically ordered for range scans:
//   - changes/{log}/m           (metadata: firstSeq, lastSeq)
//   - changes/{log}/e/{seq_be8} (entries)
//
// Entries are stored as: varint headerLen | header | payload | crc32c(header|payload),
// where the header is the operation name and the payload the JSON-encoded Change.
//
// API surface (internal)
//
//	l, _ := Open(db, "registry", 10000)
//	seqs, _ := l.Append(ctx, Change{Op: OpAssetPut, ID: &id})
//	page, _ := l.Read(ReadOptions{After: seqs[0] - 1, Limit: 100})
//	page, _ = l.ReadWait(ctx, ReadOptions{After: page.Next}, 5*time.Second)
//	woke := l.WaitForAppend(ctx, 200*time.Millisecond)
package changelog
