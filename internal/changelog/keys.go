package changelog

import (
	"encoding/binary"
)

var (
	logPrefix  = []byte("changes/")
	metaSuffix = []byte("/m")
	entrySeg   = []byte("/e/")
)

func appendBE8(dst []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

// KeyMeta builds the metadata key of a log.
func KeyMeta(name string) []byte {
	k := make([]byte, 0, len(logPrefix)+len(name)+len(metaSuffix))
	k = append(k, logPrefix...)
	k = append(k, name...)
	k = append(k, metaSuffix...)
	return k
}

// KeyEntry builds the entry key with a big-endian sequence for proper ordering.
func KeyEntry(name string, seq uint64) []byte {
	k := make([]byte, 0, len(logPrefix)+len(name)+len(entrySeg)+8)
	k = append(k, logPrefix...)
	k = append(k, name...)
	k = append(k, entrySeg...)
	k = appendBE8(k, seq)
	return k
}

// seqFromKey extracts the trailing sequence of an entry key.
func seqFromKey(k []byte) uint64 {
	return binary.BigEndian.Uint64(k[len(k)-8:])
}

type meta struct {
	first uint64 // oldest retained sequence, 0 when empty
	last  uint64
}

func (m meta) encode() []byte {
	b := make([]byte, 0, 16)
	b = appendBE8(b, m.first)
	return appendBE8(b, m.last)
}

func decodeMeta(b []byte) (meta, bool) {
	if len(b) != 16 {
		return meta{}, false
	}
	return meta{first: binary.BigEndian.Uint64(b[:8]), last: binary.BigEndian.Uint64(b[8:])}, true
}
