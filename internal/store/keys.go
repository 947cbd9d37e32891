package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSegmentTooLong is returned for namespaces or segments over 65535 bytes.
	ErrSegmentTooLong = errors.New("store: key segment exceeds 65535 bytes")
	// ErrMalformedKey is returned when a stored key cannot be split.
	ErrMalformedKey = errors.New("store: malformed key")
)

func appendLenPrefixed(dst, seg []byte) ([]byte, error) {
	if len(seg) > math.MaxUint16 {
		return nil, ErrSegmentTooLong
	}
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(len(seg)))
	dst = append(dst, b[:]...)
	return append(dst, seg...), nil
}

func readLenPrefixed(b []byte) (seg, rest []byte, err error) {
	if len(b) < 2 {
		return nil, nil, fmt.Errorf("%w: missing length", ErrMalformedKey)
	}
	n := int(binary.BigEndian.Uint16(b[:2]))
	if len(b) < 2+n {
		return nil, nil, fmt.Errorf("%w: segment of %d bytes truncated to %d", ErrMalformedKey, n, len(b)-2)
	}
	return b[2 : 2+n], b[2+n:], nil
}

// JoinKey builds a full key: the namespace and every segment but the last
// are length-prefixed, the last segment is appended raw.
func JoinKey(namespace []byte, segs [][]byte) ([]byte, error) {
	size := 2 + len(namespace)
	for _, s := range segs {
		size += 2 + len(s)
	}
	k, err := appendLenPrefixed(make([]byte, 0, size), namespace)
	if err != nil {
		return nil, err
	}
	for i, s := range segs {
		if i == len(segs)-1 {
			k = append(k, s...)
			break
		}
		if k, err = appendLenPrefixed(k, s); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// PrefixKey builds a scan prefix: the namespace and every given segment are
// length-prefixed. It matches every key whose leading segments equal segs.
func PrefixKey(namespace []byte, segs [][]byte) ([]byte, error) {
	k, err := appendLenPrefixed(nil, namespace)
	if err != nil {
		return nil, err
	}
	for _, s := range segs {
		if k, err = appendLenPrefixed(k, s); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// SplitKey is the inverse of JoinKey for a key made of n segments.
func SplitKey(key []byte, n int) (namespace []byte, segs [][]byte, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: segment count %d", ErrMalformedKey, n)
	}
	namespace, rest, err := readLenPrefixed(key)
	if err != nil {
		return nil, nil, err
	}
	segs = make([][]byte, 0, n)
	for i := 0; i < n-1; i++ {
		var seg []byte
		if seg, rest, err = readLenPrefixed(rest); err != nil {
			return nil, nil, err
		}
		segs = append(segs, seg)
	}
	return namespace, append(segs, rest), nil
}

// Prefix is a convenience for building the segment list passed to Range.
func Prefix(segs ...[]byte) [][]byte { return segs }
