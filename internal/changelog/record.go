package changelog

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

// ErrCorrupt is returned when a stored entry fails its checksum.
var ErrCorrupt = errors.New("changelog: corrupt entry")

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

func encodeRecord(header, payload []byte) []byte {
	out := make([]byte, 0, binary.MaxVarintLen64+len(header)+len(payload)+4)
	out = binary.AppendUvarint(out, uint64(len(header)))
	out = append(out, header...)
	out = append(out, payload...)

	crc := crc32.Update(0, castagnoli, header)
	crc = crc32.Update(crc, castagnoli, payload)
	return binary.BigEndian.AppendUint32(out, crc)
}

func decodeRecord(b []byte) (header, payload []byte, err error) {
	if len(b) < 1+4 {
		return nil, nil, ErrCorrupt
	}
	hlen, n := binary.Uvarint(b)
	if n <= 0 || len(b)-n < 4 || uint64(len(b)-n-4) < hlen {
		return nil, nil, ErrCorrupt
	}
	header = b[n : n+int(hlen)]
	payload = b[n+int(hlen) : len(b)-4]
	crc := crc32.Update(0, castagnoli, header)
	crc = crc32.Update(crc, castagnoli, payload)
	if crc != binary.BigEndian.Uint32(b[len(b)-4:]) {
		return nil, nil, ErrCorrupt
	}
	return header, payload, nil
}
