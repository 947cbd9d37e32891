package fungible

import "unicode/utf8"

// Key discriminants. They group variants for prefix scans and are unrelated
// to Compare: Coin has the lower tag but the higher value order.
const (
	DiscriminantCoin  byte = 0x00
	DiscriminantToken byte = 0x01
)

// KindPrefix returns the one-byte key prefix shared by every identifier of
// kind k.
func KindPrefix(k Kind) []byte {
	if k == KindToken {
		return []byte{DiscriminantToken}
	}
	return []byte{DiscriminantCoin}
}

// Discriminant returns the key tag byte of f.
func (f Fungible) Discriminant() byte {
	if f.kind == KindToken {
		return DiscriminantToken
	}
	return DiscriminantCoin
}

// Prefix returns the discriminant as a one-byte slice.
func (f Fungible) Prefix() []byte { return []byte{f.Discriminant()} }

// Key returns the binary key form: discriminant followed by the raw payload.
// There is no length prefix or terminator; embedding the key in a larger
// composite relies on the store's own segmentation.
func (f Fungible) Key() []byte {
	k := make([]byte, 0, 1+len(f.payload))
	k = append(k, f.Discriminant())
	k = append(k, f.payload...)
	return k
}

// KeySegments returns the discriminant and payload as two separate store key
// segments.
func (f Fungible) KeySegments() [][]byte {
	return [][]byte{f.Prefix(), []byte(f.payload)}
}

// DecodeKey is the inverse of Key.
func DecodeKey(b []byte) (Fungible, error) {
	if len(b) == 0 {
		return Fungible{}, decodeErr("empty key: missing discriminant byte", nil)
	}
	var kind Kind
	switch b[0] {
	case DiscriminantCoin:
		kind = KindCoin
	case DiscriminantToken:
		kind = KindToken
	default:
		return Fungible{}, decodeErr("unknown type byte", ErrInvalidDiscriminant)
	}
	payload := b[1:]
	if !utf8.Valid(payload) {
		return Fungible{}, decodeErr(kind.String()+" payload is not valid UTF-8", nil)
	}
	return Fungible{kind: kind, payload: string(payload)}, nil
}

// FromKeySegments rebuilds an identifier from the two segments produced by
// KeySegments.
func FromKeySegments(segs [][]byte) (Fungible, error) {
	if len(segs) != 2 {
		return Fungible{}, decodeErr("expected 2 key segments", nil)
	}
	if len(segs[0]) != 1 {
		return Fungible{}, decodeErr("discriminant segment must be exactly one byte", nil)
	}
	k := make([]byte, 0, 1+len(segs[1]))
	k = append(k, segs[0][0])
	k = append(k, segs[1]...)
	return DecodeKey(k)
}

// MarshalBinary implements encoding.BinaryMarshaler using Key.
func (f Fungible) MarshalBinary() ([]byte, error) { return f.Key(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler using DecodeKey.
func (f *Fungible) UnmarshalBinary(b []byte) error {
	v, err := DecodeKey(b)
	if err != nil {
		return err
	}
	*f = v
	return nil
}
