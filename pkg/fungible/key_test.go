package fungible

import (
	"bytes"
	"errors"
	"testing"
)

func TestKeyLayout(t *testing.T) {
	if got := Coin("uluna").Key(); !bytes.Equal(got, []byte("\x00uluna")) {
		t.Fatalf("coin key: %q", got)
	}
	if got := Token("whDAI").Key(); !bytes.Equal(got, []byte("\x01whDAI")) {
		t.Fatalf("token key: %q", got)
	}
	if got := Coin("").Key(); !bytes.Equal(got, []byte{0x00}) {
		t.Fatalf("empty coin key: %q", got)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	for _, p := range []string{"", "uluna", "whDAI", "terra1qj7rjcesjlfqctzmc4qrz4hnvxcrv4x2ej5kd8", "日本"} {
		for _, f := range []Fungible{Coin(p), Token(p)} {
			got, err := DecodeKey(f.Key())
			if err != nil {
				t.Fatalf("decode %v: %v", f, err)
			}
			if got != f {
				t.Fatalf("got %v want %v", got, f)
			}
		}
	}
}

func TestKeyDiscriminantPrefix(t *testing.T) {
	for _, p := range []string{"", "a", "\x01", "zz"} {
		if !bytes.HasPrefix(Coin(p).Key(), KindPrefix(KindCoin)) || Coin(p).Key()[0] != 0x00 {
			t.Fatalf("coin key must start with 0x00")
		}
		if !bytes.HasPrefix(Token(p).Key(), KindPrefix(KindToken)) || Token(p).Key()[0] != 0x01 {
			t.Fatalf("token key must start with 0x01")
		}
	}
}

// Byte order of keys groups Coins first, while value order puts Tokens first.
// Stores that iterate keys do not yield Compare order across variants.
func TestKeyOrderIsInverseOfValueOrderAcrossKinds(t *testing.T) {
	c, tk := Coin("a"), Token("a")
	if bytes.Compare(c.Key(), tk.Key()) >= 0 {
		t.Fatalf("coin key should sort before token key")
	}
	if c.Compare(tk) <= 0 {
		t.Fatalf("coin value should sort after token value")
	}
	// Within a kind both orders agree.
	if bytes.Compare(Coin("a").Key(), Coin("b").Key()) >= 0 || !Coin("a").Less(Coin("b")) {
		t.Fatalf("within-kind orders should agree")
	}
}

func TestDecodeKeyErrors(t *testing.T) {
	tests := []struct {
		name      string
		in        []byte
		wantDiscr bool
	}{
		{"empty", nil, false},
		{"empty slice", []byte{}, false},
		{"bad discriminant", []byte{0x02, 'x'}, true},
		{"bad discriminant only", []byte{0xff}, true},
		{"coin invalid utf8", []byte{0x00, 0xff, 0xfe}, false},
		{"token invalid utf8", []byte{0x01, 0xc3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeKey(tt.in)
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DecodeError, got %v", err)
			}
			if de.Target != "Fungible" || de.Msg == "" {
				t.Fatalf("missing diagnostics: %+v", de)
			}
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("expected errors.Is(err, ErrDecode)")
			}
			if errors.Is(err, ErrParse) {
				t.Fatalf("decode error must not match ErrParse")
			}
			if errors.Is(err, ErrInvalidDiscriminant) != tt.wantDiscr {
				t.Fatalf("ErrInvalidDiscriminant match = %v, want %v", !tt.wantDiscr, tt.wantDiscr)
			}
		})
	}
}

func TestBinaryMarshaler(t *testing.T) {
	b, err := Token("whDAI").MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var f Fungible
	if err := f.UnmarshalBinary(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f != Token("whDAI") {
		t.Fatalf("got %v", f)
	}
	if err := f.UnmarshalBinary([]byte{0x02}); err == nil {
		t.Fatalf("expected error")
	}
	if f != Token("whDAI") {
		t.Fatalf("failed decode must not modify the receiver")
	}
}

func TestKeySegments(t *testing.T) {
	segs := Coin("uluna").KeySegments()
	if len(segs) != 2 || !bytes.Equal(segs[0], []byte{0x00}) || string(segs[1]) != "uluna" {
		t.Fatalf("segments: %q", segs)
	}
	got, err := FromKeySegments(segs)
	if err != nil || got != Coin("uluna") {
		t.Fatalf("got %v, %v", got, err)
	}
	if _, err := FromKeySegments([][]byte{{0x00}}); err == nil {
		t.Fatalf("expected error for one segment")
	}
	if _, err := FromKeySegments([][]byte{{0x00, 0x01}, []byte("x")}); err == nil {
		t.Fatalf("expected error for wide discriminant")
	}
	if _, err := FromKeySegments([][]byte{{0x07}, []byte("x")}); !errors.Is(err, ErrInvalidDiscriminant) {
		t.Fatalf("expected invalid discriminant, got %v", err)
	}
}

// Without a length prefix, two keys concatenated back to back cannot be split
// by the codec alone: the same bytes decode as a single Coin.
func TestConcatenatedKeysNeedStoreSegmentation(t *testing.T) {
	joined := append(Coin("uluna").Key(), Token("whDAI").Key()...)
	got, err := DecodeKey(joined)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != Coin("uluna\x01whDAI") {
		t.Fatalf("got %q", got.Payload())
	}
}
