package fungible

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes f externally tagged: {"Coin":"uluna"} or
// {"Token":"terra1..."}.
func (f Fungible) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{f.kind.String(): f.payload})
}

// UnmarshalJSON accepts exactly one of the "Coin" or "Token" tags.
func (f *Fungible) UnmarshalJSON(b []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(b, &tagged); err != nil {
		return decodeErr("expected a tagged object", err)
	}
	if len(tagged) != 1 {
		return decodeErr(fmt.Sprintf("expected exactly one variant tag, got %d", len(tagged)), nil)
	}
	for tag, raw := range tagged {
		var payload string
		if err := json.Unmarshal(raw, &payload); err != nil {
			return decodeErr(tag+" payload must be a string", err)
		}
		switch tag {
		case "Coin":
			*f = Coin(payload)
		case "Token":
			*f = Token(payload)
		default:
			return decodeErr(fmt.Sprintf("unknown variant %q", tag), nil)
		}
	}
	return nil
}
