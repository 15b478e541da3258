package secretshare

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/coinbase/go-secretshare/pkg/secretshare/share"
)

// wireEncoding is the URL-safe, unpadded base64 alphabet used for every
// envelope this package emits.
var wireEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

// bigIntText marshals a *big.Int as decimal text rather than a JSON number,
// so precision is never silently truncated by a consumer's JSON library.
type bigIntText struct {
	v *big.Int
}

func (b bigIntText) MarshalJSON() ([]byte, error) {
	if b.v == nil {
		return nil, fmt.Errorf("secretshare: cannot encode a nil integer")
	}
	return json.Marshal(b.v.String())
}

func (b *bigIntText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("secretshare: decoding integer: %w", err)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("secretshare: %q is not a valid decimal integer", s)
	}
	b.v = n
	return nil
}

// partWire is the JSON shape of a Part: {"name": string, "values": [string, …]}.
type partWire struct {
	Name   string       `json:"name"`
	Values []bigIntText `json:"values"`
}

// EncodePart renders a Part as UTF-8 JSON wrapped in URL-safe base64 without
// padding.
func EncodePart(p share.Part) (string, error) {
	w := partWire{Name: p.Name, Values: make([]bigIntText, len(p.Values))}
	for i, v := range p.Values {
		w.Values[i] = bigIntText{v: v}
	}
	raw, err := json.Marshal(w)
	if err != nil {
		return "", remapError("EncodePart", err)
	}
	return wireEncoding.EncodeToString(raw), nil
}

// DecodePart is the inverse of EncodePart.
func DecodePart(encoded string) (share.Part, error) {
	raw, err := wireEncoding.DecodeString(encoded)
	if err != nil {
		return share.Part{}, remapError("DecodePart", err)
	}
	var w partWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return share.Part{}, remapError("DecodePart", err)
	}
	values := make([]*big.Int, len(w.Values))
	for i, v := range w.Values {
		values[i] = v.v
	}
	return share.Part{Name: w.Name, Values: values}, nil
}

// configWire is the JSON shape of a Configuration:
// {"modulo": string, "formula": string, "version": integer}.
type configWire struct {
	Modulo  bigIntText `json:"modulo"`
	Formula string     `json:"formula"`
	Version int        `json:"version"`
}

// wireVersion is the Configuration envelope version this package emits.
// Bump it if the wire shape ever changes incompatibly.
const wireVersion = 1

// EncodeConfiguration renders c as UTF-8 JSON wrapped in URL-safe base64
// without padding.
func EncodeConfiguration(c *Configuration) (string, error) {
	w := configWire{
		Modulo:  bigIntText{v: c.Modulus()},
		Formula: c.Formula(),
		Version: wireVersion,
	}
	raw, err := json.Marshal(w)
	if err != nil {
		return "", remapError("EncodeConfiguration", err)
	}
	return wireEncoding.EncodeToString(raw), nil
}

// DecodeConfiguration is the inverse of EncodeConfiguration. A missing
// "version" field defaults to 1, matching the original JSON schema's
// default; any other version is rejected since this package does not yet
// know how to interpret it.
func DecodeConfiguration(encoded string) (*Configuration, error) {
	raw, err := wireEncoding.DecodeString(encoded)
	if err != nil {
		return nil, remapError("DecodeConfiguration", err)
	}
	w := configWire{Version: wireVersion}
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, remapError("DecodeConfiguration", err)
	}
	if w.Version != wireVersion {
		return nil, remapError("DecodeConfiguration", fmt.Errorf("unsupported configuration version %d", w.Version))
	}
	return New(w.Modulo.v, w.Formula)
}
