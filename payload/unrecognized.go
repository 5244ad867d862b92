package payload

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wormhole-foundation/vaa/internal/utils/json"
	"github.com/wormhole-foundation/vaa/types"
)

// Unrecognized holds a payload that matches no known variant. It is kept verbatim so that VAAs
// carrying newer payloads still decode.
type Unrecognized struct {
	Raw hexutil.Bytes `json:"raw"`
}

func (*Unrecognized) isPayload()     {}
func (*Unrecognized) Module() Module { return "" }
func (*Unrecognized) Type() string   { return TypeUnrecognized }
func (p *Unrecognized) Accept(v Visitor) error {
	return v.VisitUnrecognized(p)
}

func (*Unrecognized) TargetChain() (types.ChainID, bool) {
	return types.ChainIDUnset, false
}

func (p *Unrecognized) MarshalJSON() ([]byte, error) {
	type alias Unrecognized
	return json.MarshalWith((*alias)(p), header(p))
}
