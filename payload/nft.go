package payload

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/wormhole-foundation/vaa/internal/utils/json"
	"github.com/wormhole-foundation/vaa/internal/wire"
	"github.com/wormhole-foundation/vaa/types"
)

const (
	// MaxURILength is the longest token URI an NFT transfer can carry.
	MaxURILength = 200
	// MinNFTTransferLength is the length of an NFT transfer with an empty URI, id byte included.
	MinNFTTransferLength = 166
)

// NFTTransfer moves a non fungible token to an address on another chain. Symbol and Name lose
// trailing NUL characters on decode, like AttestMeta. A transfer whose URI is longer than
// MaxURILength is not an NFTTransfer and decodes as Unrecognized.
type NFTTransfer struct {
	TokenAddress types.Address `json:"tokenAddress"`
	TokenChain   types.ChainID `json:"tokenChain"`
	Symbol       string        `json:"symbol"`
	Name         string        `json:"name"`
	TokenID      *uint256.Int  `json:"tokenId"`
	URI          string        `json:"uri"`
	To           types.Address `json:"to"`
	ToChain      types.ChainID `json:"toChain"`
}

func (*NFTTransfer) isPayload()     {}
func (*NFTTransfer) Module() Module { return NFTBridge }
func (*NFTTransfer) Type() string   { return TypeNFTTransfer }
func (p *NFTTransfer) Accept(v Visitor) error {
	return v.VisitNFTTransfer(p)
}

func (p *NFTTransfer) TargetChain() (types.ChainID, bool) {
	return target(p.ToChain)
}

func (p *NFTTransfer) MarshalJSON() ([]byte, error) {
	type alias NFTTransfer
	return json.MarshalWith((*alias)(p), header(p))
}

func readNFTTransfer(_ Module, r *wire.Reader) Payload {
	p := &NFTTransfer{
		TokenAddress: r.Bytes32("tokenAddress"),
		TokenChain:   types.ChainID(r.Uint16("tokenChain")),
		Symbol:       unpadString(r.Bytes32("symbol")),
		Name:         unpadString(r.Bytes32("name")),
		TokenID:      r.Uint256("tokenId"),
	}
	uriLen := int(r.Uint8("uriLength"))
	if uriLen > MaxURILength {
		r.Fail("uriLength", fmt.Errorf("%d exceeds %d bytes", uriLen, MaxURILength))
	}
	p.URI = string(r.Bytes("uri", uriLen))
	p.To = r.Bytes32("to")
	p.ToChain = types.ChainID(r.Uint16("toChain"))

	return p
}
