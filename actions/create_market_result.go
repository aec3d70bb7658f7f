package actions

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"

	"github.com/wagerlabs/wagervm/consts"
)

var _ codec.Typed = (*CreateMarketResult)(nil)

// CreateMarketResult is the output of a successful CreateMarket action.
type CreateMarketResult struct {
	MarketAddress ids.ID `serialize:"true" json:"marketAddress"`
}

func (*CreateMarketResult) GetTypeID() uint8 {
	return consts.CreateMarketID
}

// MarshalCodec serializes the CreateMarketResult using the provided packer.
func (r *CreateMarketResult) MarshalCodec(p *codec.Packer) error {
	p.PackID(r.MarketAddress)
	return p.Err()
}

// UnmarshalCodec deserializes a CreateMarketResult using the provided reader.
func (r *CreateMarketResult) UnmarshalCodec(p *codec.Packer) error {
	p.UnpackID(true, &r.MarketAddress)
	return p.Err()
}
