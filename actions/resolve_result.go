package actions

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"

	"github.com/wagerlabs/wagervm/consts"
	"github.com/wagerlabs/wagervm/storage"
)

var _ codec.Typed = (*ResolveMarketResult)(nil)

// ResolveMarketResult is the output of a successful ResolveMarket action.
type ResolveMarketResult struct {
	MarketAddress ids.ID              `serialize:"true" json:"marketAddress"`
	Outcome       storage.OutcomeType `serialize:"true" json:"outcome"`
}

func (*ResolveMarketResult) GetTypeID() uint8 {
	return consts.ResolveMarketID
}

// MarshalCodec serializes the ResolveMarketResult using the provided packer.
func (r *ResolveMarketResult) MarshalCodec(p *codec.Packer) error {
	p.PackID(r.MarketAddress)
	p.PackByte(uint8(r.Outcome))
	return p.Err()
}

// UnmarshalCodec deserializes a ResolveMarketResult using the provided reader.
func (r *ResolveMarketResult) UnmarshalCodec(p *codec.Packer) error {
	p.UnpackID(true, &r.MarketAddress)
	r.Outcome = storage.OutcomeType(p.UnpackByte())
	return p.Err()
}
