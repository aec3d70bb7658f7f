package actions

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"

	"github.com/wagerlabs/wagervm/consts"
)

var _ codec.Typed = (*PlaceBetResult)(nil)

// PlaceBetResult is the output of a successful PlaceBet action.
type PlaceBetResult struct {
	BetAddress    ids.ID `serialize:"true" json:"betAddress"`
	MarketAddress ids.ID `serialize:"true" json:"marketAddress"`
	Amount        uint64 `serialize:"true" json:"amount"`
	Outcome       bool   `serialize:"true" json:"outcome"`
}

func (*PlaceBetResult) GetTypeID() uint8 {
	return consts.PlaceBetID
}

// MarshalCodec serializes the PlaceBetResult using the provided packer.
func (r *PlaceBetResult) MarshalCodec(p *codec.Packer) error {
	p.PackID(r.BetAddress)
	p.PackID(r.MarketAddress)
	p.PackUint64(r.Amount)
	p.PackBool(r.Outcome)
	return p.Err()
}

// UnmarshalCodec deserializes a PlaceBetResult using the provided reader.
func (r *PlaceBetResult) UnmarshalCodec(p *codec.Packer) error {
	p.UnpackID(true, &r.BetAddress)
	p.UnpackID(true, &r.MarketAddress)
	r.Amount = p.UnpackUint64(true)
	r.Outcome = p.UnpackBool()
	return p.Err()
}
