package actions

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"

	"github.com/wagerlabs/wagervm/consts"
)

var _ codec.Typed = (*ClaimWinningsResult)(nil)

// ClaimWinningsResult is the output of a successful ClaimWinnings action.
type ClaimWinningsResult struct {
	MarketAddress ids.ID        `serialize:"true" json:"marketAddress"`
	BetAddress    ids.ID        `serialize:"true" json:"betAddress"`
	Claimant      codec.Address `serialize:"true" json:"claimant"`
	Payout        uint64        `serialize:"true" json:"payout"`
}

func (*ClaimWinningsResult) GetTypeID() uint8 {
	return consts.ClaimWinningsID
}

// MarshalCodec serializes the ClaimWinningsResult using the provided packer.
func (r *ClaimWinningsResult) MarshalCodec(p *codec.Packer) error {
	p.PackID(r.MarketAddress)
	p.PackID(r.BetAddress)
	p.PackAddress(r.Claimant)
	p.PackUint64(r.Payout)
	return p.Err()
}

// UnmarshalCodec deserializes a ClaimWinningsResult using the provided reader.
func (r *ClaimWinningsResult) UnmarshalCodec(p *codec.Packer) error {
	p.UnpackID(true, &r.MarketAddress)
	p.UnpackID(true, &r.BetAddress)
	p.UnpackAddress(&r.Claimant)
	r.Payout = p.UnpackUint64(false)
	return p.Err()
}
