package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/wagerlabs/wagervm/consts"
	"github.com/wagerlabs/wagervm/storage"
)

var _ chain.Action = (*ResolveMarket)(nil)

// ResolveMarket fixes the outcome of a market after its betting period has
// ended. Only the market's resolution authority may resolve, and only once.
type ResolveMarket struct {
	MarketAddress ids.ID `serialize:"true" json:"marketAddress"`

	// Outcome must be Outcome_Yes or Outcome_No.
	Outcome storage.OutcomeType `serialize:"true" json:"outcome"`
}

func (*ResolveMarket) GetTypeID() uint8 {
	return consts.ResolveMarketID
}

// StateKeys implements chain.Action.
func (rm *ResolveMarket) StateKeys(codec.Address, ids.ID) state.Keys {
	return state.Keys{
		string(storage.MarketKey(rm.MarketAddress)): state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (rm *ResolveMarket) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	if rm.Outcome != storage.Outcome_Yes && rm.Outcome != storage.Outcome_No {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOutcome, rm.Outcome)
	}

	market, err := storage.GetMarket(ctx, mu, rm.MarketAddress)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMarketNotFound, rm.MarketAddress)
		}
		return nil, fmt.Errorf("failed to get market %s: %w", rm.MarketAddress, err)
	}
	if market.Status == storage.MarketStatus_Resolved {
		return nil, fmt.Errorf("%w: %s", ErrMarketAlreadyResolved, rm.MarketAddress)
	}
	if timestamp < market.EndTime {
		return nil, fmt.Errorf("%w: market %s (now %d, end %d)",
			ErrBettingPeriodNotEnded, rm.MarketAddress, timestamp, market.EndTime)
	}
	if actor != market.ResolutionAuthority {
		return nil, fmt.Errorf("%w: actor %s is not authority %s for market %s",
			ErrUnauthorizedResolution, actor, market.ResolutionAuthority, rm.MarketAddress)
	}

	market.Status = storage.MarketStatus_Resolved
	market.Outcome = rm.Outcome
	market.ResolutionTime = timestamp
	if err := storage.SetMarket(ctx, mu, market); err != nil {
		return nil, fmt.Errorf("failed to save resolved market %s: %w", rm.MarketAddress, err)
	}

	result := &ResolveMarketResult{
		MarketAddress: rm.MarketAddress,
		Outcome:       rm.Outcome,
	}
	packer := codec.NewWriter(0, consts.MaxActionSize)
	packer.PackByte(result.GetTypeID())
	if err := result.MarshalCodec(packer); err != nil {
		return nil, fmt.Errorf("failed to marshal ResolveMarketResult: %w", err)
	}
	return packer.Bytes(), nil
}

// ComputeUnits implements chain.Action.
func (*ResolveMarket) ComputeUnits(chain.Rules) uint64 {
	return ResolveMarketComputeUnits
}

// ValidRange implements chain.Action.
func (*ResolveMarket) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

// Bytes implements codec.Marshaller.
func (rm *ResolveMarket) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, consts.MaxActionSize),
		MaxSize: consts.MaxActionSize,
	}
	p.PackByte(consts.ResolveMarketID)
	if err := codec.LinearCodec.MarshalInto(rm, p); err != nil {
		panic(fmt.Errorf("failed to marshal ResolveMarket action: %w", err))
	}
	return p.Bytes
}

// UnmarshalResolveMarket deserializes bytes into a ResolveMarket action.
func UnmarshalResolveMarket(b []byte) (chain.Action, error) {
	if len(b) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if b[0] != consts.ResolveMarketID {
		return nil, fmt.Errorf("unexpected ResolveMarket typeID: %d != %d", b[0], consts.ResolveMarketID)
	}
	t := &ResolveMarket{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		t,
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ResolveMarket action: %w", err)
	}
	return t, nil
}
