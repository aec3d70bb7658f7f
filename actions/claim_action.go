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
	"github.com/wagerlabs/wagervm/escrow"
	"github.com/wagerlabs/wagervm/storage"
)

var _ chain.Action = (*ClaimWinnings)(nil)

// ClaimWinnings pays out a winning wager from a resolved market's escrow
// pool. The bet is located by deriving its address from (market, actor), so
// a caller can only ever claim their own wager. Each bet pays out at most
// once.
type ClaimWinnings struct {
	MarketAddress ids.ID `serialize:"true" json:"marketAddress"`
}

func (*ClaimWinnings) GetTypeID() uint8 {
	return consts.ClaimWinningsID
}

// StateKeys implements chain.Action.
func (cw *ClaimWinnings) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	betAddress := storage.BetAddress(cw.MarketAddress, actor)
	return state.Keys{
		string(storage.MarketKey(cw.MarketAddress)): state.Read,
		string(storage.BetKey(betAddress)):          state.Read | state.Write,
		string(storage.StateKeysBalance(actor)):     state.Read | state.Write,
		string(escrow.PoolKey(cw.MarketAddress)):    state.Read | state.Write,
	}
}

// Execute implements chain.Action.
func (cw *ClaimWinnings) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	market, err := storage.GetMarket(ctx, mu, cw.MarketAddress)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMarketNotFound, cw.MarketAddress)
		}
		return nil, fmt.Errorf("failed to get market %s: %w", cw.MarketAddress, err)
	}
	if market.Status != storage.MarketStatus_Resolved {
		return nil, fmt.Errorf("%w: %s", ErrMarketNotResolved, cw.MarketAddress)
	}

	betAddress := storage.BetAddress(cw.MarketAddress, actor)
	bet, err := storage.GetBet(ctx, mu, betAddress)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrBetNotFound, betAddress)
		}
		return nil, fmt.Errorf("failed to get bet %s: %w", betAddress, err)
	}
	// The derivation already binds the record to (market, actor); verify
	// the stored back-references anyway.
	if bet.Bettor != actor || bet.Market != cw.MarketAddress {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBettor, betAddress)
	}
	if storage.OutcomeFor(bet.Outcome) != market.Outcome {
		return nil, fmt.Errorf("%w: bet %s on %s, market resolved %s",
			ErrNotAWinner, betAddress, storage.OutcomeFor(bet.Outcome), market.Outcome)
	}
	if bet.Claimed {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyClaimed, betAddress)
	}

	payout, err := Winnings(market, bet.Amount)
	if err != nil {
		return nil, err
	}
	// A wager small enough for its share to truncate to zero still settles,
	// with nothing to withdraw.
	if payout > 0 {
		if err := escrow.Withdraw(ctx, mu, cw.MarketAddress, actor, payout); err != nil {
			return nil, err
		}
	}

	bet.Claimed = true
	if err := storage.SetBet(ctx, mu, betAddress, bet); err != nil {
		return nil, fmt.Errorf("failed to mark bet %s claimed: %w", betAddress, err)
	}

	result := &ClaimWinningsResult{
		MarketAddress: cw.MarketAddress,
		BetAddress:    betAddress,
		Claimant:      actor,
		Payout:        payout,
	}
	packer := codec.NewWriter(0, consts.MaxActionSize)
	packer.PackByte(result.GetTypeID())
	if err := result.MarshalCodec(packer); err != nil {
		return nil, fmt.Errorf("failed to marshal ClaimWinningsResult: %w", err)
	}
	return packer.Bytes(), nil
}

// ComputeUnits implements chain.Action.
func (*ClaimWinnings) ComputeUnits(chain.Rules) uint64 {
	return ClaimWinningsComputeUnits
}

// ValidRange implements chain.Action.
func (*ClaimWinnings) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

// Bytes implements codec.Marshaller.
func (cw *ClaimWinnings) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, consts.MaxActionSize),
		MaxSize: consts.MaxActionSize,
	}
	p.PackByte(consts.ClaimWinningsID)
	if err := codec.LinearCodec.MarshalInto(cw, p); err != nil {
		panic(fmt.Errorf("failed to marshal ClaimWinnings action: %w", err))
	}
	return p.Bytes
}

// UnmarshalClaimWinnings deserializes bytes into a ClaimWinnings action.
func UnmarshalClaimWinnings(b []byte) (chain.Action, error) {
	if len(b) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if b[0] != consts.ClaimWinningsID {
		return nil, fmt.Errorf("unexpected ClaimWinnings typeID: %d != %d", b[0], consts.ClaimWinningsID)
	}
	t := &ClaimWinnings{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		t,
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ClaimWinnings action: %w", err)
	}
	return t, nil
}
