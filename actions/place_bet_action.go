package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	safemath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/wagerlabs/wagervm/consts"
	"github.com/wagerlabs/wagervm/escrow"
	"github.com/wagerlabs/wagervm/storage"
)

var _ chain.Action = (*PlaceBet)(nil)

// PlaceBet wagers Amount native units on one side of an open market. The
// stake moves into the market's escrow pool and a Bet record is created at
// the address derived from (market, bettor); a bettor therefore holds at
// most one wager per market.
type PlaceBet struct {
	MarketAddress ids.ID `serialize:"true" json:"marketAddress"`
	Amount        uint64 `serialize:"true" json:"amount"`

	// Outcome is the side wagered on: true for Yes, false for No.
	Outcome bool `serialize:"true" json:"outcome"`
}

func (*PlaceBet) GetTypeID() uint8 {
	return consts.PlaceBetID
}

// StateKeys implements chain.Action.
func (pb *PlaceBet) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	betAddress := storage.BetAddress(pb.MarketAddress, actor)
	return state.Keys{
		string(storage.MarketKey(pb.MarketAddress)): state.Read | state.Write,
		string(storage.BetKey(betAddress)):          state.All,
		string(storage.StateKeysBalance(actor)):     state.Read | state.Write,
		string(escrow.PoolKey(pb.MarketAddress)):    state.All,
	}
}

// Execute implements chain.Action.
func (pb *PlaceBet) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	market, err := storage.GetMarket(ctx, mu, pb.MarketAddress)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMarketNotFound, pb.MarketAddress)
		}
		return nil, fmt.Errorf("failed to get market %s: %w", pb.MarketAddress, err)
	}
	if market.Status == storage.MarketStatus_Resolved {
		return nil, fmt.Errorf("%w: %s", ErrMarketAlreadyResolved, pb.MarketAddress)
	}
	if timestamp >= market.EndTime {
		return nil, fmt.Errorf("%w: market %s (now %d, end %d)",
			ErrBettingPeriodEnded, pb.MarketAddress, timestamp, market.EndTime)
	}
	if pb.Amount == 0 {
		return nil, ErrInvalidAmount
	}

	betAddress := storage.BetAddress(pb.MarketAddress, actor)
	exists, err := storage.BetExists(ctx, mu, betAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check bet %s: %w", betAddress, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrBetAlreadyExists, betAddress)
	}

	// Compute the new side total before anything moves so an overflow
	// aborts with no side effects.
	if pb.Outcome {
		market.TotalYesAmount, err = safemath.Add(market.TotalYesAmount, pb.Amount)
	} else {
		market.TotalNoAmount, err = safemath.Add(market.TotalNoAmount, pb.Amount)
	}
	if err != nil {
		return nil, ErrMathOverflow
	}

	if err := escrow.Deposit(ctx, mu, pb.MarketAddress, actor, pb.Amount); err != nil {
		return nil, err
	}

	bet := &storage.Bet{
		Bettor:  actor,
		Market:  pb.MarketAddress,
		Amount:  pb.Amount,
		Outcome: pb.Outcome,
		Claimed: false,
	}
	if err := storage.SetBet(ctx, mu, betAddress, bet); err != nil {
		return nil, fmt.Errorf("failed to set bet %s: %w", betAddress, err)
	}
	if err := storage.SetMarket(ctx, mu, market); err != nil {
		return nil, fmt.Errorf("failed to update market %s totals: %w", pb.MarketAddress, err)
	}

	result := &PlaceBetResult{
		BetAddress:    betAddress,
		MarketAddress: pb.MarketAddress,
		Amount:        pb.Amount,
		Outcome:       pb.Outcome,
	}
	packer := codec.NewWriter(0, consts.MaxActionSize)
	packer.PackByte(result.GetTypeID())
	if err := result.MarshalCodec(packer); err != nil {
		return nil, fmt.Errorf("failed to marshal PlaceBetResult: %w", err)
	}
	return packer.Bytes(), nil
}

// ComputeUnits implements chain.Action.
func (*PlaceBet) ComputeUnits(chain.Rules) uint64 {
	return PlaceBetComputeUnits
}

// ValidRange implements chain.Action.
func (*PlaceBet) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

// Bytes implements codec.Marshaller.
func (pb *PlaceBet) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, consts.MaxActionSize),
		MaxSize: consts.MaxActionSize,
	}
	p.PackByte(consts.PlaceBetID)
	if err := codec.LinearCodec.MarshalInto(pb, p); err != nil {
		panic(fmt.Errorf("failed to marshal PlaceBet action: %w", err))
	}
	return p.Bytes
}

// UnmarshalPlaceBet deserializes bytes into a PlaceBet action.
func UnmarshalPlaceBet(b []byte) (chain.Action, error) {
	if len(b) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if b[0] != consts.PlaceBetID {
		return nil, fmt.Errorf("unexpected PlaceBet typeID: %d != %d", b[0], consts.PlaceBetID)
	}
	t := &PlaceBet{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		t,
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal PlaceBet action: %w", err)
	}
	return t, nil
}
