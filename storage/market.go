package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/wagerlabs/wagervm/consts"
)

// MarketStatus defines the lifecycle states of a wager market.
type MarketStatus uint8

const (
	MarketStatus_Open     MarketStatus = 0 // Accepting wagers until EndTime
	MarketStatus_Resolved MarketStatus = 1 // Outcome fixed, claims allowed
)

func (ms MarketStatus) String() string {
	switch ms {
	case MarketStatus_Open:
		return "Open"
	case MarketStatus_Resolved:
		return "Resolved"
	default:
		return fmt.Sprintf("UnknownMarketStatus:%d", ms)
	}
}

// OutcomeType is the tagged resolution outcome. A stored market is only
// ever Pending while Open; ResolveMarket writes Yes or No together with the
// Resolved status, so "resolved but unset" never reaches state.
type OutcomeType uint8

const (
	Outcome_Pending OutcomeType = 0
	Outcome_Yes     OutcomeType = 1
	Outcome_No      OutcomeType = 2
)

func (ot OutcomeType) String() string {
	switch ot {
	case Outcome_Pending:
		return "Pending"
	case Outcome_Yes:
		return "Yes"
	case Outcome_No:
		return "No"
	default:
		return fmt.Sprintf("UnknownOutcomeType:%d", ot)
	}
}

// OutcomeFor maps a wagered side to its outcome tag.
func OutcomeFor(side bool) OutcomeType {
	if side {
		return Outcome_Yes
	}
	return Outcome_No
}

// Market is one yes/no question with an escrowed stake pool.
// Key: MarketPrefix | MarketAddress(Creator, QuestionHash)
//
// TotalYesAmount and TotalNoAmount only grow while the market is open and
// are frozen by resolution; their sum always equals the total ever
// deposited into the market's escrow pool.
type Market struct {
	Address             ids.ID        `serialize:"true" json:"address"`
	Creator             codec.Address `serialize:"true" json:"creator"`
	ResolutionAuthority codec.Address `serialize:"true" json:"resolutionAuthority"`
	Question            string        `serialize:"true" json:"question"`
	QuestionHash        ids.ID        `serialize:"true" json:"questionHash"`
	EndTime             int64         `serialize:"true" json:"endTime"`
	Status              MarketStatus  `serialize:"true" json:"status"`
	Outcome             OutcomeType   `serialize:"true" json:"outcome"`
	TotalYesAmount      uint64        `serialize:"true" json:"totalYesAmount"`
	TotalNoAmount       uint64        `serialize:"true" json:"totalNoAmount"`
	FeeBasisPoints      uint16        `serialize:"true" json:"feeBasisPoints"`
	ResolutionTime      int64         `serialize:"true" json:"resolutionTime"`
}

// MarketKey generates the state key for a market address.
func MarketKey(market ids.ID) []byte {
	key := make([]byte, 1+ids.IDLen)
	key[0] = MarketPrefix
	copy(key[1:], market[:])
	return key
}

// GetMarket retrieves a market record. database.ErrNotFound is preserved in
// the error chain when no market exists at the address.
func GetMarket(ctx context.Context, im state.Immutable, market ids.ID) (*Market, error) {
	key := MarketKey(market)
	valBytes, err := im.GetValue(ctx, key)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("market %s not found: %w", market, err)
		}
		return nil, err
	}

	reader := codec.NewReader(valBytes, consts.MaxMarketDataSize)
	m := &Market{}
	if err := codec.LinearCodec.UnmarshalFrom(reader.Packer, m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal market %s: %w", market, err)
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("reader error after unmarshaling market %s: %w", market, err)
	}
	return m, nil
}

// SetMarket stores a market record at its derived address.
func SetMarket(ctx context.Context, mu state.Mutable, m *Market) error {
	key := MarketKey(m.Address)
	writer := codec.NewWriter(0, consts.MaxMarketDataSize)
	if err := codec.LinearCodec.MarshalInto(m, writer.Packer); err != nil {
		return fmt.Errorf("failed to marshal market %s: %w", m.Address, err)
	}
	if err := writer.Err(); err != nil {
		return fmt.Errorf("writer error after marshaling market %s: %w", m.Address, err)
	}
	return mu.Insert(ctx, key, writer.Bytes())
}

// MarketExists reports whether a market record exists at the address.
func MarketExists(ctx context.Context, im state.Immutable, market ids.ID) (bool, error) {
	_, err := im.GetValue(ctx, MarketKey(market))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
