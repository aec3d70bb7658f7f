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

// Bet is one participant's wager on one side of one market.
// Key: BetPrefix | BetAddress(Market, Bettor)
//
// Every field except Claimed is immutable after creation; Claimed flips to
// true exactly once when winnings are paid out. Bet records are never
// deleted, they remain as an auditable ledger.
type Bet struct {
	Bettor  codec.Address `serialize:"true" json:"bettor"`
	Market  ids.ID        `serialize:"true" json:"market"`
	Amount  uint64        `serialize:"true" json:"amount"`
	Outcome bool          `serialize:"true" json:"outcome"`
	Claimed bool          `serialize:"true" json:"claimed"`
}

// BetKey generates the state key for a bet address.
func BetKey(bet ids.ID) []byte {
	key := make([]byte, 1+ids.IDLen)
	key[0] = BetPrefix
	copy(key[1:], bet[:])
	return key
}

// GetBet retrieves a bet record. database.ErrNotFound is preserved in the
// error chain when no bet exists at the address.
func GetBet(ctx context.Context, im state.Immutable, bet ids.ID) (*Bet, error) {
	key := BetKey(bet)
	valBytes, err := im.GetValue(ctx, key)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("bet %s not found: %w", bet, err)
		}
		return nil, err
	}

	reader := codec.NewReader(valBytes, consts.MaxBetDataSize)
	b := &Bet{}
	if err := codec.LinearCodec.UnmarshalFrom(reader.Packer, b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bet %s: %w", bet, err)
	}
	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("reader error after unmarshaling bet %s: %w", bet, err)
	}
	return b, nil
}

// SetBet stores a bet record at its derived address.
func SetBet(ctx context.Context, mu state.Mutable, bet ids.ID, b *Bet) error {
	key := BetKey(bet)
	writer := codec.NewWriter(0, consts.MaxBetDataSize)
	if err := codec.LinearCodec.MarshalInto(b, writer.Packer); err != nil {
		return fmt.Errorf("failed to marshal bet %s: %w", bet, err)
	}
	if err := writer.Err(); err != nil {
		return fmt.Errorf("writer error after marshaling bet %s: %w", bet, err)
	}
	return mu.Insert(ctx, key, writer.Bytes())
}

// BetExists reports whether a bet record exists at the address.
func BetExists(ctx context.Context, im state.Immutable, bet ids.ID) (bool, error) {
	_, err := im.GetValue(ctx, BetKey(bet))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
