package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/stretchr/testify/require"

	"github.com/wagerlabs/wagervm/escrow"
	"github.com/wagerlabs/wagervm/storage"
)

// resolvedTestMarket builds a market with 100 on yes (winner) and 200 on no
// (loser), resolved Yes at time 250. With the default 1% fee the net pool is
// 297, so winner's 100-unit wager pays 297.
func resolvedTestMarket(
	t *testing.T,
	ctx context.Context,
	mu state.Mutable,
	authority codec.Address,
	winner codec.Address,
	loser codec.Address,
) ids.ID {
	t.Helper()
	require := require.New(t)

	marketAddress := createTestMarket(t, ctx, mu, authority, authority, "Does the winner get paid?", 200, 100)
	fundAccount(t, ctx, mu, winner, 100)
	fundAccount(t, ctx, mu, loser, 200)
	placeTestBet(t, ctx, mu, marketAddress, winner, 100, true, 150)
	placeTestBet(t, ctx, mu, marketAddress, loser, 200, false, 150)

	resolve := &ResolveMarket{MarketAddress: marketAddress, Outcome: storage.Outcome_Yes}
	_, err := resolve.Execute(ctx, nil, mu, 250, authority, ids.GenerateTestID())
	require.NoError(err)

	return marketAddress
}

func TestClaimWinnings_Execute_Success(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	authority := codec.Address{0x01}
	winner := codec.Address{0x02}
	loser := codec.Address{0x03}
	marketAddress := resolvedTestMarket(t, ctx, mu, authority, winner, loser)

	action := &ClaimWinnings{MarketAddress: marketAddress}
	output, err := action.Execute(ctx, nil, mu, 300, winner, ids.GenerateTestID())
	require.NoError(err)
	require.NotNil(output)

	balance, err := storage.GetBalance(ctx, mu, winner)
	require.NoError(err)
	require.Equal(uint64(297), balance)

	// Only the 3-unit fee remains escrowed.
	pool, err := escrow.PoolBalance(ctx, mu, marketAddress)
	require.NoError(err)
	require.Equal(uint64(3), pool)

	bet, err := storage.GetBet(ctx, mu, storage.BetAddress(marketAddress, winner))
	require.NoError(err)
	require.True(bet.Claimed)
}

func TestClaimWinnings_Execute_Error_MarketNotFound(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	action := &ClaimWinnings{MarketAddress: ids.GenerateTestID()}
	_, err := action.Execute(ctx, nil, mu, 300, codec.Address{0x02}, ids.GenerateTestID())
	require.ErrorIs(err, ErrMarketNotFound)
}

func TestClaimWinnings_Execute_Error_MarketNotResolved(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	creator := codec.Address{0x01}
	bettor := codec.Address{0x02}
	marketAddress := createTestMarket(t, ctx, mu, creator, creator, "Claiming before settlement?", 200, 100)
	fundAccount(t, ctx, mu, bettor, 100)
	placeTestBet(t, ctx, mu, marketAddress, bettor, 100, true, 150)

	action := &ClaimWinnings{MarketAddress: marketAddress}
	_, err := action.Execute(ctx, nil, mu, 300, bettor, ids.GenerateTestID())
	require.ErrorIs(err, ErrMarketNotResolved)
}

func TestClaimWinnings_Execute_Error_BetNotFound(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	authority := codec.Address{0x01}
	winner := codec.Address{0x02}
	loser := codec.Address{0x03}
	marketAddress := resolvedTestMarket(t, ctx, mu, authority, winner, loser)

	// An account with no wager on this market has nothing to claim.
	action := &ClaimWinnings{MarketAddress: marketAddress}
	_, err := action.Execute(ctx, nil, mu, 300, codec.Address{0x04}, ids.GenerateTestID())
	require.ErrorIs(err, ErrBetNotFound)
}

func TestClaimWinnings_Execute_Error_NotAWinner(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	authority := codec.Address{0x01}
	winner := codec.Address{0x02}
	loser := codec.Address{0x03}
	marketAddress := resolvedTestMarket(t, ctx, mu, authority, winner, loser)

	action := &ClaimWinnings{MarketAddress: marketAddress}
	_, err := action.Execute(ctx, nil, mu, 300, loser, ids.GenerateTestID())
	require.ErrorIs(err, ErrNotAWinner)

	balance, err := storage.GetBalance(ctx, mu, loser)
	require.NoError(err)
	require.Zero(balance)
}

func TestClaimWinnings_Execute_Error_AlreadyClaimed(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	authority := codec.Address{0x01}
	winner := codec.Address{0x02}
	loser := codec.Address{0x03}
	marketAddress := resolvedTestMarket(t, ctx, mu, authority, winner, loser)

	action := &ClaimWinnings{MarketAddress: marketAddress}
	_, err := action.Execute(ctx, nil, mu, 300, winner, ids.GenerateTestID())
	require.NoError(err)

	_, err = action.Execute(ctx, nil, mu, 310, winner, ids.GenerateTestID())
	require.ErrorIs(err, ErrAlreadyClaimed)

	// The payout happened exactly once.
	balance, err := storage.GetBalance(ctx, mu, winner)
	require.NoError(err)
	require.Equal(uint64(297), balance)

	pool, err := escrow.PoolBalance(ctx, mu, marketAddress)
	require.NoError(err)
	require.Equal(uint64(3), pool)
}

func TestClaimWinnings_Execute_ZeroPayout(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	authority := codec.Address{0x01}
	whale := codec.Address{0x02}
	minnow := codec.Address{0x03}

	marketAddress := createTestMarket(t, ctx, mu, authority, authority, "Does dust round to zero?", 200, 100)
	fundAccount(t, ctx, mu, whale, 99)
	fundAccount(t, ctx, mu, minnow, 1)
	placeTestBet(t, ctx, mu, marketAddress, whale, 99, true, 150)
	placeTestBet(t, ctx, mu, marketAddress, minnow, 1, true, 150)

	resolve := &ResolveMarket{MarketAddress: marketAddress, Outcome: storage.Outcome_Yes}
	_, err := resolve.Execute(ctx, nil, mu, 250, authority, ids.GenerateTestID())
	require.NoError(err)

	// total 100, fee 1, net 99: the 1-unit wager's share is 99/100 = 0. The
	// claim still settles, with nothing withdrawn.
	action := &ClaimWinnings{MarketAddress: marketAddress}
	_, err = action.Execute(ctx, nil, mu, 300, minnow, ids.GenerateTestID())
	require.NoError(err)

	balance, err := storage.GetBalance(ctx, mu, minnow)
	require.NoError(err)
	require.Zero(balance)

	pool, err := escrow.PoolBalance(ctx, mu, marketAddress)
	require.NoError(err)
	require.Equal(uint64(100), pool)

	bet, err := storage.GetBet(ctx, mu, storage.BetAddress(marketAddress, minnow))
	require.NoError(err)
	require.True(bet.Claimed)
}

func TestClaimWinnings_Execute_Error_PoolDrained(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	authority := codec.Address{0x01}
	winner := codec.Address{0x02}
	loser := codec.Address{0x03}
	marketAddress := resolvedTestMarket(t, ctx, mu, authority, winner, loser)

	// Drain the escrow pool out from under the claim; the withdrawal fails
	// closed instead of minting funds.
	require.NoError(escrow.Withdraw(ctx, mu, marketAddress, codec.Address{0x05}, 299))

	action := &ClaimWinnings{MarketAddress: marketAddress}
	_, err := action.Execute(ctx, nil, mu, 300, winner, ids.GenerateTestID())
	require.ErrorIs(err, escrow.ErrInsufficientPoolBalance)

	bet, err := storage.GetBet(ctx, mu, storage.BetAddress(marketAddress, winner))
	require.NoError(err)
	require.False(bet.Claimed)
}
