package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/stretchr/testify/require"

	"github.com/wagerlabs/wagervm/escrow"
	"github.com/wagerlabs/wagervm/storage"
)

// TestMarketLifecycle walks a market through create, bet, resolve and claim,
// and checks that funds are conserved throughout: stakes only ever move
// between bettor balances and the market's escrow pool.
func TestMarketLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := chaintest.NewInMemoryStore()

	authority := codec.Address{0x01}
	alice := codec.Address{0x02}
	bob := codec.Address{0x03}
	carol := codec.Address{0x04}

	fundAccount(t, ctx, mu, alice, 100)
	fundAccount(t, ctx, mu, bob, 300)
	fundAccount(t, ctx, mu, carol, 100)

	marketAddress := createTestMarket(t, ctx, mu, authority, authority,
		"Will the incumbent win the election?", 1_000, 500)

	// 100 on yes split across two bettors, 200 on no.
	placeTestBet(t, ctx, mu, marketAddress, alice, 50, true, 600)
	placeTestBet(t, ctx, mu, marketAddress, carol, 50, true, 600)
	placeTestBet(t, ctx, mu, marketAddress, bob, 200, false, 700)

	market, err := storage.GetMarket(ctx, mu, marketAddress)
	require.NoError(err)
	require.Equal(uint64(100), market.TotalYesAmount)
	require.Equal(uint64(200), market.TotalNoAmount)

	pool, err := escrow.PoolBalance(ctx, mu, marketAddress)
	require.NoError(err)
	require.Equal(uint64(300), pool)

	resolve := &ResolveMarket{MarketAddress: marketAddress, Outcome: storage.Outcome_Yes}
	_, err = resolve.Execute(ctx, nil, mu, 1_000, authority, ids.GenerateTestID())
	require.NoError(err)

	// Total 300, 1% fee 3, net 297. Each 50-unit yes wager pays
	// 50 * 297 / 100 = 148 (truncated from 148.5).
	for _, winner := range []codec.Address{alice, carol} {
		claim := &ClaimWinnings{MarketAddress: marketAddress}
		_, err = claim.Execute(ctx, nil, mu, 1_100, winner, ids.GenerateTestID())
		require.NoError(err)
	}

	aliceBalance, err := storage.GetBalance(ctx, mu, alice)
	require.NoError(err)
	require.Equal(uint64(50+148), aliceBalance)

	carolBalance, err := storage.GetBalance(ctx, mu, carol)
	require.NoError(err)
	require.Equal(uint64(50+148), carolBalance)

	bobBalance, err := storage.GetBalance(ctx, mu, bob)
	require.NoError(err)
	require.Equal(uint64(100), bobBalance)

	// The losing side cannot claim.
	claim := &ClaimWinnings{MarketAddress: marketAddress}
	_, err = claim.Execute(ctx, nil, mu, 1_100, bob, ids.GenerateTestID())
	require.ErrorIs(err, ErrNotAWinner)

	// 3 units of fee plus 1 unit of rounding dust remain escrowed, so the
	// books balance: 500 funded = 198 + 198 + 100 held + 4 pooled.
	pool, err = escrow.PoolBalance(ctx, mu, marketAddress)
	require.NoError(err)
	require.Equal(uint64(4), pool)
	require.Equal(uint64(500), aliceBalance+carolBalance+bobBalance+pool)
}
