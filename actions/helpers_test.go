package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/stretchr/testify/require"

	"github.com/wagerlabs/wagervm/storage"
)

// Helpers shared across the action tests. Markets and bets are set up by
// executing the real actions so every fixture crosses the same preconditions
// production traffic does.

func createTestMarket(
	t *testing.T,
	ctx context.Context,
	mu state.Mutable,
	creator codec.Address,
	authority codec.Address,
	question string,
	endTime int64,
	now int64,
) ids.ID {
	t.Helper()
	require := require.New(t)

	action := &CreateMarket{
		Question:            question,
		EndTime:             endTime,
		QuestionHash:        storage.HashQuestion(question),
		ResolutionAuthority: authority,
	}
	output, err := action.Execute(ctx, nil, mu, now, creator, ids.GenerateTestID())
	require.NoError(err)
	require.NotNil(output)
	return storage.MarketAddress(creator, action.QuestionHash)
}

func fundAccount(
	t *testing.T,
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount uint64,
) {
	t.Helper()
	require.NoError(t, storage.SetBalance(ctx, mu, addr, amount))
}

func placeTestBet(
	t *testing.T,
	ctx context.Context,
	mu state.Mutable,
	market ids.ID,
	bettor codec.Address,
	amount uint64,
	outcome bool,
	now int64,
) ids.ID {
	t.Helper()
	require := require.New(t)

	action := &PlaceBet{
		MarketAddress: market,
		Amount:        amount,
		Outcome:       outcome,
	}
	output, err := action.Execute(ctx, nil, mu, now, bettor, ids.GenerateTestID())
	require.NoError(err)
	require.NotNil(output)
	return storage.BetAddress(market, bettor)
}
