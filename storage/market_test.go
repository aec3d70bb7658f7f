package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/hypersdk/chain/chaintest"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/stretchr/testify/require"
)

func TestSetGetMarket(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	creator := codec.CreateAddress(0, ids.GenerateTestID())
	authority := codec.CreateAddress(1, ids.GenerateTestID())
	questionHash := HashQuestion("Will it rain tomorrow?")

	baseMarket := &Market{
		Address:             MarketAddress(creator, questionHash),
		Creator:             creator,
		ResolutionAuthority: authority,
		Question:            "Will it rain tomorrow?",
		QuestionHash:        questionHash,
		EndTime:             1700000000,
		TotalYesAmount:      150,
		TotalNoAmount:       250,
		FeeBasisPoints:      100,
	}

	testCases := []struct {
		name    string
		status  MarketStatus
		outcome OutcomeType
	}{
		{"Open_Pending", MarketStatus_Open, Outcome_Pending},
		{"Resolved_Yes", MarketStatus_Resolved, Outcome_Yes},
		{"Resolved_No", MarketStatus_Resolved, Outcome_No},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := chaintest.NewInMemoryStore()

			original := *baseMarket
			original.Status = tc.status
			original.Outcome = tc.outcome

			require.NoError(SetMarket(ctx, st, &original))

			retrieved, err := GetMarket(ctx, st, original.Address)
			require.NoError(err)
			require.NotNil(retrieved)

			require.Equal(original.Address, retrieved.Address)
			require.Equal(original.Creator, retrieved.Creator)
			require.Equal(original.ResolutionAuthority, retrieved.ResolutionAuthority)
			require.Equal(original.Question, retrieved.Question)
			require.Equal(original.QuestionHash, retrieved.QuestionHash)
			require.Equal(original.EndTime, retrieved.EndTime)
			require.Equal(original.Status, retrieved.Status)
			require.Equal(original.Outcome, retrieved.Outcome)
			require.Equal(original.TotalYesAmount, retrieved.TotalYesAmount)
			require.Equal(original.TotalNoAmount, retrieved.TotalNoAmount)
			require.Equal(original.FeeBasisPoints, retrieved.FeeBasisPoints)
		})
	}
}

func TestGetMarket_NotFound(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	st := chaintest.NewInMemoryStore()

	_, err := GetMarket(ctx, st, ids.GenerateTestID())
	require.Error(err)
}

func TestMarketExists(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	st := chaintest.NewInMemoryStore()

	creator := codec.CreateAddress(0, ids.GenerateTestID())
	questionHash := HashQuestion("Does it exist?")
	marketAddress := MarketAddress(creator, questionHash)

	exists, err := MarketExists(ctx, st, marketAddress)
	require.NoError(err)
	require.False(exists)

	market := &Market{
		Address:             marketAddress,
		Creator:             creator,
		ResolutionAuthority: creator,
		Question:            "Does it exist?",
		QuestionHash:        questionHash,
		EndTime:             1700000000,
		Status:              MarketStatus_Open,
		Outcome:             Outcome_Pending,
		FeeBasisPoints:      100,
	}
	require.NoError(SetMarket(ctx, st, market))

	exists, err = MarketExists(ctx, st, marketAddress)
	require.NoError(err)
	require.True(exists)
}
