package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/wagerlabs/wagervm/consts"
	"github.com/wagerlabs/wagervm/storage"
)

var _ chain.Action = (*CreateMarket)(nil)

// CreateMarket opens a new wager market. The market lands at the address
// derived from (creator, question hash), so the same creator asking the
// same question twice collides with the existing record instead of
// creating a second market.
type CreateMarket struct {
	Question string `serialize:"true" json:"question"`
	EndTime  int64  `serialize:"true" json:"endTime"`

	// QuestionHash must equal the content hash of Question. Clients compute
	// it so the market address is fixed before submission.
	QuestionHash ids.ID `serialize:"true" json:"questionHash"`

	// ResolutionAuthority may resolve the market once EndTime passes.
	// Leave empty to default to the creator.
	ResolutionAuthority codec.Address `serialize:"true" json:"resolutionAuthority"`
}

func (*CreateMarket) GetTypeID() uint8 {
	return consts.CreateMarketID
}

// StateKeys implements chain.Action.
func (cm *CreateMarket) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	marketKey := storage.MarketKey(storage.MarketAddress(actor, cm.QuestionHash))
	return state.Keys{
		string(marketKey): state.All,
	}
}

// Execute implements chain.Action.
func (cm *CreateMarket) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	_ ids.ID,
) ([]byte, error) {
	if len(cm.Question) == 0 {
		return nil, ErrEmptyQuestion
	}
	if len(cm.Question) > consts.MaxQuestionLength {
		return nil, ErrQuestionTooLong
	}
	if cm.EndTime <= timestamp {
		return nil, fmt.Errorf("%w: end %d, now %d", ErrInvalidEndTime, cm.EndTime, timestamp)
	}
	if storage.HashQuestion(cm.Question) != cm.QuestionHash {
		return nil, ErrQuestionHashMismatch
	}

	marketAddress := storage.MarketAddress(actor, cm.QuestionHash)
	exists, err := storage.MarketExists(ctx, mu, marketAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check market %s: %w", marketAddress, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrMarketAlreadyExists, marketAddress)
	}

	authority := cm.ResolutionAuthority
	if authority == codec.EmptyAddress {
		authority = actor
	}

	market := &storage.Market{
		Address:             marketAddress,
		Creator:             actor,
		ResolutionAuthority: authority,
		Question:            cm.Question,
		QuestionHash:        cm.QuestionHash,
		EndTime:             cm.EndTime,
		Status:              storage.MarketStatus_Open,
		Outcome:             storage.Outcome_Pending,
		TotalYesAmount:      0,
		TotalNoAmount:       0,
		FeeBasisPoints:      consts.DefaultFeeBasisPoints,
	}
	if err := storage.SetMarket(ctx, mu, market); err != nil {
		return nil, fmt.Errorf("failed to set new market %s: %w", marketAddress, err)
	}

	result := &CreateMarketResult{MarketAddress: marketAddress}
	packer := codec.NewWriter(0, consts.MaxActionSize)
	packer.PackByte(result.GetTypeID())
	if err := result.MarshalCodec(packer); err != nil {
		return nil, fmt.Errorf("failed to marshal CreateMarketResult: %w", err)
	}
	return packer.Bytes(), nil
}

// ComputeUnits implements chain.Action.
func (*CreateMarket) ComputeUnits(chain.Rules) uint64 {
	return CreateMarketComputeUnits
}

// ValidRange implements chain.Action.
func (*CreateMarket) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

// Bytes implements codec.Marshaller.
func (cm *CreateMarket) Bytes() []byte {
	p := &wrappers.Packer{
		Bytes:   make([]byte, 0, consts.MaxActionSize),
		MaxSize: consts.MaxActionSize,
	}
	p.PackByte(consts.CreateMarketID)
	if err := codec.LinearCodec.MarshalInto(cm, p); err != nil {
		panic(fmt.Errorf("failed to marshal CreateMarket action: %w", err))
	}
	return p.Bytes
}

// UnmarshalCreateMarket deserializes bytes into a CreateMarket action.
func UnmarshalCreateMarket(b []byte) (chain.Action, error) {
	if len(b) == 0 {
		return nil, ErrUnmarshalEmptyAction
	}
	if b[0] != consts.CreateMarketID {
		return nil, fmt.Errorf("unexpected CreateMarket typeID: %d != %d", b[0], consts.CreateMarketID)
	}
	t := &CreateMarket{}
	if err := codec.LinearCodec.UnmarshalFrom(
		&wrappers.Packer{Bytes: b[1:]},
		t,
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CreateMarket action: %w", err)
	}
	return t, nil
}
