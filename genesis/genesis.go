package genesis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/wagerlabs/wagervm/consts"
	"github.com/wagerlabs/wagervm/storage"
)

var _ chain.Genesis = (*Genesis)(nil)

// SeedMarket describes a market opened at genesis, before any transactions
// are accepted. The market lands at the same derived address a CreateMarket
// action by the creator would produce.
type SeedMarket struct {
	Creator  string `json:"creator"`  // Bech32 address
	Question string `json:"question"`
	EndTime  int64  `json:"endTime"` // Unix timestamp

	// Authority is the resolution authority. Empty defaults to the creator.
	Authority string `json:"authority"`
}

// Genesis is the genesis data for wagervm.
type Genesis struct {
	Magic     uint64 `json:"magic"`
	Timestamp int64  `json:"timestamp"`

	Markets []SeedMarket `json:"markets"`

	Allocations []struct {
		Address string `json:"address"` // Bech32 address
		Balance uint64 `json:"balance"`
	} `json:"allocations"`
}

func (g *Genesis) Load(raw []byte) error {
	return json.Unmarshal(raw, g)
}

func (g *Genesis) GetMagic() uint64 {
	return g.Magic
}

func (g *Genesis) GetTimestamp() int64 {
	return g.Timestamp
}

func (g *Genesis) InitializeState(ctx context.Context, _ trace.Tracer, mu state.Mutable, bh chain.BalanceHandler) error {
	for _, alloc := range g.Allocations {
		addr, err := decodeBech32Address(alloc.Address)
		if err != nil {
			return err
		}
		if err := bh.AddBalance(ctx, addr, mu, alloc.Balance); err != nil {
			return err
		}
	}

	for _, sm := range g.Markets {
		creator, err := decodeBech32Address(sm.Creator)
		if err != nil {
			return err
		}
		authority := creator
		if sm.Authority != "" {
			authority, err = decodeBech32Address(sm.Authority)
			if err != nil {
				return err
			}
		}
		if len(sm.Question) == 0 || len(sm.Question) > consts.MaxQuestionLength {
			return fmt.Errorf("invalid genesis market question %q", sm.Question)
		}

		questionHash := storage.HashQuestion(sm.Question)
		market := &storage.Market{
			Address:             storage.MarketAddress(creator, questionHash),
			Creator:             creator,
			ResolutionAuthority: authority,
			Question:            sm.Question,
			QuestionHash:        questionHash,
			EndTime:             sm.EndTime,
			Status:              storage.MarketStatus_Open,
			Outcome:             storage.Outcome_Pending,
			FeeBasisPoints:      consts.DefaultFeeBasisPoints,
		}
		if err := storage.SetMarket(ctx, mu, market); err != nil {
			return fmt.Errorf("failed to seed genesis market %q: %w", sm.Question, err)
		}
	}
	return nil
}

func decodeBech32Address(s string) (codec.Address, error) {
	_, data5bit, err := bech32.Decode(s)
	if err != nil {
		return codec.Address{}, fmt.Errorf("failed to decode bech32 address %s: %w", s, err)
	}
	data8bit, err := bech32.ConvertBits(data5bit, 5, 8, false)
	if err != nil {
		return codec.Address{}, fmt.Errorf("failed to convert bech32 data bits for address %s: %w", s, err)
	}
	var addr codec.Address
	if len(data8bit) > codec.AddressLen {
		return codec.Address{}, fmt.Errorf("decoded address %s is too long: got %d bytes, expected max %d",
			s, len(data8bit), codec.AddressLen)
	}
	copy(addr[:], data8bit)
	return addr, nil
}

func GetDefault() *Genesis {
	return &Genesis{
		Magic:     12345,
		Timestamp: time.Now().Unix(),
		Markets:   []SeedMarket{},
	}
}
