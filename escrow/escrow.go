// Package escrow is the only component that moves native units into or out
// of a market's pooled stake. Both transfer directions run inside a single
// action execution, so the ledger commits the balance move and the record
// update together or not at all.
package escrow

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	safemath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/wagerlabs/wagervm/storage"
)

const (
	// EscrowPrefix is the state prefix for pooled market stakes.
	// Key format: EscrowPrefix | marketAddress -> pooled amount (uint64)
	EscrowPrefix byte = 0x3
)

var (
	ErrInsufficientPoolBalance = errors.New("insufficient pool balance")
	ErrAmountCannotBeZero      = errors.New("amount cannot be zero")
	ErrPoolOverflow            = errors.New("pool balance overflow")
)

// PoolKey generates the state key for a market's escrow pool.
func PoolKey(market ids.ID) []byte {
	key := make([]byte, 1+ids.IDLen)
	key[0] = EscrowPrefix
	copy(key[1:], market[:])
	return key
}

// PoolBalance returns the amount currently held in a market's pool. A
// missing entry reads as zero.
func PoolBalance(ctx context.Context, im state.Immutable, market ids.ID) (uint64, error) {
	val, err := im.GetValue(ctx, PoolKey(market))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get pool balance for market %s: %w", market, err)
	}
	amount, err := database.ParseUInt64(val)
	if err != nil {
		return 0, fmt.Errorf("failed to parse pool balance for market %s: %w", market, err)
	}
	return amount, nil
}

// Deposit moves amount from the payer's native balance into the market's
// pool. The payer must hold at least amount.
func Deposit(
	ctx context.Context,
	mu state.Mutable,
	market ids.ID,
	payer codec.Address,
	amount uint64,
) error {
	if amount == 0 {
		return ErrAmountCannotBeZero
	}

	if err := storage.DeductBalance(ctx, mu, payer, amount); err != nil {
		return fmt.Errorf("failed to debit payer %s for market %s: %w", payer, market, err)
	}

	currentPool, err := PoolBalance(ctx, mu, market)
	if err != nil {
		return err
	}
	newPool, err := safemath.Add(currentPool, amount)
	if err != nil {
		return fmt.Errorf("%w: market %s pool at %d, depositing %d", ErrPoolOverflow, market, currentPool, amount)
	}
	if err := mu.Insert(ctx, PoolKey(market), database.PackUInt64(newPool)); err != nil {
		return fmt.Errorf("failed to update pool for market %s: %w", market, err)
	}
	return nil
}

// Withdraw moves amount from the market's pool to the payee's native
// balance. It fails closed when the pool holds less than amount: the pool
// can only pay out what it holds.
func Withdraw(
	ctx context.Context,
	mu state.Mutable,
	market ids.ID,
	payee codec.Address,
	amount uint64,
) error {
	if amount == 0 {
		return ErrAmountCannotBeZero
	}

	currentPool, err := PoolBalance(ctx, mu, market)
	if err != nil {
		return err
	}
	newPool, err := safemath.Sub(currentPool, amount)
	if err != nil {
		return fmt.Errorf("%w: market %s holds %d, withdrawing %d",
			ErrInsufficientPoolBalance, market, currentPool, amount)
	}

	if err := mu.Insert(ctx, PoolKey(market), database.PackUInt64(newPool)); err != nil {
		return fmt.Errorf("failed to update pool for market %s: %w", market, err)
	}
	if err := storage.AddBalance(ctx, mu, payee, amount); err != nil {
		return fmt.Errorf("failed to credit payee %s from market %s: %w", payee, market, err)
	}
	return nil
}
