package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	safemath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
)

const (
	// BalancePrefix is the prefix for native unit balances.
	// Format: BalancePrefix | Address -> uint64
	BalancePrefix byte = 0x0

	// MarketPrefix is the prefix for market records.
	// Format: MarketPrefix | MarketAddress -> Market
	MarketPrefix byte = 0x1

	// BetPrefix is the prefix for bet records.
	// Format: BetPrefix | BetAddress -> Bet
	BetPrefix byte = 0x2
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceOverflow     = errors.New("balance overflow")
)

// BalanceKey returns the state key for an address's native unit balance.
func BalanceKey(addr codec.Address) []byte {
	key := make([]byte, 1+codec.AddressLen)
	key[0] = BalancePrefix
	copy(key[1:], addr[:])
	return key
}

// GetBalance retrieves the native unit balance for an address. A missing
// record reads as zero.
func GetBalance(ctx context.Context, im state.Immutable, addr codec.Address) (uint64, error) {
	valBytes, err := im.GetValue(ctx, BalanceKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(valBytes) == 0 {
		return 0, nil
	}
	reader := codec.NewReader(valBytes, len(valBytes))
	balance := reader.UnpackUint64(true)
	if err := reader.Err(); err != nil {
		return 0, err
	}
	return balance, nil
}

// SetBalance sets the native unit balance for an address.
func SetBalance(ctx context.Context, mu state.Mutable, addr codec.Address, amount uint64) error {
	writer := codec.NewWriter(8, 8)
	writer.PackUint64(amount)
	if err := writer.Err(); err != nil {
		return err
	}
	return mu.Insert(ctx, BalanceKey(addr), writer.Bytes())
}

// DeductBalance subtracts an amount from an address's balance, failing with
// ErrInsufficientBalance when the balance cannot cover it.
func DeductBalance(ctx context.Context, mu state.Mutable, addr codec.Address, amount uint64) error {
	currentBalance, err := GetBalance(ctx, mu, addr)
	if err != nil {
		return err
	}
	newBalance, err := safemath.Sub(currentBalance, amount)
	if err != nil {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientBalance, addr, currentBalance, amount)
	}
	return SetBalance(ctx, mu, addr, newBalance)
}

// AddBalance adds an amount to an address's balance with an overflow check.
func AddBalance(ctx context.Context, mu state.Mutable, addr codec.Address, amount uint64) error {
	currentBalance, err := GetBalance(ctx, mu, addr)
	if err != nil {
		return err
	}
	newBalance, err := safemath.Add(currentBalance, amount)
	if err != nil {
		return fmt.Errorf("%w: %s at %d, adding %d", ErrBalanceOverflow, addr, currentBalance, amount)
	}
	return SetBalance(ctx, mu, addr, newBalance)
}

// StateKeysBalance returns the state key a balance-touching operation must
// declare for an address.
func StateKeysBalance(addr codec.Address) []byte {
	return BalanceKey(addr)
}
