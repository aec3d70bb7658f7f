package actions

import (
	safemath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/wagerlabs/wagervm/consts"
	"github.com/wagerlabs/wagervm/storage"
)

// Winnings computes the payout for a winning wager of the given amount on a
// resolved market:
//
//	totalPool = winningPool + losingPool
//	fee       = totalPool * feeBasisPoints / 10000
//	netPool   = totalPool - fee
//	payout    = amount * netPool / winningPool
//
// All arithmetic is fixed-width and overflow-checked; both divisions
// truncate toward zero, so up to winningPool-1 base units of rounding dust
// can remain in the pool after every winner claims. The fee itself is never
// withdrawn here, it stays in the market's escrow pool.
func Winnings(m *storage.Market, amount uint64) (uint64, error) {
	var winningPool, losingPool uint64
	switch m.Outcome {
	case storage.Outcome_Yes:
		winningPool, losingPool = m.TotalYesAmount, m.TotalNoAmount
	case storage.Outcome_No:
		winningPool, losingPool = m.TotalNoAmount, m.TotalYesAmount
	default:
		return 0, ErrMarketNotResolved
	}

	// A winning bet implies a non-zero winning pool; guard the division
	// regardless.
	if winningPool == 0 {
		return 0, ErrEmptyWinningPool
	}

	totalPool, err := safemath.Add(winningPool, losingPool)
	if err != nil {
		return 0, ErrMathOverflow
	}

	feeNumerator, err := safemath.Mul(totalPool, uint64(m.FeeBasisPoints))
	if err != nil {
		return 0, ErrMathOverflow
	}
	feeAmount := feeNumerator / consts.BasisPointsDivisor

	netPool, err := safemath.Sub(totalPool, feeAmount)
	if err != nil {
		return 0, ErrMathOverflow
	}

	grossShare, err := safemath.Mul(amount, netPool)
	if err != nil {
		return 0, ErrMathOverflow
	}
	return grossShare / winningPool, nil
}
