package storage

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/hypersdk/codec"
)

// Derived addresses are deterministic, keyless storage locations: the same
// seed tuple always resolves to the same address, so records are located by
// recomputation instead of lookup tables. Nothing can sign for a derived
// address; only the lifecycle actions write under these keys.
const (
	marketSeed = "market"
	betSeed    = "bet"
)

// MarketAddress derives the storage address of the market a creator opened
// for a given question hash. Including the hash binds the address to the
// exact question text, so the same creator asking a different question gets
// a different address.
func MarketAddress(creator codec.Address, questionHash ids.ID) ids.ID {
	seed := make([]byte, 0, len(marketSeed)+codec.AddressLen+ids.IDLen)
	seed = append(seed, marketSeed...)
	seed = append(seed, creator[:]...)
	seed = append(seed, questionHash[:]...)
	return ids.ID(hashing.ComputeHash256(seed))
}

// BetAddress derives the storage address of a bettor's wager on a market.
// One address per (market, bettor) pair: a second wager by the same bettor
// derives the same address, so creating it again fails instead of
// overwriting the first.
func BetAddress(market ids.ID, bettor codec.Address) ids.ID {
	seed := make([]byte, 0, len(betSeed)+ids.IDLen+codec.AddressLen)
	seed = append(seed, betSeed...)
	seed = append(seed, market[:]...)
	seed = append(seed, bettor[:]...)
	return ids.ID(hashing.ComputeHash256(seed))
}

// HashQuestion computes the content hash binding a market address to its
// question text.
func HashQuestion(question string) ids.ID {
	return ids.ID(hashing.ComputeHash256([]byte(question)))
}
