// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

const (
	Name   = "wagervm"
	Symbol = "WGR"
)

// Action type IDs. Result types reuse the ID of the action that produced them.
const (
	CreateMarketID uint8 = iota
	PlaceBetID
	ResolveMarketID
	ClaimWinningsID
)

const (
	// MaxQuestionLength bounds the human-readable market question.
	MaxQuestionLength = 200

	// DefaultFeeBasisPoints is the platform fee fixed into every market at
	// creation. 100 bp = 1%.
	DefaultFeeBasisPoints uint16 = 100

	// BasisPointsDivisor converts basis points to a fraction.
	BasisPointsDivisor uint64 = 10_000

	// MaxMarketDataSize bounds a marshaled Market record: two addresses, the
	// bounded question, the question hash, and fixed-width fields.
	MaxMarketDataSize = 512

	// MaxBetDataSize bounds a marshaled Bet record.
	MaxBetDataSize = 128

	// MaxActionSize bounds any marshaled action.
	MaxActionSize = 512
)

var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
