package actions

import (
	"github.com/ava-labs/hypersdk/chain"
)

// ActionRegistry maps action type IDs to prototype instances, keyed by the
// IDs in consts. The vm package registers the same set with its parsers.
var ActionRegistry = map[uint8]chain.Action{
	(&CreateMarket{}).GetTypeID():  &CreateMarket{},
	(&PlaceBet{}).GetTypeID():      &PlaceBet{},
	(&ResolveMarket{}).GetTypeID(): &ResolveMarket{},
	(&ClaimWinnings{}).GetTypeID(): &ClaimWinnings{},
}
