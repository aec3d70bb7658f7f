package actions

const (
	// CreateMarketComputeUnits covers the existence check and market write.
	CreateMarketComputeUnits uint64 = 100

	// PlaceBetComputeUnits covers the market read, escrow deposit, bet
	// write, and market totals write.
	PlaceBetComputeUnits uint64 = 50

	// ResolveMarketComputeUnits covers the market read and write.
	ResolveMarketComputeUnits uint64 = 75

	// ClaimWinningsComputeUnits covers the market and bet reads, the payout
	// computation, the escrow withdrawal, and the bet write.
	ClaimWinningsComputeUnits uint64 = 75
)
