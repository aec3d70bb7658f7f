package actions

import "errors"

// Every failure an action can return is a distinct sentinel so callers and
// tests can assert the exact cause with errors.Is. All are terminal at this
// layer: an action that fails leaves no state change behind.
var (
	// Validation
	ErrInvalidEndTime       = errors.New("invalid end time - must be in the future")
	ErrInvalidAmount        = errors.New("invalid bet amount")
	ErrEmptyQuestion        = errors.New("market question cannot be empty")
	ErrQuestionTooLong      = errors.New("market question is too long")
	ErrQuestionHashMismatch = errors.New("question hash does not match question")
	ErrInvalidOutcome       = errors.New("invalid resolution outcome")

	// Lifecycle state
	ErrMarketNotFound        = errors.New("market not found")
	ErrMarketAlreadyExists   = errors.New("market already exists")
	ErrMarketAlreadyResolved = errors.New("market has already been resolved")
	ErrMarketNotResolved     = errors.New("market has not been resolved yet")
	ErrBettingPeriodEnded    = errors.New("betting period has ended")
	ErrBettingPeriodNotEnded = errors.New("betting period has not ended yet")
	ErrBetAlreadyExists      = errors.New("bet already exists for this market and bettor")
	ErrBetNotFound           = errors.New("bet not found")
	ErrAlreadyClaimed        = errors.New("winnings have already been claimed")

	// Authorization
	ErrUnauthorizedResolution = errors.New("unauthorized to resolve market")
	ErrInvalidBettor          = errors.New("bet does not belong to caller")

	// Arithmetic
	ErrMathOverflow     = errors.New("math overflow")
	ErrNotAWinner       = errors.New("bettor is not a winner")
	ErrEmptyWinningPool = errors.New("winning pool is empty")
)

// Marshaling
var (
	ErrUnmarshalEmptyAction = errors.New("cannot unmarshal empty bytes as action")
)
