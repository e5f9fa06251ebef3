package errs

import "errors"

// Error kinds. Every failed operation aborts its transaction and returns one of
// these (possibly wrapped with context); match with errors.Is.
var (
	ErrNotInitialized         = errors.New("not initialized")
	ErrAlreadyInitialized     = errors.New("already initialized")
	ErrInsufficientTrustScore = errors.New("insufficient trust score")
	ErrNotFound               = errors.New("not found")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrAlreadyRepaid          = errors.New("loan already repaid")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidAmount          = errors.New("invalid amount")

	// ErrOverdue is reserved; no operation raises it yet.
	ErrOverdue = errors.New("loan overdue")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrNotInitialized, "not_initialized"},
	{ErrAlreadyInitialized, "already_initialized"},
	{ErrInsufficientTrustScore, "insufficient_trust_score"},
	{ErrNotFound, "not_found"},
	{ErrInsufficientFunds, "insufficient_funds"},
	{ErrAlreadyRepaid, "already_repaid"},
	{ErrUnauthorized, "unauthorized"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrOverdue, "overdue"},
}

// Code returns a stable machine-readable code for err, "internal" for
// anything that is not one of the kinds above and "" for nil.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return "internal"
}
