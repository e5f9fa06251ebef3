// Package policy holds the fixed lending and staking parameters.
package policy

import "time"

// Trust score
const (
	InitialScore uint64 = 100
	MaxScore     uint64 = 1000

	// OnTimeRepaymentBonus is added to the score when a loan is repaid by its due date.
	OnTimeRepaymentBonus uint64 = 10
	// StakeUnitsPerPoint: one score point per this many staked units.
	StakeUnitsPerPoint uint64 = 1_000_000
	// WalletAgeDaysPerPoint: one registration bonus point per this many days of wallet age.
	WalletAgeDaysPerPoint uint64 = 30
	SecondsPerDay         uint64 = 86_400
)

// Tier thresholds (inclusive lower bounds)
const (
	PlatinumMinScore uint64 = 800
	GoldMinScore     uint64 = 600
	SilverMinScore   uint64 = 400
)

// Loans, amounts in smallest currency units
const (
	MinLoanAmount uint64 = 1_000_000
	MaxLoanAmount uint64 = 100_000_000_000

	LoanDurationSeconds uint64 = 2_592_000
	InterestRateBps     uint64 = 500
	BpsDenominator      uint64 = 10_000

	// ScoreToAmountMultiplier / ScoreToAmountDivisor converts score into borrowing power.
	ScoreToAmountMultiplier uint64 = 1_000_000
	ScoreToAmountDivisor    uint64 = 100
	// StakeCollateralFactor multiplies staked balance into extra borrowing power.
	StakeCollateralFactor uint64 = 2
)

// StakingAPYBps is stored for a future reward schedule; nothing computes with it.
const StakingAPYBps uint64 = 1000

// LoanDuration is LoanDurationSeconds as a time.Duration.
const LoanDuration = time.Duration(LoanDurationSeconds) * time.Second

// Interest is the flat interest owed on amount, truncated.
func Interest(amount uint64) uint64 {
	return amount * InterestRateBps / BpsDenominator
}
