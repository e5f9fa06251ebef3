package trust

import (
	"math"
	"time"

	"trustlend/internal/domain/policy"
)

type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// TierFor classifies a score. It is the only source of a record's tier.
func TierFor(score uint64) Tier {
	switch {
	case score >= policy.PlatinumMinScore:
		return TierPlatinum
	case score >= policy.GoldMinScore:
		return TierGold
	case score >= policy.SilverMinScore:
		return TierSilver
	default:
		return TierBronze
	}
}

// Table: trust_records, one row per account, never deleted.
type Record struct {
	Account       string    `gorm:"column:account;size:66;primaryKey" json:"account"`
	Score         uint64    `gorm:"column:score;not null" json:"score"`
	Tier          Tier      `gorm:"column:tier;size:16;not null" json:"tier"`
	LoanCount     uint64    `gorm:"column:loan_count;not null;default:0" json:"loan_count"`
	TotalBorrowed uint64    `gorm:"column:total_borrowed;not null;default:0" json:"total_borrowed"`
	TotalRepaid   uint64    `gorm:"column:total_repaid;not null;default:0" json:"total_repaid"`
	Defaults      uint64    `gorm:"column:defaults;not null;default:0" json:"defaults"`
	LastUpdated   time.Time `gorm:"column:last_updated" json:"last_updated"`
	StakedAmount  uint64    `gorm:"column:staked_amount;not null;default:0" json:"staked_amount"`
	WalletAge     uint64    `gorm:"column:wallet_age;not null;default:0" json:"wallet_age"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Record) TableName() string { return "trust_records" }

// NewRecord builds the registration record for account. The wallet-age bonus
// is clamped so a fresh record never exceeds MaxScore.
func NewRecord(account string, walletAgeSecs uint64, now time.Time) *Record {
	days := walletAgeSecs / policy.SecondsPerDay
	score := clampScore(satAdd(policy.InitialScore, days/policy.WalletAgeDaysPerPoint))
	return &Record{
		Account:     account,
		Score:       score,
		Tier:        TierFor(score),
		LastUpdated: now,
		WalletAge:   walletAgeSecs,
	}
}

func (r *Record) setScore(score uint64) {
	r.Score = clampScore(score)
	r.Tier = TierFor(r.Score)
}

// ApplyLoanIssued books a new loan; the score is untouched.
func (r *Record) ApplyLoanIssued(amount uint64) {
	r.LoanCount++
	r.TotalBorrowed = satAdd(r.TotalBorrowed, amount)
}

// ApplyRepayment books a repayment and rewards punctuality.
func (r *Record) ApplyRepayment(amountRepaid uint64, onTime bool, now time.Time) {
	r.TotalRepaid = satAdd(r.TotalRepaid, amountRepaid)
	bonus := uint64(0)
	if onTime {
		bonus = policy.OnTimeRepaymentBonus
	}
	r.setScore(satAdd(r.Score, bonus))
	r.LastUpdated = now
}

// ApplyStake grants one point per StakeUnitsPerPoint staked, capped at MaxScore.
func (r *Record) ApplyStake(amount uint64) {
	r.StakedAmount = satAdd(r.StakedAmount, amount)
	r.setScore(satAdd(r.Score, amount/policy.StakeUnitsPerPoint))
}

// ApplyUnstake lowers the staked amount. The staking bonus already granted
// to the score is kept.
func (r *Record) ApplyUnstake(amount uint64) {
	if amount > r.StakedAmount {
		amount = r.StakedAmount
	}
	r.StakedAmount -= amount
}

// MaxLoanAmount is the borrowing ceiling: score-derived allowance plus
// twice the staked collateral.
func (r *Record) MaxLoanAmount() uint64 {
	base := r.Score * policy.ScoreToAmountMultiplier / policy.ScoreToAmountDivisor
	if r.StakedAmount > math.MaxUint64/policy.StakeCollateralFactor {
		return math.MaxUint64
	}
	return satAdd(base, r.StakedAmount*policy.StakeCollateralFactor)
}

func clampScore(s uint64) uint64 {
	if s > policy.MaxScore {
		return policy.MaxScore
	}
	return s
}

func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
