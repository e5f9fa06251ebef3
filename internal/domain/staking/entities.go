package staking

import (
	"time"

	"trustlend/internal/domain/errs"
)

// Table: staking_pools. LastRewardTime and the per-entry Rewards are kept
// for a reward schedule that does not exist yet.
type Pool struct {
	Admin          string    `gorm:"column:admin;size:66;primaryKey" json:"admin"`
	TotalStaked    uint64    `gorm:"column:total_staked;not null;default:0" json:"total_staked"`
	LastRewardTime time.Time `gorm:"column:last_reward_time" json:"last_reward_time"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Pool) TableName() string { return "staking_pools" }

// Table: stake_entries, one per (platform, account), created on first stake.
type Entry struct {
	PlatformAdmin     string    `gorm:"column:platform_admin;size:66;primaryKey" json:"platform"`
	Account           string    `gorm:"column:account;size:66;primaryKey" json:"account"`
	Staked            uint64    `gorm:"column:staked;not null;default:0" json:"staked"`
	Rewards           uint64    `gorm:"column:rewards;not null;default:0" json:"rewards"`
	PendingWithdrawal uint64    `gorm:"column:pending_withdrawal;not null;default:0" json:"pending_withdrawal"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Entry) TableName() string { return "stake_entries" }

// Deposit adds amount to both the entry and the pool total.
func (p *Pool) Deposit(e *Entry, amount uint64) {
	e.Staked += amount
	p.TotalStaked += amount
}

// Withdraw moves amount from the active stake into the pending-withdrawal
// queue. Paying it out is an operator action outside the engine.
func (p *Pool) Withdraw(e *Entry, amount uint64) error {
	if e.Staked < amount {
		return errs.ErrInsufficientFunds
	}
	e.Staked -= amount
	e.PendingWithdrawal += amount
	p.TotalStaked -= amount
	return nil
}
