package staking

import "time"

type StakeDTO struct {
	Platform          string `json:"platform"`
	Account           string `json:"account"`
	Staked            uint64 `json:"staked"`
	Rewards           uint64 `json:"rewards"`
	PendingWithdrawal uint64 `json:"pending_withdrawal"`
}

// StakeResultDTO is the outcome of a stake or unstake call.
type StakeResultDTO struct {
	StakeDTO
	Amount      uint64 `json:"amount"`
	PoolTotal   uint64 `json:"pool_total"`
	Score       uint64 `json:"score"`
	Tier        string `json:"tier"`
	StakedTotal uint64 `json:"staked_total"`
}

type PoolDTO struct {
	Admin          string    `json:"admin"`
	TotalStaked    uint64    `json:"total_staked"`
	LastRewardTime time.Time `json:"last_reward_time"`
}
