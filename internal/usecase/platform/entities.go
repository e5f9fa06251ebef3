package platform

import "time"

type PlatformDTO struct {
	Admin           string    `json:"admin"`
	TotalLoans      uint64    `json:"total_loans"`
	TotalVolume     uint64    `json:"total_volume"`
	TreasuryBalance uint64    `json:"treasury_balance"`
	IsPaused        bool      `json:"is_paused"`
	TotalStaked     uint64    `json:"total_staked"`
	CreatedAt       time.Time `json:"created_at"`
}
