package platform

import "time"

// Table: platforms. One row per admin account; TotalLoans doubles as the
// last issued loan id.
type State struct {
	Admin           string    `gorm:"column:admin;size:66;primaryKey" json:"admin"`
	TotalLoans      uint64    `gorm:"column:total_loans;not null;default:0" json:"total_loans"`
	TotalVolume     uint64    `gorm:"column:total_volume;not null;default:0" json:"total_volume"`
	TreasuryBalance uint64    `gorm:"column:treasury_balance;not null;default:0" json:"treasury_balance"`
	IsPaused        bool      `gorm:"column:is_paused;not null;default:false" json:"is_paused"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (State) TableName() string { return "platforms" }

// NextLoanID reserves the next sequence number and books its volume.
func (s *State) NextLoanID(amount uint64) uint64 {
	s.TotalLoans++
	s.TotalVolume += amount
	return s.TotalLoans
}
