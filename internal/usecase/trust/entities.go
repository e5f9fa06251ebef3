package trust

import "time"

type ScoreDTO struct {
	Account string `json:"account"`
	Score   uint64 `json:"score"`
	Tier    string `json:"tier"`
}

type RecordDTO struct {
	Account       string    `json:"account"`
	Score         uint64    `json:"score"`
	Tier          string    `json:"tier"`
	LoanCount     uint64    `json:"loan_count"`
	TotalBorrowed uint64    `json:"total_borrowed"`
	TotalRepaid   uint64    `json:"total_repaid"`
	Defaults      uint64    `json:"defaults"`
	StakedAmount  uint64    `json:"staked_amount"`
	WalletAge     uint64    `json:"wallet_age"`
	LastUpdated   time.Time `json:"last_updated"`
	MaxLoanAmount uint64    `json:"max_loan_amount"`
}
