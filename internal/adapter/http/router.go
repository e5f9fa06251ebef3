package http

import "github.com/labstack/echo/v4"

// Handlers groups everything the router mounts.
type Handlers struct {
	Health    *Handler
	Platforms *PlatformHandler
	Trust     *TrustHandler
	Loans     *LoanHandler
	Staking   *StakingHandler
	Accounts  *AccountHandler
}

// Mount registers every route on e. The credit endpoint only exists when
// faucet is set.
func (hs Handlers) Mount(e *echo.Echo, faucet bool) {
	e.GET("/health", hs.Health.Health)

	e.POST("/platforms", hs.Platforms.Initialize)
	e.GET("/platforms/:admin", hs.Platforms.Get)
	e.POST("/platforms/:admin/pause", hs.Platforms.Pause)
	e.POST("/platforms/:admin/unpause", hs.Platforms.Unpause)

	e.POST("/trust/register", hs.Trust.Register)
	e.GET("/trust/:account", hs.Trust.Get)
	e.GET("/trust/:account/max-loan", hs.Trust.MaxLoan)

	e.POST("/platforms/:admin/loans", hs.Loans.Originate)
	e.GET("/platforms/:admin/loans/:loan_id", hs.Loans.Get)
	e.POST("/platforms/:admin/loans/:loan_id/repay", hs.Loans.Repay)
	e.GET("/platforms/:admin/borrowers/:account/loans", hs.Loans.ListByBorrower)

	e.POST("/platforms/:admin/stakes", hs.Staking.Stake)
	e.POST("/platforms/:admin/unstakes", hs.Staking.Unstake)
	e.GET("/platforms/:admin/stakes/:account", hs.Staking.Get)
	e.GET("/platforms/:admin/withdrawals/:account", hs.Staking.PendingWithdrawal)

	e.GET("/accounts/:account", hs.Accounts.Balance)
	if faucet {
		e.POST("/accounts/:account/credit", hs.Accounts.Credit)
	}
}
