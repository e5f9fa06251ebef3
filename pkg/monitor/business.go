package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics counts committed and rejected ledger operations.
type BusinessMetrics struct {
	RegistrationsTotal  prometheus.Counter
	PlatformsTotal      prometheus.Counter
	LoansOriginated     prometheus.Counter
	LoanVolumeTotal     prometheus.Counter
	RepaymentsTotal     *prometheus.CounterVec
	StakedAmountTotal   prometheus.Counter
	UnstakedAmountTotal prometheus.Counter
	RejectedTotal       *prometheus.CounterVec
}

// New registers the metrics on reg; a nil reg uses the default registerer.
func New(reg prometheus.Registerer) *BusinessMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &BusinessMetrics{
		RegistrationsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "trustlend_registrations_total",
			Help: "Trust records created",
		}),
		PlatformsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "trustlend_platforms_initialized_total",
			Help: "Platforms initialized",
		}),
		LoansOriginated: f.NewCounter(prometheus.CounterOpts{
			Name: "trustlend_loans_originated_total",
			Help: "Loans originated",
		}),
		LoanVolumeTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "trustlend_loan_volume_total",
			Help: "Principal originated, smallest currency units",
		}),
		RepaymentsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trustlend_repayments_total",
			Help: "Loans repaid, by punctuality",
		}, []string{"on_time"}),
		StakedAmountTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "trustlend_staked_amount_total",
			Help: "Amount staked, smallest currency units",
		}),
		UnstakedAmountTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "trustlend_unstaked_amount_total",
			Help: "Amount queued for withdrawal, smallest currency units",
		}),
		RejectedTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "trustlend_rejected_operations_total",
			Help: "Operations aborted, by operation and error code",
		}, []string{"operation", "code"}),
	}
}

// Noop returns metrics registered nowhere, for tests and tools.
func Noop() *BusinessMetrics { return New(prometheus.NewRegistry()) }
