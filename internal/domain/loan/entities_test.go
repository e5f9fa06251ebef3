package loan

import (
	"testing"
	"time"
)

func TestNew_PricesLoan(t *testing.T) {
	now := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)
	l := New("admin", 1, "borrower", 1_000_000, now)

	if l.InterestAmount != 50_000 {
		t.Fatalf("interest = %d, want 50000", l.InterestAmount)
	}
	if want := now.Add(2_592_000 * time.Second); !l.DueDate.Equal(want) {
		t.Fatalf("due = %v, want %v", l.DueDate, want)
	}
	if l.Status != StatusActive {
		t.Fatalf("status = %s, want active", l.Status)
	}
	if l.TotalRepayment() != 1_050_000 {
		t.Fatalf("total repayment = %d", l.TotalRepayment())
	}
}

func TestOnTime(t *testing.T) {
	now := time.Date(2025, 9, 6, 10, 0, 0, 0, time.UTC)
	l := New("admin", 1, "borrower", 1_000_000, now)

	if !l.OnTime(l.DueDate) {
		t.Fatal("repayment exactly at due date must be on time")
	}
	if !l.OnTime(now) {
		t.Fatal("repayment before due date must be on time")
	}
	if l.OnTime(l.DueDate.Add(time.Second)) {
		t.Fatal("repayment after due date must be late")
	}
}
