package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInstallmentEstimate(t *testing.T) {
	loan := Loan{
		RequestedAmount: decimal.NewFromInt(1000),
		MonthlyRate:     decimal.NewFromInt(2),
		Installments:    10,
	}

	// 1000 * 1.02^10 / 10 = 121.899...
	got := loan.InstallmentEstimate()
	if got.StringFixed(2) != "121.90" {
		t.Errorf("InstallmentEstimate() = %s, want 121.90", got)
	}
}

func TestInstallmentEstimateZeroRate(t *testing.T) {
	loan := Loan{
		RequestedAmount: decimal.NewFromInt(1200),
		MonthlyRate:     decimal.Zero,
		Installments:    12,
	}

	got := loan.InstallmentEstimate()
	if got.StringFixed(2) != "100.00" {
		t.Errorf("InstallmentEstimate() = %s, want 100.00", got)
	}
}

func TestInstallmentEstimateNoInstallments(t *testing.T) {
	loan := Loan{RequestedAmount: decimal.NewFromInt(1000)}

	if got := loan.InstallmentEstimate(); !got.IsZero() {
		t.Errorf("InstallmentEstimate() = %s, want 0", got)
	}
}

func TestTotalEstimate(t *testing.T) {
	loan := Loan{
		RequestedAmount: decimal.NewFromInt(1200),
		MonthlyRate:     decimal.Zero,
		Installments:    12,
	}

	if got := loan.TotalEstimate(); got.StringFixed(2) != "1200.00" {
		t.Errorf("TotalEstimate() = %s, want 1200.00", got)
	}
}
