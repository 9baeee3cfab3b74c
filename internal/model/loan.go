package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type LoanStatus string

const (
	LoanPending  LoanStatus = "PENDENTE"
	LoanApproved LoanStatus = "APROVADO"
	LoanRejected LoanStatus = "REJEITADO"
)

// Loan mirrors the wire shape of the /emprestimos resource. MonthlyRate is a
// percentage (2 means 2% per month).
type Loan struct {
	ID              int64            `json:"id,omitempty"`
	RequestedAmount decimal.Decimal  `json:"valorSolicitado"`
	ApprovedAmount  *decimal.Decimal `json:"valorAprovado,omitempty"`
	MonthlyRate     decimal.Decimal  `json:"taxaJurosMensal"`
	Installments    int              `json:"numeroParcelas"`
	RequestedAt     *time.Time       `json:"dataSolicitacao,omitempty"`
	ApprovedAt      *time.Time       `json:"dataAprovacao,omitempty"`
	Status          LoanStatus       `json:"statusEmprestimo"`
	RejectionReason string           `json:"motivoRejeicao,omitempty"`
	Customer        *Customer        `json:"cliente,omitempty"`
	CreditAccount   *Account         `json:"contaCredito,omitempty"`
}

var oneHundred = decimal.NewFromInt(100)

// InstallmentEstimate is the cosmetic fixed-installment preview shown on the
// loan form: requested·(1+rate)^n / n, rounded to cents. The backend computes
// the authoritative schedule; this never feeds back into any payload.
func (l Loan) InstallmentEstimate() decimal.Decimal {
	if l.Installments <= 0 {
		return decimal.Zero
	}
	rate := l.MonthlyRate.Div(oneHundred)
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(l.Installments)))
	total := l.RequestedAmount.Mul(factor)
	return total.Div(decimal.NewFromInt(int64(l.Installments))).Round(2)
}

// TotalEstimate is the installment estimate times the installment count.
func (l Loan) TotalEstimate() decimal.Decimal {
	return l.InstallmentEstimate().Mul(decimal.NewFromInt(int64(l.Installments)))
}
