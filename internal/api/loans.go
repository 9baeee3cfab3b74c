package api

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"bankdesk/internal/model"
)

type loanApproval struct {
	ApprovedAmount decimal.Decimal `json:"valorAprovado"`
}

type loanRejection struct {
	Reason string `json:"motivo"`
}

func (c *Client) ListLoans(ctx context.Context) ([]model.Loan, error) {
	var out []model.Loan
	if err := c.get(ctx, "/emprestimos", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	var out model.Loan
	err := c.get(ctx, fmt.Sprintf("/emprestimos/%d", id), &out)
	return out, err
}

func (c *Client) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	var out model.Loan
	err := c.post(ctx, "/emprestimos", loan, &out)
	return out, err
}

// ApproveLoan moves a pending loan to APROVADO with the credited amount.
// The status transition itself happens server-side.
func (c *Client) ApproveLoan(ctx context.Context, id int64, amount decimal.Decimal) (model.Loan, error) {
	var out model.Loan
	err := c.post(ctx, fmt.Sprintf("/emprestimos/%d/aprovar", id), loanApproval{ApprovedAmount: amount}, &out)
	return out, err
}

// RejectLoan moves a pending loan to REJEITADO, recording the reason.
func (c *Client) RejectLoan(ctx context.Context, id int64, reason string) (model.Loan, error) {
	var out model.Loan
	err := c.post(ctx, fmt.Sprintf("/emprestimos/%d/rejeitar", id), loanRejection{Reason: reason}, &out)
	return out, err
}
