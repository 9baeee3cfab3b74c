package api

import (
	"context"
	"fmt"

	"bankdesk/internal/model"
)

func (c *Client) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := c.get(ctx, "/transacoes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	var out model.Transaction
	err := c.get(ctx, fmt.Sprintf("/transacoes/%d", id), &out)
	return out, err
}

func (c *Client) CreateTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	var out model.Transaction
	err := c.post(ctx, "/transacoes", tx, &out)
	return out, err
}

// AccountStatement lists the transactions touching one account.
func (c *Client) AccountStatement(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	var out []model.Transaction
	if err := c.get(ctx, fmt.Sprintf("/transacoes/extrato/%d", accountID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
