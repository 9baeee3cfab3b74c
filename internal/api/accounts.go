package api

import (
	"context"
	"fmt"

	"bankdesk/internal/model"
)

// Accounts have no update or delete: once opened they are immutable from the
// console's point of view.

func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var out []model.Account
	if err := c.get(ctx, "/contas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAccount(ctx context.Context, id int64) (model.Account, error) {
	var out model.Account
	err := c.get(ctx, fmt.Sprintf("/contas/%d", id), &out)
	return out, err
}

func (c *Client) CreateCheckingAccount(ctx context.Context, account model.Account) (model.Account, error) {
	var out model.Account
	err := c.post(ctx, "/contas/corrente", account, &out)
	return out, err
}

func (c *Client) CreateSavingsAccount(ctx context.Context, account model.Account) (model.Account, error) {
	var out model.Account
	err := c.post(ctx, "/contas/poupanca", account, &out)
	return out, err
}
