package api

import (
	"context"
	"fmt"

	"bankdesk/internal/model"
)

func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var out []model.Customer
	if err := c.get(ctx, "/clientes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (model.Customer, error) {
	var out model.Customer
	err := c.get(ctx, fmt.Sprintf("/clientes/%d", id), &out)
	return out, err
}

func (c *Client) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	var out model.Customer
	err := c.post(ctx, "/clientes", customer, &out)
	return out, err
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, customer model.Customer) (model.Customer, error) {
	var out model.Customer
	err := c.put(ctx, fmt.Sprintf("/clientes/%d", id), customer, &out)
	return out, err
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/clientes/%d", id))
}
