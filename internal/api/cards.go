package api

import (
	"context"
	"fmt"

	"bankdesk/internal/model"
)

func (c *Client) ListCards(ctx context.Context) ([]model.Card, error) {
	var out []model.Card
	if err := c.get(ctx, "/cartoes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCard(ctx context.Context, id int64) (model.Card, error) {
	var out model.Card
	err := c.get(ctx, fmt.Sprintf("/cartoes/%d", id), &out)
	return out, err
}

func (c *Client) CreateCreditCard(ctx context.Context, card model.Card) (model.Card, error) {
	var out model.Card
	err := c.post(ctx, "/cartoes/credito", card, &out)
	return out, err
}

func (c *Client) CreateDebitCard(ctx context.Context, card model.Card) (model.Card, error) {
	var out model.Card
	err := c.post(ctx, "/cartoes/debito", card, &out)
	return out, err
}

func (c *Client) BlockCard(ctx context.Context, id int64) (model.Card, error) {
	var out model.Card
	err := c.post(ctx, fmt.Sprintf("/cartoes/%d/bloquear", id), nil, &out)
	return out, err
}

func (c *Client) UnblockCard(ctx context.Context, id int64) (model.Card, error) {
	var out model.Card
	err := c.post(ctx, fmt.Sprintf("/cartoes/%d/desbloquear", id), nil, &out)
	return out, err
}
