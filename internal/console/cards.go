package console

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"bankdesk/internal/model"
	"bankdesk/internal/nav"
	"bankdesk/internal/ui/prompts"
	"bankdesk/internal/ui/views"
)

func (c *Console) fetchCards(ctx context.Context) []model.Card {
	spinner, _ := pterm.DefaultSpinner.Start("Loading cards...")
	cards, err := c.client.ListCards(ctx)
	if err != nil {
		spinner.Fail("Could not load cards")
		notifyFailure("list cards", err)
		return nil
	}
	spinner.Stop()
	return cards
}

func (c *Console) cardList(ctx context.Context) (nav.State, error) {
	cards := c.fetchCards(ctx)
	if err := views.NewCardListView().Render(cards); err != nil {
		return c.state, err
	}

	opts := make([]huh.Option[int], 0, len(cards)+2)
	for i, card := range cards {
		opts = append(opts, huh.NewOption(
			fmt.Sprintf("View %s (%s, %s)", card.MaskedNumber(), card.Type, card.Status), i))
	}
	opts = append(opts,
		huh.NewOption("+ Issue card", actionCreate),
		huh.NewOption("< Back to overview", actionBack),
	)

	choice, err := selectIndex("Cards:", opts)
	if err != nil {
		return c.state, err
	}

	switch choice {
	case actionCreate:
		return c.state.StartCreate(nav.SectionCards), nil
	case actionBack:
		return c.state.ChangeSection(nav.SectionOverview), nil
	default:
		return c.state.Select(nav.SectionCards, &cards[choice], ""), nil
	}
}

func (c *Console) cardDetail(ctx context.Context, entity any) (nav.State, error) {
	card, ok := entity.(*model.Card)
	if !ok {
		return c.state.GoBack(nav.SectionCards), nil
	}

	if err := views.RenderCardDetail(card); err != nil {
		return c.state, err
	}

	// Blocked cards offer unblocking and vice versa. Inactive cards only go back.
	options := []string{"Back"}
	switch card.Status {
	case model.CardActive:
		options = []string{"Block", "Back"}
	case model.CardBlocked:
		options = []string{"Unblock", "Back"}
	}

	choice, err := prompts.PromptSelect("Actions:", options, "Back")
	if err != nil {
		return c.state, err
	}

	switch choice {
	case "Block":
		updated, err := c.client.BlockCard(ctx, card.ID)
		if err != nil {
			notifyFailure("block card", err)
			return c.state, nil
		}
		pterm.Success.Printf("Card %s blocked\n", updated.MaskedNumber())
		return c.state.Save(nav.SectionCards, &updated), nil
	case "Unblock":
		updated, err := c.client.UnblockCard(ctx, card.ID)
		if err != nil {
			notifyFailure("unblock card", err)
			return c.state, nil
		}
		pterm.Success.Printf("Card %s unblocked\n", updated.MaskedNumber())
		return c.state.Save(nav.SectionCards, &updated), nil
	default:
		return c.state.GoBack(nav.SectionCards), nil
	}
}

func (c *Console) cardCreate(ctx context.Context) (nav.State, error) {
	accounts := c.fetchAccounts(ctx)
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts available; open an account before issuing a card")
		return c.state.GoBack(nav.SectionCards), nil
	}

	input, err := prompts.PromptCard(accounts)
	if err != nil {
		return c.state, err
	}

	var created model.Card
	switch input.Type {
	case model.CardCredit:
		created, err = c.client.CreateCreditCard(ctx, input)
	default:
		created, err = c.client.CreateDebitCard(ctx, input)
	}
	if err != nil {
		notifyFailure("issue card", err)
		return c.state, nil
	}

	pterm.Success.Printf("Card %s issued with ID %d\n", created.MaskedNumber(), created.ID)
	return c.state.Save(nav.SectionCards, &created), nil
}
