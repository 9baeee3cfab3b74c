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

func (c *Console) fetchTransactions(ctx context.Context) []model.Transaction {
	spinner, _ := pterm.DefaultSpinner.Start("Loading transactions...")
	txs, err := c.client.ListTransactions(ctx)
	if err != nil {
		spinner.Fail("Could not load transactions")
		notifyFailure("list transactions", err)
		return nil
	}
	spinner.Stop()
	return txs
}

func (c *Console) transactionList(ctx context.Context) (nav.State, error) {
	txs := c.fetchTransactions(ctx)
	if err := views.NewTransactionListView().Render(txs); err != nil {
		return c.state, err
	}

	opts := make([]huh.Option[int], 0, len(txs)+2)
	for i, tx := range txs {
		opts = append(opts, huh.NewOption(
			fmt.Sprintf("View #%d %s R$ %s", tx.ID, tx.Kind, tx.Amount.StringFixed(2)), i))
	}
	opts = append(opts,
		huh.NewOption("+ New transaction", actionCreate),
		huh.NewOption("< Back to overview", actionBack),
	)

	choice, err := selectIndex("Transactions:", opts)
	if err != nil {
		return c.state, err
	}

	switch choice {
	case actionCreate:
		return c.state.StartCreate(nav.SectionTransactions), nil
	case actionBack:
		return c.state.ChangeSection(nav.SectionOverview), nil
	default:
		return c.state.Select(nav.SectionTransactions, &txs[choice], ""), nil
	}
}

func (c *Console) transactionDetail(entity any) (nav.State, error) {
	tx, ok := entity.(*model.Transaction)
	if !ok {
		return c.state.GoBack(nav.SectionTransactions), nil
	}

	if err := views.RenderTransactionDetail(tx); err != nil {
		return c.state, err
	}

	if _, err := prompts.PromptSelect("Actions:", []string{"Back"}, "Back"); err != nil {
		return c.state, err
	}
	return c.state.GoBack(nav.SectionTransactions), nil
}

func (c *Console) transactionCreate(ctx context.Context) (nav.State, error) {
	accounts := c.fetchAccounts(ctx)
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts available; open an account before registering transactions")
		return c.state.GoBack(nav.SectionTransactions), nil
	}

	input, err := prompts.PromptTransaction(accounts)
	if err != nil {
		return c.state, err
	}

	created, err := c.client.CreateTransaction(ctx, input)
	if err != nil {
		notifyFailure("create transaction", err)
		return c.state, nil
	}

	pterm.Success.Printf("Transaction #%d (%s) registered\n", created.ID, created.Kind)
	return c.state.Save(nav.SectionTransactions, &created), nil
}
