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

func (c *Console) fetchAccounts(ctx context.Context) []model.Account {
	spinner, _ := pterm.DefaultSpinner.Start("Loading accounts...")
	accounts, err := c.client.ListAccounts(ctx)
	if err != nil {
		spinner.Fail("Could not load accounts")
		notifyFailure("list accounts", err)
		return nil
	}
	spinner.Stop()
	return accounts
}

func (c *Console) accountList(ctx context.Context) (nav.State, error) {
	accounts := c.fetchAccounts(ctx)
	if err := views.NewAccountListView().Render(accounts); err != nil {
		return c.state, err
	}

	opts := make([]huh.Option[int], 0, len(accounts)+2)
	for i, acc := range accounts {
		opts = append(opts, huh.NewOption(fmt.Sprintf("View %s - branch %s", acc.Number, acc.Branch), i))
	}
	opts = append(opts,
		huh.NewOption("+ Open account", actionCreate),
		huh.NewOption("< Back to overview", actionBack),
	)

	choice, err := selectIndex("Accounts:", opts)
	if err != nil {
		return c.state, err
	}

	switch choice {
	case actionCreate:
		return c.state.StartCreate(nav.SectionAccounts), nil
	case actionBack:
		return c.state.ChangeSection(nav.SectionOverview), nil
	default:
		return c.state.Select(nav.SectionAccounts, &accounts[choice], ""), nil
	}
}

func (c *Console) accountDetail(ctx context.Context, entity any) (nav.State, error) {
	account, ok := entity.(*model.Account)
	if !ok {
		return c.state.GoBack(nav.SectionAccounts), nil
	}

	if err := views.RenderAccountDetail(account); err != nil {
		return c.state, err
	}

	choice, err := prompts.PromptSelect("Actions:", []string{"Statement", "Back"}, "Back")
	if err != nil {
		return c.state, err
	}

	if choice == "Statement" {
		spinner, _ := pterm.DefaultSpinner.Start("Loading statement...")
		txs, err := c.client.AccountStatement(ctx, account.ID)
		if err != nil {
			spinner.Fail("Could not load statement")
			notifyFailure("account statement", err)
			return c.state, nil
		}
		spinner.Stop()
		if err := views.NewStatementView(account.Number).Render(txs); err != nil {
			return c.state, err
		}
		return c.state, nil
	}

	return c.state.GoBack(nav.SectionAccounts), nil
}

func (c *Console) accountCreate(ctx context.Context) (nav.State, error) {
	input, err := prompts.PromptAccount()
	if err != nil {
		return c.state, err
	}

	var created model.Account
	switch input.Type {
	case model.AccountSavings:
		created, err = c.client.CreateSavingsAccount(ctx, input)
	default:
		created, err = c.client.CreateCheckingAccount(ctx, input)
	}
	if err != nil {
		notifyFailure("open account", err)
		return c.state, nil
	}

	pterm.Success.Printf("Account %s opened with ID %d\n", created.Number, created.ID)
	return c.state.Save(nav.SectionAccounts, &created), nil
}
