package console

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"bankdesk/internal/logger"
	"bankdesk/internal/nav"
	"bankdesk/internal/ui/views"
)

// overview renders the dashboard counts and asks which section to open.
// A resource that fails to load counts as zero; the dashboard must come up
// even with a half-broken backend.
func (c *Console) overview(ctx context.Context) (nav.State, error) {
	spinner, _ := pterm.DefaultSpinner.Start("Loading overview...")

	var stats views.OverviewStats
	if customers, err := c.client.ListCustomers(ctx); err == nil {
		stats.Customers = len(customers)
	} else {
		logger.Error("overview: list customers", err, nil)
	}
	if accounts, err := c.client.ListAccounts(ctx); err == nil {
		stats.Accounts = len(accounts)
	} else {
		logger.Error("overview: list accounts", err, nil)
	}
	if cards, err := c.client.ListCards(ctx); err == nil {
		stats.Cards = len(cards)
	} else {
		logger.Error("overview: list cards", err, nil)
	}
	if txs, err := c.client.ListTransactions(ctx); err == nil {
		stats.Transactions = len(txs)
	} else {
		logger.Error("overview: list transactions", err, nil)
	}
	if loans, err := c.client.ListLoans(ctx); err == nil {
		stats.Loans = len(loans)
	} else {
		logger.Error("overview: list loans", err, nil)
	}

	spinner.Stop()

	if err := views.RenderOverview(stats); err != nil {
		return c.state, err
	}

	const quit = "quit"
	var choice string
	err := huh.NewSelect[string]().
		Title("Open section:").
		Options(
			huh.NewOption("Customers", string(nav.SectionCustomers)),
			huh.NewOption("Accounts", string(nav.SectionAccounts)),
			huh.NewOption("Cards", string(nav.SectionCards)),
			huh.NewOption("Transactions", string(nav.SectionTransactions)),
			huh.NewOption("Loans", string(nav.SectionLoans)),
			huh.NewOption("Quit", quit),
		).
		Value(&choice).
		Run()
	if err != nil {
		return c.state, err
	}
	if choice == quit {
		return c.state, errQuit
	}

	return c.state.ChangeSection(nav.Section(choice)), nil
}
