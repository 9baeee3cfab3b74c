package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/ui"
)

// OverviewStats carries the entity totals shown on the dashboard. Counts for
// resources that failed to load are zero, never an error.
type OverviewStats struct {
	Customers    int
	Accounts     int
	Cards        int
	Transactions int
	Loans        int
}

func RenderOverview(stats OverviewStats) error {
	ui.PrintL1Title("bankdesk — back office")

	tableData := pterm.TableData{
		{"Resource", "Total"},
		{"Customers", fmt.Sprintf("%d", stats.Customers)},
		{"Accounts", fmt.Sprintf("%d", stats.Accounts)},
		{"Cards", fmt.Sprintf("%d", stats.Cards)},
		{"Transactions", fmt.Sprintf("%d", stats.Transactions)},
		{"Loans", fmt.Sprintf("%d", stats.Loans)},
	}

	pterm.Println()
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(tableData).
		Render(); err != nil {
		return err
	}
	pterm.Println()

	return nil
}
