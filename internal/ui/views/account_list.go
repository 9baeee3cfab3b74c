package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	headers := []string{"ID", "Number", "Branch", "Type", "Status", "Balance"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := formatMoney(acc.Balance)

		var coloredStatus, coloredBalance string
		switch acc.Status {
		case model.AccountActive:
			coloredStatus = pterm.Green(string(acc.Status))
			coloredBalance = pterm.Green(balance)
		default:
			coloredStatus = pterm.Red(string(acc.Status))
			coloredBalance = pterm.Gray(balance)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", acc.ID),
			acc.Number,
			acc.Branch,
			string(acc.Type),
			coloredStatus,
			coloredBalance,
		})
	}

	pterm.DefaultSection.Printf("Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
