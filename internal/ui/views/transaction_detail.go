package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
	"bankdesk/internal/ui"
)

func RenderTransactionDetail(tx *model.Transaction) error {
	pterm.Println()
	ui.PrintL2Title("Transaction #%d", tx.ID)

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Kind", string(tx.Kind)},
		{"Amount", formatMoney(tx.Amount)},
		{"From", accountLabel(tx.SourceAccount, tx.SourceAccountID)},
		{"To", accountLabel(tx.DestAccount, &tx.DestAccountID)},
		{"Date", formatDateTime(tx.Timestamp)},
		{"Status", orDash(tx.Status)},
		{"Description", orDash(tx.Description)},
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	fmt.Println()

	return nil
}
