package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
)

type TransactionListView struct {
	Title string
}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{Title: "Transactions"}
}

// NewStatementView renders the same table under a statement heading.
func NewStatementView(accountNumber string) *TransactionListView {
	return &TransactionListView{Title: fmt.Sprintf("Statement for account %s", accountNumber)}
}

func (v *TransactionListView) Render(txs []model.Transaction) error {
	headers := []string{"ID", "Kind", "Amount", "From", "To", "Date"}
	tableData := pterm.TableData{headers}

	for _, tx := range txs {
		amount := formatMoney(tx.Amount)
		var coloredKind, coloredAmount string
		switch tx.Kind {
		case model.TransactionDeposit:
			coloredKind = pterm.Green(string(tx.Kind))
			coloredAmount = pterm.Green(amount)
		case model.TransactionWithdrawal:
			coloredKind = pterm.Red(string(tx.Kind))
			coloredAmount = pterm.Red(amount)
		default:
			coloredKind = string(tx.Kind)
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			coloredKind,
			coloredAmount,
			accountLabel(tx.SourceAccount, tx.SourceAccountID),
			accountLabel(tx.DestAccount, &tx.DestAccountID),
			formatDateTime(tx.Timestamp),
		})
	}

	pterm.DefaultSection.Printf("%s", v.Title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(txs))

	return nil
}

func accountLabel(acc *model.Account, id *int64) string {
	if acc != nil && acc.Number != "" {
		return acc.Number
	}
	if acc != nil && acc.ID != 0 {
		return fmt.Sprintf("[ID: %d]", acc.ID)
	}
	if id != nil && *id != 0 {
		return fmt.Sprintf("[ID: %d]", *id)
	}
	return "-"
}
