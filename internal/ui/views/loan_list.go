package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
)

type LoanListView struct{}

func NewLoanListView() *LoanListView {
	return &LoanListView{}
}

func (v *LoanListView) Render(loans []model.Loan) error {
	headers := []string{"ID", "Requested", "Approved", "Rate", "Installments", "Status"}
	tableData := pterm.TableData{headers}

	for _, loan := range loans {
		var coloredStatus string
		switch loan.Status {
		case model.LoanApproved:
			coloredStatus = pterm.Green(string(loan.Status))
		case model.LoanPending:
			coloredStatus = pterm.Yellow(string(loan.Status))
		case model.LoanRejected:
			coloredStatus = pterm.Red(string(loan.Status))
		default:
			coloredStatus = string(loan.Status)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", loan.ID),
			formatMoney(loan.RequestedAmount),
			formatOptionalMoney(loan.ApprovedAmount),
			loan.MonthlyRate.StringFixed(2) + "%",
			fmt.Sprintf("%d", loan.Installments),
			coloredStatus,
		})
	}

	pterm.DefaultSection.Printf("Loans")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d loans\n", len(loans))

	return nil
}
