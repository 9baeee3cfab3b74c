package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
	"bankdesk/internal/ui"
)

func RenderLoanDetail(l *model.Loan) error {
	pterm.Println()
	ui.PrintL2Title("Loan #%d", l.ID)

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Requested amount", formatMoney(l.RequestedAmount)},
		{"Approved amount", formatOptionalMoney(l.ApprovedAmount)},
		{"Monthly rate", l.MonthlyRate.StringFixed(2) + "%"},
		{"Installments", fmt.Sprintf("%d", l.Installments)},
		{"Status", string(l.Status)},
		{"Requested", formatDate(l.RequestedAt)},
		{"Approved", formatDate(l.ApprovedAt)},
	}

	if l.Status == model.LoanRejected {
		infoData = append(infoData, []string{"Rejection reason", orDash(l.RejectionReason)})
	}
	if l.Customer != nil {
		infoData = append(infoData, []string{"Customer", fmt.Sprintf("%s (CPF %s)", l.Customer.Name, l.Customer.FormattedCPF())})
	}
	if l.CreditAccount != nil {
		infoData = append(infoData, []string{"Credit account", l.CreditAccount.Number})
	}
	if l.Status == model.LoanPending && l.Installments > 0 {
		infoData = append(infoData, []string{
			"Estimated installment",
			fmt.Sprintf("%s x%d", formatMoney(l.InstallmentEstimate()), l.Installments),
		})
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
