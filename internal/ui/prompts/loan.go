package prompts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"bankdesk/internal/model"
	"bankdesk/internal/validation"
)

// PromptLoan collects a loan request for one of the given customers, to be
// credited into one of the given accounts. Shows the cosmetic installment
// estimate before asking for confirmation.
func PromptLoan(customers []model.Customer, accounts []model.Account) (model.Loan, error) {
	customer, err := PromptSelectCustomer("Customer:", customers)
	if err != nil {
		return model.Loan{}, err
	}

	account, err := PromptSelectAccount("Account to credit:", accounts)
	if err != nil {
		return model.Loan{}, err
	}

	amountInput, err := PromptInput("Requested amount:", "", validation.ValidateAmount)
	if err != nil {
		return model.Loan{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(amountInput))
	if err != nil {
		return model.Loan{}, fmt.Errorf("invalid amount: %w", err)
	}

	rateInput, err := PromptInput("Monthly interest rate (%):", "", validation.ValidateNonNegativeAmount)
	if err != nil {
		return model.Loan{}, err
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(rateInput))
	if err != nil {
		return model.Loan{}, fmt.Errorf("invalid rate: %w", err)
	}

	installmentsInput, err := PromptInput("Number of installments:", "", validation.ValidatePositiveInt)
	if err != nil {
		return model.Loan{}, err
	}
	installments, _ := strconv.Atoi(strings.TrimSpace(installmentsInput))

	now := time.Now()
	loan := model.Loan{
		RequestedAmount: amount,
		MonthlyRate:     rate,
		Installments:    installments,
		RequestedAt:     &now,
		Status:          model.LoanPending,
		Customer:        &model.Customer{ID: customer.ID},
		CreditAccount:   account.Ref(),
	}

	pterm.Info.Printf("Estimated installment: R$ %s x%d (total R$ %s)\n",
		loan.InstallmentEstimate().StringFixed(2),
		loan.Installments,
		loan.TotalEstimate().StringFixed(2))

	confirmed, err := PromptConfirm("Submit loan request?", true)
	if err != nil {
		return model.Loan{}, err
	}
	if !confirmed {
		return model.Loan{}, huh.ErrUserAborted
	}

	return loan, nil
}

// PromptApprovalAmount asks for the amount to approve, defaulting to the
// requested one.
func PromptApprovalAmount(requested decimal.Decimal) (decimal.Decimal, error) {
	input, err := PromptInput("Approved amount:", requested.StringFixed(2), validation.ValidateAmount)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(strings.TrimSpace(input))
}

// PromptRejectionReason asks for the mandatory rejection reason.
func PromptRejectionReason() (string, error) {
	return PromptInput("Rejection reason:", "", validation.Required("rejection reason"))
}
