package loan

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/model"
	"bankdesk/internal/ui/prompts"
	"bankdesk/internal/ui/views"
	"bankdesk/internal/validation"
)

type createFlags struct {
	CustomerID   int64
	AccountID    int64
	Amount       string
	Rate         string
	Installments int
}

func NewCreateCmd(client *api.Client) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Request a new loan",
		Long: `Request a new loan for a customer, to be credited into an account
once approved.

Without flags the command walks through the steps interactively.

Example: bankdesk loan create --customer 1 --account 3 -a 10000 --rate 2 --installments 24`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input model.Loan
			var err error

			if cmd.Flags().Changed("customer") || cmd.Flags().Changed("account") {
				input, err = flags.build()
				if err != nil {
					return err
				}
			} else {
				customers, err := client.ListCustomers(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list customers: %w", err)
				}
				accounts, err := client.ListAccounts(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list accounts: %w", err)
				}
				input, err = prompts.PromptLoan(customers, accounts)
				if err != nil {
					return err
				}
			}

			created, err := client.CreateLoan(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to request loan: %w", err)
			}

			pterm.Success.Printf("Loan #%d requested for R$ %s\n",
				created.ID, created.RequestedAmount.StringFixed(2))
			return views.RenderLoanDetail(&created)
		},
	}

	cmd.Flags().Int64Var(&flags.CustomerID, "customer", 0, "Customer ID")
	cmd.Flags().Int64Var(&flags.AccountID, "account", 0, "Account ID to credit")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Requested amount")
	cmd.Flags().StringVar(&flags.Rate, "rate", "", "Monthly interest rate in %")
	cmd.Flags().IntVar(&flags.Installments, "installments", 0, "Number of installments")

	return cmd
}

func (f *createFlags) build() (model.Loan, error) {
	if f.CustomerID <= 0 {
		return model.Loan{}, fmt.Errorf("--customer must be a positive customer ID")
	}
	if f.AccountID <= 0 {
		return model.Loan{}, fmt.Errorf("--account must be a positive account ID")
	}
	if err := validation.ValidateAmount(f.Amount); err != nil {
		return model.Loan{}, fmt.Errorf("invalid amount: %w", err)
	}
	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return model.Loan{}, fmt.Errorf("invalid amount: %w", err)
	}
	rate, err := decimal.NewFromString(f.Rate)
	if err != nil || rate.IsNegative() {
		return model.Loan{}, fmt.Errorf("invalid rate %q", f.Rate)
	}
	if f.Installments <= 0 {
		return model.Loan{}, fmt.Errorf("--installments must be a positive number")
	}

	now := time.Now()
	return model.Loan{
		RequestedAmount: amount,
		MonthlyRate:     rate,
		Installments:    f.Installments,
		RequestedAt:     &now,
		Status:          model.LoanPending,
		Customer:        &model.Customer{ID: f.CustomerID},
		CreditAccount:   &model.Account{ID: f.AccountID},
	}, nil
}
