package account

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
	Type      string
	Number    string
	Branch    string
	Balance   string
	Overdraft string
	Rate      string
}

func NewCreateCmd(client *api.Client) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		Long: `Open a new checking (CORRENTE) or savings (POUPANCA) account.

Without flags the command walks through the steps interactively.

Example: bankdesk account create -t CORRENTE -n 12345-6 --branch 0001 --overdraft 500`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input model.Account
			var err error

			if cmd.Flags().Changed("number") || cmd.Flags().Changed("type") {
				input, err = flags.build()
			} else {
				input, err = prompts.PromptAccount()
			}
			if err != nil {
				return err
			}

			var created model.Account
			switch input.Type {
			case model.AccountSavings:
				created, err = client.CreateSavingsAccount(cmd.Context(), input)
			default:
				created, err = client.CreateCheckingAccount(cmd.Context(), input)
			}
			if err != nil {
				return fmt.Errorf("failed to open account: %w", err)
			}

			pterm.Success.Printf("Account %s opened with ID %d\n", created.Number, created.ID)
			return views.RenderAccountDetail(&created)
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "CORRENTE", "Account type (CORRENTE, POUPANCA)")
	cmd.Flags().StringVarP(&flags.Number, "number", "n", "", "Account number")
	cmd.Flags().StringVar(&flags.Branch, "branch", "", "Branch code")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "0", "Initial balance")
	cmd.Flags().StringVar(&flags.Overdraft, "overdraft", "0", "Overdraft limit (checking only)")
	cmd.Flags().StringVar(&flags.Rate, "rate", "0.5", "Monthly interest rate in % (savings only)")

	return cmd
}

func (f *createFlags) build() (model.Account, error) {
	accType := model.AccountType(f.Type)
	if accType != model.AccountChecking && accType != model.AccountSavings {
		return model.Account{}, fmt.Errorf("invalid account type %q (want CORRENTE or POUPANCA)", f.Type)
	}
	if err := validation.Required("account number")(f.Number); err != nil {
		return model.Account{}, err
	}
	if err := validation.Required("branch")(f.Branch); err != nil {
		return model.Account{}, err
	}
	if err := validation.ValidateNonNegativeAmount(f.Balance); err != nil {
		return model.Account{}, fmt.Errorf("invalid balance: %w", err)
	}
	balance, err := decimal.NewFromString(f.Balance)
	if err != nil {
		return model.Account{}, fmt.Errorf("invalid balance: %w", err)
	}

	now := time.Now()
	account := model.Account{
		Number:   f.Number,
		Branch:   f.Branch,
		Balance:  balance,
		OpenedAt: &now,
		Status:   model.AccountActive,
		Type:     accType,
	}

	switch accType {
	case model.AccountChecking:
		limit, err := decimal.NewFromString(f.Overdraft)
		if err != nil || limit.IsNegative() {
			return model.Account{}, fmt.Errorf("invalid overdraft limit %q", f.Overdraft)
		}
		account.OverdraftLimit = &limit
	case model.AccountSavings:
		rate, err := decimal.NewFromString(f.Rate)
		if err != nil || rate.IsNegative() {
			return model.Account{}, fmt.Errorf("invalid interest rate %q", f.Rate)
		}
		account.InterestRate = &rate
		account.AnniversaryDate = &now
	}

	return account, nil
}
