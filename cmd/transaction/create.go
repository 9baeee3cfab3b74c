package transaction

import (
	"fmt"

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
	Kind        string
	From        int64
	To          int64
	Amount      string
	Description string
}

func NewCreateCmd(client *api.Client) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new transaction",
		Long: `Register a deposit (DEPOSITO), withdrawal (SAQUE) or transfer
(TRANSFERENCIA). Deposits take only --to; withdrawals and transfers also
need --from, and a transfer must not use the same account on both ends.

Without flags the command walks through the steps interactively.

Example: bankdesk transaction create -k TRANSFERENCIA --from 1 --to 2 -a 150.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input model.Transaction
			var err error

			if cmd.Flags().Changed("kind") || cmd.Flags().Changed("to") {
				input, err = flags.build()
				if err != nil {
					return err
				}
			} else {
				accounts, err := client.ListAccounts(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list accounts: %w", err)
				}
				input, err = prompts.PromptTransaction(accounts)
				if err != nil {
					return err
				}
			}

			created, err := client.CreateTransaction(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}

			pterm.Success.Printf("Transaction #%d (%s) registered\n", created.ID, created.Kind)
			return views.RenderTransactionDetail(&created)
		},
	}

	cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Transaction kind (DEPOSITO, SAQUE, TRANSFERENCIA)")
	cmd.Flags().Int64Var(&flags.From, "from", 0, "Source account ID (withdrawal and transfer)")
	cmd.Flags().Int64Var(&flags.To, "to", 0, "Destination account ID")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Description (optional)")

	return cmd
}

func (f *createFlags) build() (model.Transaction, error) {
	kind := model.TransactionKind(f.Kind)
	switch kind {
	case model.TransactionDeposit, model.TransactionWithdrawal, model.TransactionTransfer:
	default:
		return model.Transaction{}, fmt.Errorf("invalid transaction kind %q", f.Kind)
	}

	if f.To <= 0 {
		return model.Transaction{}, fmt.Errorf("--to must be a positive account ID")
	}

	tx := model.Transaction{Kind: kind, DestAccountID: f.To}

	if kind.NeedsSource() {
		if f.From <= 0 {
			return model.Transaction{}, fmt.Errorf("--from is required for %s", kind)
		}
		from := f.From
		tx.SourceAccountID = &from
	}
	if kind == model.TransactionTransfer && f.From == f.To {
		return model.Transaction{}, fmt.Errorf("destination account must differ from the source account")
	}

	if err := validation.ValidateAmount(f.Amount); err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}
	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}
	tx.Amount = amount
	tx.Description = f.Description

	return tx, nil
}
