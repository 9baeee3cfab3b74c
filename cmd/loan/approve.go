package loan

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/model"
	"bankdesk/internal/ui/prompts"
)

func NewApproveCmd(client *api.Client) *cobra.Command {
	var amountFlag string

	cmd := &cobra.Command{
		Use:          "approve <id>",
		Short:        "Approve a pending loan",
		Long:         `Approve a pending loan. Without --amount the approved amount is asked interactively, defaulting to the requested one.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid loan id %q", args[0])
			}

			loan, err := client.GetLoan(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get loan %d: %w", id, err)
			}
			if loan.Status != model.LoanPending {
				return fmt.Errorf("loan %d is %s, only pending loans can be approved", id, loan.Status)
			}

			var amount decimal.Decimal
			if cmd.Flags().Changed("amount") {
				amount, err = decimal.NewFromString(amountFlag)
				if err != nil || !amount.IsPositive() {
					return fmt.Errorf("invalid amount %q", amountFlag)
				}
			} else {
				amount, err = prompts.PromptApprovalAmount(loan.RequestedAmount)
				if err != nil {
					return err
				}
			}

			updated, err := client.ApproveLoan(cmd.Context(), id, amount)
			if err != nil {
				return fmt.Errorf("failed to approve loan %d: %w", id, err)
			}

			pterm.Success.Printf("Loan #%d approved for R$ %s\n", updated.ID, amount.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "Approved amount (defaults to the requested one)")

	return cmd
}
