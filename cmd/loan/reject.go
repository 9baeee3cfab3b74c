package loan

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/model"
	"bankdesk/internal/ui/prompts"
)

func NewRejectCmd(client *api.Client) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:          "reject <id>",
		Short:        "Reject a pending loan",
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
				return fmt.Errorf("loan %d is %s, only pending loans can be rejected", id, loan.Status)
			}

			if reason == "" {
				reason, err = prompts.PromptRejectionReason()
				if err != nil {
					return err
				}
			}

			updated, err := client.RejectLoan(cmd.Context(), id, reason)
			if err != nil {
				return fmt.Errorf("failed to reject loan %d: %w", id, err)
			}

			pterm.Success.Printf("Loan #%d rejected\n", updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Rejection reason")

	return cmd
}
