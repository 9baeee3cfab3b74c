package loan

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/model"
	"bankdesk/internal/ui/views"
)

func NewListCmd(client *api.Client) *cobra.Command {
	var pendingOnly bool

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List all loans",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			loans, err := client.ListLoans(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list loans: %w", err)
			}

			if pendingOnly {
				loans = filterPending(loans)
			}

			return views.NewLoanListView().Render(loans)
		},
	}

	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "Show only loans awaiting a decision")

	return cmd
}

func filterPending(loans []model.Loan) []model.Loan {
	var filtered []model.Loan
	for _, l := range loans {
		if l.Status == model.LoanPending {
			filtered = append(filtered, l)
		}
	}
	return filtered
}
