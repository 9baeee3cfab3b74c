package transaction

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/ui/views"
)

func NewListCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all transactions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := client.ListTransactions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}
			return views.NewTransactionListView().Render(txs)
		},
	}
}
