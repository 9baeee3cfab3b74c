package customer

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/ui/views"
)

func NewListCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all registered customers",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := client.ListCustomers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}
			return views.NewCustomerListView().Render(customers)
		},
	}
}
