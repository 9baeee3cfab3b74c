package customer

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/ui/views"
)

func NewShowCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "show <id>",
		Short:        "Show one customer with their account holdings",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}

			customer, err := client.GetCustomer(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get customer %d: %w", id, err)
			}
			return views.RenderCustomerDetail(&customer)
		},
	}
}
