package customer

import (
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
)

func NewCustomerCmd(client *api.Client) *cobra.Command {
	customerCmd := &cobra.Command{
		Use:   "customer",
		Short: "Register, inspect, update and delete customers",
		Long:  `Register, inspect, update and delete customers`,
	}

	customerCmd.AddCommand(NewListCmd(client))
	customerCmd.AddCommand(NewShowCmd(client))
	customerCmd.AddCommand(NewCreateCmd(client))
	customerCmd.AddCommand(NewUpdateCmd(client))
	customerCmd.AddCommand(NewDeleteCmd(client))

	return customerCmd
}
