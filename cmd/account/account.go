package account

import (
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
)

func NewAccountCmd(client *api.Client) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Open and inspect checking and savings accounts",
		Long:  `Open and inspect checking and savings accounts`,
	}

	accountCmd.AddCommand(NewListCmd(client))
	accountCmd.AddCommand(NewShowCmd(client))
	accountCmd.AddCommand(NewCreateCmd(client))

	return accountCmd
}
