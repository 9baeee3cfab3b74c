package card

import (
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
)

func NewCardCmd(client *api.Client) *cobra.Command {
	cardCmd := &cobra.Command{
		Use:   "card",
		Short: "Issue, inspect, block and unblock cards",
		Long:  `Issue, inspect, block and unblock cards`,
	}

	cardCmd.AddCommand(NewListCmd(client))
	cardCmd.AddCommand(NewShowCmd(client))
	cardCmd.AddCommand(NewCreateCmd(client))
	cardCmd.AddCommand(NewBlockCmd(client))
	cardCmd.AddCommand(NewUnblockCmd(client))

	return cardCmd
}
