package transaction

import (
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
)

func NewTransactionCmd(client *api.Client) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Register and inspect transactions, and print account statements",
		Long:  `Register and inspect transactions, and print account statements`,
	}

	transactionCmd.AddCommand(NewListCmd(client))
	transactionCmd.AddCommand(NewShowCmd(client))
	transactionCmd.AddCommand(NewCreateCmd(client))
	transactionCmd.AddCommand(NewStatementCmd(client))

	return transactionCmd
}
