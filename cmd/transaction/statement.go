package transaction

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/ui/views"
)

func NewStatementCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "statement <account-id>",
		Short:        "Print the statement of one account",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid account id %q", args[0])
			}

			account, err := client.GetAccount(cmd.Context(), accountID)
			if err != nil {
				return fmt.Errorf("failed to get account %d: %w", accountID, err)
			}

			txs, err := client.AccountStatement(cmd.Context(), accountID)
			if err != nil {
				return fmt.Errorf("failed to get statement for account %d: %w", accountID, err)
			}

			return views.NewStatementView(account.Number).Render(txs)
		},
	}
}
