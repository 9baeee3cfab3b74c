package account

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/model"
	"bankdesk/internal/ui/views"
)

func NewListCmd(client *api.Client) *cobra.Command {
	var accType string

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List all accounts",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := client.ListAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			if accType != "" {
				accounts = filterByType(accounts, model.AccountType(accType))
			}

			return views.NewAccountListView().Render(accounts)
		},
	}

	cmd.Flags().StringVarP(&accType, "type", "t", "", "Filter by type (CORRENTE, POUPANCA)")

	return cmd
}

func filterByType(accounts []model.Account, t model.AccountType) []model.Account {
	var filtered []model.Account
	for _, acc := range accounts {
		if acc.Type == t {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
