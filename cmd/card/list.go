package card

import (
	"fmt"

	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/ui/views"
)

func NewListCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all cards",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := client.ListCards(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list cards: %w", err)
			}
			return views.NewCardListView().Render(cards)
		},
	}
}
