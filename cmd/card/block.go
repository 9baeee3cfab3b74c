package card

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
)

func NewBlockCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "block <id>",
		Short:        "Block a card",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[0])
			}

			updated, err := client.BlockCard(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to block card %d: %w", id, err)
			}

			pterm.Success.Printf("Card %s blocked\n", updated.MaskedNumber())
			return nil
		},
	}
}

func NewUnblockCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "unblock <id>",
		Short:        "Unblock a card",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[0])
			}

			updated, err := client.UnblockCard(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to unblock card %d: %w", id, err)
			}

			pterm.Success.Printf("Card %s unblocked\n", updated.MaskedNumber())
			return nil
		},
	}
}
