package customer

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/ui/prompts"
)

func NewDeleteCmd(client *api.Client) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:          "delete <id>",
		Short:        "Delete a customer",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}

			if !yes {
				confirmed, err := prompts.PromptConfirm(
					fmt.Sprintf("Delete customer %d? This cannot be undone.", id), false)
				if err != nil {
					return err
				}
				if !confirmed {
					pterm.Info.Println("Nothing deleted")
					return nil
				}
			}

			if err := client.DeleteCustomer(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete customer %d: %w", id, err)
			}

			pterm.Success.Printf("Customer %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
