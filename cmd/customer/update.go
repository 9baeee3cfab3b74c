package customer

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/model"
	"bankdesk/internal/ui/prompts"
	"bankdesk/internal/ui/views"
)

func NewUpdateCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "update <id>",
		Short:        "Update a customer interactively",
		Long:         `Fetches the customer and walks through the fields with the current values prefilled. Leaving the password empty keeps the stored one.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid customer id %q", args[0])
			}

			existing, err := client.GetCustomer(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get customer %d: %w", id, err)
			}

			input, err := prompts.PromptCustomer(&existing)
			if err != nil {
				return err
			}

			if input.PasswordHash == "" {
				input.PasswordHash = existing.PasswordHash
			} else {
				hash, err := model.HashPassword(input.PasswordHash)
				if err != nil {
					return fmt.Errorf("hash password: %w", err)
				}
				input.PasswordHash = hash
			}

			updated, err := client.UpdateCustomer(cmd.Context(), id, input)
			if err != nil {
				return fmt.Errorf("failed to update customer %d: %w", id, err)
			}

			pterm.Success.Printf("Customer %q updated\n", updated.Name)
			return views.RenderCustomerDetail(&updated)
		},
	}
}
