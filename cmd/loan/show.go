package loan

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bankdesk/internal/api"
	"bankdesk/internal/ui/views"
)

func NewShowCmd(client *api.Client) *cobra.Command {
	return &cobra.Command{
		Use:          "show <id>",
		Short:        "Show one loan",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid loan id %q", args[0])
			}

			loan, err := client.GetLoan(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get loan %d: %w", id, err)
			}
			return views.RenderLoanDetail(&loan)
		},
	}
}
