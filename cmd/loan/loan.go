package loan

import (
	"github.com/spf13/cobra"

	"bankdesk/internal/api"
)

func NewLoanCmd(client *api.Client) *cobra.Command {
	loanCmd := &cobra.Command{
		Use:   "loan",
		Short: "Request, inspect, approve and reject loans",
		Long:  `Request, inspect, approve and reject loans`,
	}

	loanCmd.AddCommand(NewListCmd(client))
	loanCmd.AddCommand(NewShowCmd(client))
	loanCmd.AddCommand(NewCreateCmd(client))
	loanCmd.AddCommand(NewApproveCmd(client))
	loanCmd.AddCommand(NewRejectCmd(client))

	return loanCmd
}
