package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
	"bankdesk/internal/ui"
)

func RenderCustomerDetail(c *model.Customer) error {
	pterm.Println()
	ui.PrintL2Title("Customer #%d", c.ID)

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Name", c.Name},
		{"CPF", c.FormattedCPF()},
		{"Birth date", orDash(c.BirthDate)},
		{"Email", c.Email},
		{"Phone", orDash(c.Phone)},
		{"Address", orDash(c.Address)},
		{"Login", orDash(c.Login)},
		{"Registered", formatDate(c.RegisteredAt)},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	if len(c.Holdings) > 0 {
		pterm.Println()
		ui.PrintL2Title("Account holdings")
		holdingData := pterm.TableData{{"Account", "Branch", "Type"}}
		for _, h := range c.Holdings {
			if h.Account == nil {
				continue
			}
			holdingData = append(holdingData, []string{
				h.Account.Number,
				h.Account.Branch,
				string(h.Account.Type),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(holdingData).Render(); err != nil {
			return err
		}
	}

	pterm.Info.Printf("Holdings: %d | Beneficiaries: %d\n", len(c.Holdings), len(c.Beneficiaries))
	fmt.Println()

	return nil
}
