package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"bankdesk/internal/model"
)

type CustomerListView struct{}

func NewCustomerListView() *CustomerListView {
	return &CustomerListView{}
}

func (v *CustomerListView) Render(customers []model.Customer) error {
	headers := []string{"ID", "Name", "CPF", "Email", "Phone"}
	tableData := pterm.TableData{headers}

	for _, c := range customers {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", c.ID),
			c.Name,
			c.FormattedCPF(),
			c.Email,
			orDash(c.Phone),
		})
	}

	pterm.DefaultSection.Printf("Customers")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d customers\n", len(customers))

	return nil
}
